package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"souq/internal/domain/entity"
	domainerrors "souq/internal/domain/errors"
	"souq/internal/domain/repository"
	mockRepo "souq/internal/mocks/repository"
	mockSvc "souq/internal/mocks/service"
	"souq/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service   usecase.CustomerUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockSvc.MockPasswordHasher
	tokenSvc  *mockSvc.MockTokenService
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCustomerService(txManager, hasher, tokenSvc, logger)

	return customerServiceFixtures{
		service:   service,
		txManager: txManager,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
	}
}

func TestCustomerService_Register_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Mona",
		Email:    "  Mona@Example.COM ",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.tokenSvc.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{entity.RoleCustomer}).
		Return("access", "refresh", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

			mockFactory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
			mockCustomerRepo.EXPECT().
				CreateCustomer(ctx, mock.MatchedBy(func(c *entity.Customer) bool {
					return c.Email == "mona@example.com" && c.PasswordHash == "hashed_password"
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, "mona@example.com", output.Customer.Email)
}

func TestCustomerService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Mona",
		Email:    "mona@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

			mockFactory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
			mockCustomerRepo.EXPECT().
				CreateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).
				Return(repository.ErrEmailAlreadyExists)

			_ = fn(mockFactory)
		}).
		Return(errors.WithStack(domainerrors.ErrCustomerAlreadyExists))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerAlreadyExists))
}

func TestCustomerService_Login_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "mona@example.com", Password: "Password123!"}

	customer := &entity.Customer{
		ID:           uuid.New(),
		Email:        "mona@example.com",
		PasswordHash: "hashed_password",
		IsAdmin:      true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

			mockFactory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
			mockCustomerRepo.EXPECT().
				FindCustomerByEmail(ctx, "mona@example.com").
				Return(customer, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(true)
	fx.tokenSvc.EXPECT().
		GenerateTokens(customer.ID, []string{entity.RoleCustomer, entity.RoleAdmin}).
		Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
}

func TestCustomerService_Login_WrongPassword(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "mona@example.com", Password: "wrong"}

	customer := &entity.Customer{
		ID:           uuid.New(),
		Email:        "mona@example.com",
		PasswordHash: "hashed_password",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

			mockFactory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
			mockCustomerRepo.EXPECT().
				FindCustomerByEmail(ctx, "mona@example.com").
				Return(customer, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestCustomerService_Login_UnknownEmail(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

			mockFactory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
			mockCustomerRepo.EXPECT().
				FindCustomerByEmail(ctx, "nobody@example.com").
				Return(nil, repository.ErrCustomerNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.WithStack(domainerrors.ErrInvalidCredentials))

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// Unknown emails and wrong passwords surface the same error.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestCustomerService_UpdateDeviceToken_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	input := &usecase.UpdateDeviceTokenInput{Token: "new-device-token"}

	customer := &entity.Customer{ID: customerID, FCMToken: "old-device-token"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

			mockFactory.EXPECT().CustomerRepo().Return(mockCustomerRepo)
			mockCustomerRepo.EXPECT().
				FindCustomerByID(ctx, customerID).
				Return(customer, nil)
			mockCustomerRepo.EXPECT().
				UpdateCustomer(ctx, mock.MatchedBy(func(c *entity.Customer) bool {
					return c.FCMToken == "new-device-token"
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.UpdateDeviceToken(ctx, customerID, input)

	require.NoError(t, err)
}
