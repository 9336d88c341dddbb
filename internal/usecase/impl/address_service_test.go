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
	"souq/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	service   usecase.AddressUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAddressService(txManager, logger)

	return addressServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestAddressService_CreateAddress_FirstBecomesDefault(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()
	input := &usecase.CreateAddressInput{
		Name:   "Ali",
		Phone:  "0100000000",
		City:   "Cairo",
		Area:   "Maadi",
		Street: "Road 9",
		// Deliberately not requested as default.
		IsDefault: false,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().
				FindAddressesByCustomer(ctx, customerID).
				Return([]entity.Address{}, nil)
			mockAddressRepo.EXPECT().
				CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
				Return(nil)
			mockAddressRepo.EXPECT().
				ClearDefaultExcept(ctx, customerID, mock.AnythingOfType("uuid.UUID")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.CreateAddress(ctx, customerID, input)

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	assert.Equal(t, customerID, address.CustomerID)
}

func TestAddressService_CreateAddress_NewDefaultDemotesPrevious(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()
	input := &usecase.CreateAddressInput{
		Name:      "Ali",
		Phone:     "0100000000",
		City:      "Giza",
		Area:      "Dokki",
		Street:    "Tahrir St",
		IsDefault: true,
	}

	existing := []entity.Address{
		{ID: uuid.New(), CustomerID: customerID, IsDefault: true},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().
				FindAddressesByCustomer(ctx, customerID).
				Return(existing, nil)
			mockAddressRepo.EXPECT().
				CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
				Return(nil)
			mockAddressRepo.EXPECT().
				ClearDefaultExcept(ctx, customerID, mock.AnythingOfType("uuid.UUID")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.CreateAddress(ctx, customerID, input)

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
}

func TestAddressService_CreateAddress_SecondNonDefaultStaysNonDefault(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()
	input := &usecase.CreateAddressInput{
		Name:   "Ali",
		Phone:  "0100000000",
		City:   "Cairo",
		Area:   "Nasr City",
		Street: "Abbas El Akkad",
	}

	existing := []entity.Address{
		{ID: uuid.New(), CustomerID: customerID, IsDefault: true},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().
				FindAddressesByCustomer(ctx, customerID).
				Return(existing, nil)
			mockAddressRepo.EXPECT().
				CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.CreateAddress(ctx, customerID, input)

	require.NoError(t, err)
	assert.False(t, address.IsDefault)
}

func TestAddressService_UpdateAddress_ForeignAddressHidden(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()
	newCity := "Alexandria"
	input := &usecase.UpdateAddressInput{City: &newCity}

	foreign := &entity.Address{ID: addressID, CustomerID: uuid.New()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().
				FindAddressByID(ctx, addressID).
				Return(foreign, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrNotFound, "address not found"))

	address, err := fx.service.UpdateAddress(ctx, customerID, addressID, input)

	require.Error(t, err)
	assert.Nil(t, address)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAddressService_UpdateAddress_PartialFields(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()
	newCity := "Alexandria"
	input := &usecase.UpdateAddressInput{City: &newCity}

	owned := &entity.Address{
		ID:         addressID,
		CustomerID: customerID,
		Name:       "Ali",
		City:       "Cairo",
		Street:     "Road 9",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().
				FindAddressByID(ctx, addressID).
				Return(owned, nil)
			mockAddressRepo.EXPECT().
				UpdateAddress(ctx, mock.AnythingOfType("*entity.Address")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.UpdateAddress(ctx, customerID, addressID, input)

	require.NoError(t, err)
	assert.Equal(t, "Alexandria", address.City)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Ali", address.Name)
	assert.Equal(t, "Road 9", address.Street)
}

func TestAddressService_DeleteAddress_PromotesNewDefault(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()

	deleted := &entity.Address{ID: addressID, CustomerID: customerID, IsDefault: true}
	survivor := entity.Address{ID: uuid.New(), CustomerID: customerID, IsDefault: false}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().
				FindAddressByID(ctx, addressID).
				Return(deleted, nil)
			mockAddressRepo.EXPECT().
				DeleteAddress(ctx, addressID).
				Return(nil)
			mockAddressRepo.EXPECT().
				FindAddressesByCustomer(ctx, customerID).
				Return([]entity.Address{survivor}, nil)
			mockAddressRepo.EXPECT().
				UpdateAddress(ctx, mock.MatchedBy(func(a *entity.Address) bool {
					return a.ID == survivor.ID && a.IsDefault
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteAddress(ctx, customerID, addressID)

	require.NoError(t, err)
}

func TestAddressService_DeleteAddress_NonDefaultSkipsPromotion(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()

	deleted := &entity.Address{ID: addressID, CustomerID: customerID, IsDefault: false}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().
				FindAddressByID(ctx, addressID).
				Return(deleted, nil)
			mockAddressRepo.EXPECT().
				DeleteAddress(ctx, addressID).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteAddress(ctx, customerID, addressID)

	require.NoError(t, err)
}

func TestAddressService_SetDefault_DemotesSiblings(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()

	owned := &entity.Address{ID: addressID, CustomerID: customerID, IsDefault: false}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().
				FindAddressByID(ctx, addressID).
				Return(owned, nil)
			mockAddressRepo.EXPECT().
				UpdateAddress(ctx, mock.MatchedBy(func(a *entity.Address) bool {
					return a.ID == addressID && a.IsDefault
				})).
				Return(nil)
			mockAddressRepo.EXPECT().
				ClearDefaultExcept(ctx, customerID, addressID).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.SetDefault(ctx, customerID, addressID)

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
}

func TestAddressService_SetDefault_AlreadyDefaultIsNoOp(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()

	owned := &entity.Address{ID: addressID, CustomerID: customerID, IsDefault: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().
				FindAddressByID(ctx, addressID).
				Return(owned, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	address, err := fx.service.SetDefault(ctx, customerID, addressID)

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
}

func TestAddressService_ListAddresses_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()

	stored := []entity.Address{
		{ID: uuid.New(), CustomerID: customerID, IsDefault: true},
		{ID: uuid.New(), CustomerID: customerID},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().
				FindAddressesByCustomer(ctx, customerID).
				Return(stored, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	addresses, err := fx.service.ListAddresses(ctx, customerID)

	require.NoError(t, err)
	assert.Len(t, addresses, 2)
}
