package impl

import (
	"context"
	"log/slog"
	"strings"

	"souq/internal/domain/entity"
	domainerrors "souq/internal/domain/errors"
	"souq/internal/domain/repository"
	"souq/internal/domain/service"
	"souq/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	tokenSvc  service.TokenService
	logger    *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		txManager: txManager,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
		logger:    logger,
	}
}

// Register creates a new customer account and signs them in.
func (srv *customerService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.logger.Info("Registering customer", "email", email)

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password", "error", err)

		return nil, errors.WithStack(domainerrors.ErrPasswordHashFailed)
	}

	customer := &entity.Customer{
		ID:           uuid.New(),
		Email:        email,
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CustomerRepo().CreateCustomer(ctx, customer); err != nil {
			if errors.Is(err, repository.ErrEmailAlreadyExists) {
				return errors.WithStack(domainerrors.ErrCustomerAlreadyExists)
			}

			return errors.Wrap(err, "failed to create customer")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to register customer")
	}

	return srv.issueTokens(customer)
}

// Login verifies the customer's credentials and issues fresh tokens. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (srv *customerService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.logger.Info("Customer login attempt", "email", email)

	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CustomerRepo().FindCustomerByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.WithStack(domainerrors.ErrInvalidCredentials)
			}

			return errors.Wrap(err, "failed to find customer")
		}
		customer = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to log in")
	}

	if !srv.hasher.Check(input.Password, customer.PasswordHash) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	return srv.issueTokens(customer)
}

// GetProfile returns the customer's own account record.
func (srv *customerService) GetProfile(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error) {
	srv.logger.Debug("Getting profile", "customerID", customerID)

	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CustomerRepo().FindCustomerByID(ctx, customerID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "customer not found")
			}

			return errors.Wrap(err, "failed to find customer")
		}
		customer = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return customer, nil
}

// UpdateDeviceToken stores the push notification token of the customer's
// current device.
func (srv *customerService) UpdateDeviceToken(ctx context.Context, customerID uuid.UUID, input *usecase.UpdateDeviceTokenInput) error {
	srv.logger.Info("Updating device token", "customerID", customerID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		customer, err := customerRepo.FindCustomerByID(ctx, customerID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "customer not found")
			}

			return errors.Wrap(err, "failed to find customer")
		}

		customer.FCMToken = input.Token

		return errors.Wrap(customerRepo.UpdateCustomer(ctx, customer), "failed to update customer")
	})

	if err != nil {
		return errors.Wrap(err, "failed to update device token")
	}

	return nil
}

func (srv *customerService) issueTokens(customer *entity.Customer) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenSvc.GenerateTokens(customer.ID, customer.Roles())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Customer:     customer,
	}, nil
}
