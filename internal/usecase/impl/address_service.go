package impl

import (
	"context"
	"log/slog"

	"souq/internal/domain/entity"
	domainerrors "souq/internal/domain/errors"
	"souq/internal/domain/repository"
	"souq/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListAddresses returns all addresses belonging to the customer.
func (srv *addressService) ListAddresses(ctx context.Context, customerID uuid.UUID) ([]entity.Address, error) {
	srv.logger.Debug("Listing addresses", "customerID", customerID)

	var addresses []entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AddressRepo().FindAddressesByCustomer(ctx, customerID)
		if err != nil {
			return errors.Wrap(err, "failed to find addresses")
		}
		addresses = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// CreateAddress adds an address to the customer's book. The customer's first
// address always becomes the default; a later address marked default demotes
// the previous one within the same transaction.
func (srv *addressService) CreateAddress(ctx context.Context, customerID uuid.UUID, input *usecase.CreateAddressInput) (*entity.Address, error) {
	srv.logger.Info("Creating address", "customerID", customerID, "city", input.City)

	address := &entity.Address{
		ID:         uuid.New(),
		CustomerID: customerID,
		Name:       input.Name,
		Phone:      input.Phone,
		City:       input.City,
		Area:       input.Area,
		Street:     input.Street,
		Landmark:   input.Landmark,
		Apartment:  input.Apartment,
		IsDefault:  input.IsDefault,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		existing, err := addressRepo.FindAddressesByCustomer(ctx, customerID)
		if err != nil {
			return errors.Wrap(err, "failed to find addresses")
		}
		if len(existing) == 0 {
			address.IsDefault = true
		}

		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		if address.IsDefault {
			if err := addressRepo.ClearDefaultExcept(ctx, customerID, address.ID); err != nil {
				return errors.Wrap(err, "failed to clear previous default")
			}
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	return address, nil
}

// UpdateAddress applies a partial update to an address the customer owns.
func (srv *addressService) UpdateAddress(ctx context.Context, customerID, addressID uuid.UUID, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	srv.logger.Info("Updating address", "customerID", customerID, "addressID", addressID)

	var address *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		found, err := srv.requireOwnedAddress(ctx, addressRepo, customerID, addressID)
		if err != nil {
			return err
		}
		address = found

		applyAddressUpdate(address, input)

		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}

		if input.IsDefault != nil && *input.IsDefault {
			if err := addressRepo.ClearDefaultExcept(ctx, customerID, address.ID); err != nil {
				return errors.Wrap(err, "failed to clear previous default")
			}
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	return address, nil
}

// DeleteAddress removes an address the customer owns. Deleting the default
// address promotes the most recently created remaining address.
func (srv *addressService) DeleteAddress(ctx context.Context, customerID, addressID uuid.UUID) error {
	srv.logger.Info("Deleting address", "customerID", customerID, "addressID", addressID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := srv.requireOwnedAddress(ctx, addressRepo, customerID, addressID)
		if err != nil {
			return err
		}

		if err := addressRepo.DeleteAddress(ctx, addressID); err != nil {
			return errors.Wrap(err, "failed to delete address")
		}

		if !address.IsDefault {
			return nil
		}

		remaining, err := addressRepo.FindAddressesByCustomer(ctx, customerID)
		if err != nil {
			return errors.Wrap(err, "failed to find remaining addresses")
		}
		if len(remaining) == 0 {
			return nil
		}

		promoted := remaining[0]
		promoted.IsDefault = true
		if err := addressRepo.UpdateAddress(ctx, &promoted); err != nil {
			return errors.Wrap(err, "failed to promote a new default address")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

// SetDefault marks an address as the customer's default and demotes every
// other address in a single transaction, so at most one default is ever
// visible.
func (srv *addressService) SetDefault(ctx context.Context, customerID, addressID uuid.UUID) (*entity.Address, error) {
	srv.logger.Info("Setting default address", "customerID", customerID, "addressID", addressID)

	var address *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		found, err := srv.requireOwnedAddress(ctx, addressRepo, customerID, addressID)
		if err != nil {
			return err
		}
		address = found

		if address.IsDefault {
			return nil
		}

		address.IsDefault = true
		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}

		if err := addressRepo.ClearDefaultExcept(ctx, customerID, address.ID); err != nil {
			return errors.Wrap(err, "failed to clear previous default")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to set default address")
	}

	return address, nil
}

// requireOwnedAddress loads an address and verifies ownership. An address
// belonging to someone else is reported as not found rather than forbidden,
// so the API does not leak other customers' address IDs.
func (srv *addressService) requireOwnedAddress(ctx context.Context, addressRepo repository.AddressRepository, customerID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "address not found")
		}

		return nil, errors.Wrap(err, "failed to find address")
	}
	if address.CustomerID != customerID {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "address not found")
	}

	return address, nil
}

func applyAddressUpdate(address *entity.Address, input *usecase.UpdateAddressInput) {
	if input.Name != nil {
		address.Name = *input.Name
	}
	if input.Phone != nil {
		address.Phone = *input.Phone
	}
	if input.City != nil {
		address.City = *input.City
	}
	if input.Area != nil {
		address.Area = *input.Area
	}
	if input.Street != nil {
		address.Street = *input.Street
	}
	if input.Landmark != nil {
		address.Landmark = *input.Landmark
	}
	if input.Apartment != nil {
		address.Apartment = *input.Apartment
	}
	if input.IsDefault != nil {
		address.IsDefault = *input.IsDefault
	}
}
