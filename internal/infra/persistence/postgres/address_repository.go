package postgres

import (
	"context"

	"souq/internal/domain/entity"
	"souq/internal/domain/repository"
	"souq/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// CreateAddress persists a new address for a customer.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return errors.Wrap(err, "failed to create address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByCustomer retrieves all addresses of a customer, newest first.
func (repo *addressRepository) FindAddressesByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Address, error) {
	var addressModels []*model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by customer")
	}

	addresses := make([]entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, *toAddressDomain(addressM))
	}

	return addresses, nil
}

// UpdateAddress updates an existing address record.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]any{
			"name":       addressM.Name,
			"phone":      addressM.Phone,
			"city":       addressM.City,
			"area":       addressM.Area,
			"street":     addressM.Street,
			"landmark":   addressM.Landmark,
			"apartment":  addressM.Apartment,
			"is_default": addressM.IsDefault,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteAddress removes an address by its ID (soft delete).
func (repo *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// ClearDefaultExcept demotes every default address of the customer except the
// named one in a single UPDATE, so the single-default invariant holds within
// the surrounding transaction.
func (repo *addressRepository) ClearDefaultExcept(ctx context.Context, customerID, exceptID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("customer_id = ? AND id <> ? AND is_default = ?", customerID, exceptID, true).
		Update("is_default", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to clear default addresses")
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Name:       data.Name,
		Phone:      data.Phone,
		City:       data.City,
		Area:       data.Area,
		Street:     data.Street,
		Landmark:   data.Landmark,
		Apartment:  data.Apartment,
		IsDefault:  data.IsDefault,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Name:       data.Name,
		Phone:      data.Phone,
		City:       data.City,
		Area:       data.Area,
		Street:     data.Street,
		Landmark:   data.Landmark,
		Apartment:  data.Apartment,
		IsDefault:  data.IsDefault,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
