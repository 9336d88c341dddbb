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

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// CreateCustomer persists a new customer account.
func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailAlreadyExists
		}

		return errors.Wrap(err, "failed to create customer")
	}

	// Update the entity with generated values
	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindCustomerByID retrieves a customer by their unique ID.
func (repo *customerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// FindCustomerByEmail retrieves a customer by their login email.
func (repo *customerRepository) FindCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	return toCustomerDomain(&customerM), nil
}

// UpdateCustomer updates an existing customer record.
func (repo *customerRepository) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"name":      customerM.Name,
			"phone":     customerM.Phone,
			"fcm_token": customerM.FCMToken,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		FCMToken:     data.FCMToken,
		IsAdmin:      data.IsAdmin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		FCMToken:     data.FCMToken,
		IsAdmin:      data.IsAdmin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
