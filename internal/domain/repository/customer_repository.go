package repository

import (
	"context"

	"souq/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrEmailAlreadyExists is returned when registration hits the unique
	// email index.
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// CustomerRepository defines the interface for customer account operations.
type CustomerRepository interface {
	// CreateCustomer persists a new customer account.
	// Returns ErrEmailAlreadyExists on a duplicate email.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// FindCustomerByID retrieves a customer by their unique ID.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindCustomerByEmail retrieves a customer by their login email.
	FindCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// UpdateCustomer updates an existing customer record.
	UpdateCustomer(ctx context.Context, customer *entity.Customer) error
}
