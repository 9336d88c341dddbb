package repository

import (
	"context"

	"souq/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database
// operations. The single-default invariant is enforced by the use case layer
// combining ClearDefaultExcept and UpdateAddress inside one transaction.
type AddressRepository interface {
	// CreateAddress persists a new address for a customer.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByCustomer retrieves all addresses owned by a customer,
	// default first.
	FindAddressesByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Address, error)

	// UpdateAddress updates an existing address record.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id uuid.UUID) error

	// ClearDefaultExcept clears the default flag on every address of the
	// customer other than exceptID, as a single multi-row update.
	ClearDefaultExcept(ctx context.Context, customerID, exceptID uuid.UUID) error
}
