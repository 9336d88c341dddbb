package usecase

import (
	"context"

	"souq/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAddressInput defines the data required to save a new address.
type CreateAddressInput struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	City      string `json:"city" validate:"required"`
	Area      string `json:"area" validate:"required"`
	Street    string `json:"street" validate:"required"`
	Landmark  string `json:"landmark,omitempty"`
	Apartment string `json:"apartment,omitempty"`
	IsDefault bool   `json:"isDefault"`
}

// UpdateAddressInput defines the data for a partial address update.
type UpdateAddressInput struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	City      *string `json:"city,omitempty"`
	Area      *string `json:"area,omitempty"`
	Street    *string `json:"street,omitempty"`
	Landmark  *string `json:"landmark,omitempty"`
	Apartment *string `json:"apartment,omitempty"`
	IsDefault *bool   `json:"isDefault,omitempty"`
}

// AddressUsecase defines the interface for address management. Any write that
// sets the default flag clears it on all sibling addresses within the same
// transaction, so a customer never has two defaults.
type AddressUsecase interface {
	ListAddresses(ctx context.Context, customerID uuid.UUID) ([]entity.Address, error)
	CreateAddress(ctx context.Context, customerID uuid.UUID, input *CreateAddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, customerID, addressID uuid.UUID, input *UpdateAddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, customerID, addressID uuid.UUID) error
	SetDefault(ctx context.Context, customerID, addressID uuid.UUID) (*entity.Address, error)
}
