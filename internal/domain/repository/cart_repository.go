// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"souq/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCartNotFound is returned when a customer has no cart document.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the interface for cart-related database operations.
// A customer owns at most one cart at any time.
type CartRepository interface {
	// FindCartByCustomer retrieves the customer's cart with its items.
	// Returns ErrCartNotFound if the customer has no cart.
	FindCartByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error)

	// SaveCart persists the cart and its full item list, creating the cart
	// document if it does not exist yet. Callers must have run Recompute
	// before saving.
	SaveCart(ctx context.Context, cart *entity.Cart) error

	// DeleteCart removes the customer's cart and all of its items.
	DeleteCart(ctx context.Context, customerID uuid.UUID) error
}
