package repository

import (
	"context"

	"souq/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a guarded stock decrement cannot
	// be satisfied.
	ErrInsufficientStock = errors.New("insufficient product stock")
)

// ProductRepository defines the interface for product lookups consumed by the
// cart and checkout paths. Catalog management itself lives elsewhere.
type ProductRepository interface {
	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// DecrementStock atomically subtracts quantity from the product's stock,
	// guarded so stock never goes negative. Returns ErrInsufficientStock when
	// the guard rejects the update.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
