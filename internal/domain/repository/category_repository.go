package repository

import (
	"context"

	"souq/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository is the category-hierarchy lookup consumed by the filter
// resolver: each node carries its own attribute definitions and its parent id.
type CategoryRepository interface {
	// FindCategoryByID retrieves a category with its own attribute
	// definitions and parent reference.
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// ReplaceAttributes swaps the category's own attribute definition set.
	ReplaceAttributes(ctx context.Context, categoryID uuid.UUID, attributes []entity.AttributeDefinition) error
}
