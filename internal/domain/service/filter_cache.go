package service

import (
	"context"

	"souq/internal/domain/entity"

	"github.com/google/uuid"
)

// FilterCache caches resolved category filter sets. Implementations are
// best-effort: a miss or a cache error must never fail the resolution, only
// skip the cache.
type FilterCache interface {
	// GetFilters returns the cached filter set for a category and whether it
	// was present.
	GetFilters(ctx context.Context, categoryID uuid.UUID) ([]entity.AttributeDefinition, bool, error)

	// SetFilters stores the resolved filter set for a category.
	SetFilters(ctx context.Context, categoryID uuid.UUID, filters []entity.AttributeDefinition) error

	// InvalidateFilters drops the cached set for a category, used when its
	// attribute definitions change.
	InvalidateFilters(ctx context.Context, categoryID uuid.UUID) error
}
