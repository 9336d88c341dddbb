package usecase

import (
	"context"

	"souq/internal/domain/entity"

	"github.com/google/uuid"
)

// AttributeDefinitionInput is one attribute definition in an admin upsert.
type AttributeDefinitionInput struct {
	Key        string   `json:"key" validate:"required,lowercase"`
	Label      string   `json:"label" validate:"required"`
	LabelAr    string   `json:"labelAr,omitempty"`
	Type       string   `json:"type" validate:"required,oneof=select multi_select number_range"`
	Options    []string `json:"options,omitempty"`
	Unit       string   `json:"unit,omitempty"`
	Min        *float64 `json:"min,omitempty"`
	Max        *float64 `json:"max,omitempty"`
	Filterable bool     `json:"filterable"`
	Required   bool     `json:"required"`
	Order      int      `json:"order"`
}

// ReplaceAttributesInput replaces a category's own attribute definition set.
type ReplaceAttributesInput struct {
	Attributes []AttributeDefinitionInput `json:"attributes" validate:"required,dive"`
}

// CatalogUsecase resolves the effective storefront filter set of a category
// by merging its own attribute definitions with the inherited ones.
type CatalogUsecase interface {
	// ResolveFilters walks the ancestor chain and returns the merged,
	// filterable, deterministically ordered attribute definitions.
	ResolveFilters(ctx context.Context, categoryID uuid.UUID) ([]entity.AttributeDefinition, error)

	// ReplaceAttributes swaps the category's own definitions and invalidates
	// the cached filter sets affected by the change.
	ReplaceAttributes(ctx context.Context, categoryID uuid.UUID, input *ReplaceAttributesInput) (*entity.Category, error)
}
