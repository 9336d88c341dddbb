package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// AttributeType is the kind of storefront filter control an attribute renders as.
type AttributeType string

const (
	AttributeTypeSelect      AttributeType = "select"
	AttributeTypeMultiSelect AttributeType = "multi_select"
	AttributeTypeNumberRange AttributeType = "number_range"
)

// IsValid checks if the AttributeType is a valid value.
func (t AttributeType) IsValid() bool {
	switch t {
	case AttributeTypeSelect, AttributeTypeMultiSelect, AttributeTypeNumberRange:
		return true
	default:
		return false
	}
}

// AttributeDefinition describes one filterable product attribute of a
// category. Key is lowercase alphanumeric/underscore and is the identity used
// when a descendant category overrides an ancestor's definition.
type AttributeDefinition struct {
	Key        string        `json:"key"`
	Label      string        `json:"label"`
	LabelAr    string        `json:"labelAr,omitempty"`
	Type       AttributeType `json:"type"`
	Options    []string      `json:"options,omitempty"`
	Unit       string        `json:"unit,omitempty"`
	Min        *float64      `json:"min,omitempty"`
	Max        *float64      `json:"max,omitempty"`
	Filterable bool          `json:"-"`
	Required   bool          `json:"required"`
	Order      int           `json:"order"`
}

// Category is a node in the product category tree. Attributes are the
// category's own definitions; inherited ones are resolved by walking the
// ancestor chain.
type Category struct {
	ID         uuid.UUID             `json:"id"`
	ParentID   *uuid.UUID            `json:"parentId,omitempty"`
	Name       string                `json:"name"`
	NameAr     string                `json:"nameAr,omitempty"`
	Slug       string                `json:"slug"`
	Attributes []AttributeDefinition `json:"attributes"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

// MergeAttributeChain merges the attribute sets of a category's ancestor
// chain, ordered root first and the target category last. When the same key
// appears at multiple levels the more specific definition replaces the
// ancestor's entirely; there is no field-level merge. Non-filterable
// definitions are dropped only after the override step, so a descendant can
// suppress an inherited filter by redefining its key as non-filterable.
// The result is ordered by Order ascending, ties broken by Key, for
// deterministic storefront rendering.
func MergeAttributeChain(chain [][]AttributeDefinition) []AttributeDefinition {
	merged := make(map[string]AttributeDefinition)
	for _, level := range chain {
		for _, def := range level {
			merged[def.Key] = def
		}
	}

	result := make([]AttributeDefinition, 0, len(merged))
	for _, def := range merged {
		if def.Filterable {
			result = append(result, def)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}

		return result[i].Key < result[j].Key
	})

	return result
}
