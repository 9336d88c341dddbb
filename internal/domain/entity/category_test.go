package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAttributeChain_DescendantOverridesAncestor(t *testing.T) {
	root := []AttributeDefinition{
		{Key: "brand", Label: "Brand", Type: AttributeTypeSelect, Options: []string{"Generic"}, Filterable: true, Order: 1},
		{Key: "material", Label: "Material", Type: AttributeTypeSelect, Options: []string{"steel"}, Filterable: true, Order: 5},
	}
	leaf := []AttributeDefinition{
		{Key: "brand", Label: "Brand", Type: AttributeTypeSelect, Options: []string{"Apple", "Samsung"}, Filterable: true, Order: 1},
	}

	merged := MergeAttributeChain([][]AttributeDefinition{root, leaf})

	require.Len(t, merged, 2)
	assert.Equal(t, "brand", merged[0].Key)
	// The leaf definition replaces the ancestor's entirely, options included.
	assert.Equal(t, []string{"Apple", "Samsung"}, merged[0].Options)
	assert.Equal(t, "material", merged[1].Key)
}

func TestMergeAttributeChain_DescendantSuppressesInheritedFilter(t *testing.T) {
	root := []AttributeDefinition{
		{Key: "warranty", Label: "Warranty", Type: AttributeTypeSelect, Options: []string{"1y"}, Filterable: true},
	}
	leaf := []AttributeDefinition{
		{Key: "warranty", Label: "Warranty", Type: AttributeTypeSelect, Options: []string{"1y"}, Filterable: false},
	}

	merged := MergeAttributeChain([][]AttributeDefinition{root, leaf})

	assert.Empty(t, merged)
}

func TestMergeAttributeChain_DropsNonFilterable(t *testing.T) {
	level := []AttributeDefinition{
		{Key: "sku_note", Label: "Internal note", Type: AttributeTypeSelect, Options: []string{"x"}, Filterable: false},
		{Key: "color", Label: "Color", Type: AttributeTypeMultiSelect, Options: []string{"red"}, Filterable: true},
	}

	merged := MergeAttributeChain([][]AttributeDefinition{level})

	require.Len(t, merged, 1)
	assert.Equal(t, "color", merged[0].Key)
}

func TestMergeAttributeChain_OrdersByOrderThenKey(t *testing.T) {
	level := []AttributeDefinition{
		{Key: "zeta", Type: AttributeTypeSelect, Options: []string{"x"}, Filterable: true, Order: 2},
		{Key: "alpha", Type: AttributeTypeSelect, Options: []string{"x"}, Filterable: true, Order: 2},
		{Key: "omega", Type: AttributeTypeSelect, Options: []string{"x"}, Filterable: true, Order: 1},
	}

	merged := MergeAttributeChain([][]AttributeDefinition{level})

	require.Len(t, merged, 3)
	assert.Equal(t, "omega", merged[0].Key)
	assert.Equal(t, "alpha", merged[1].Key)
	assert.Equal(t, "zeta", merged[2].Key)
}

func TestMergeAttributeChain_EmptyChain(t *testing.T) {
	assert.Empty(t, MergeAttributeChain(nil))
	assert.Empty(t, MergeAttributeChain([][]AttributeDefinition{{}, {}}))
}

func TestAttributeType_IsValid(t *testing.T) {
	assert.True(t, AttributeTypeSelect.IsValid())
	assert.True(t, AttributeTypeMultiSelect.IsValid())
	assert.True(t, AttributeTypeNumberRange.IsValid())
	assert.False(t, AttributeType("checkbox").IsValid())
	assert.False(t, AttributeType("").IsValid())
}
