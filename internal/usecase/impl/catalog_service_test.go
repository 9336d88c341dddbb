package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"souq/internal/domain/entity"
	domainerrors "souq/internal/domain/errors"
	"souq/internal/domain/repository"
	mockRepo "souq/internal/mocks/repository"
	mockSvc "souq/internal/mocks/service"
	"souq/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	txManager   *mockRepo.MockTransactionManager
	filterCache *mockSvc.MockFilterCache
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	filterCache := mockSvc.NewMockFilterCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCatalogService(txManager, filterCache, logger)

	return catalogServiceFixtures{
		service:     service,
		txManager:   txManager,
		filterCache: filterCache,
	}
}

func TestCatalogService_ResolveFilters_MergesAncestorChain(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	rootID := uuid.New()
	leafID := uuid.New()

	root := &entity.Category{
		ID:   rootID,
		Name: "Electronics",
		Attributes: []entity.AttributeDefinition{
			{Key: "brand", Label: "Brand", Type: entity.AttributeTypeSelect, Options: []string{"Acme"}, Filterable: true, Order: 1},
			{Key: "warranty", Label: "Warranty", Type: entity.AttributeTypeSelect, Options: []string{"1y"}, Filterable: true, Order: 3},
		},
	}
	leaf := &entity.Category{
		ID:       leafID,
		ParentID: &rootID,
		Name:     "Phones",
		Attributes: []entity.AttributeDefinition{
			// Overrides the inherited brand options entirely.
			{Key: "brand", Label: "Brand", Type: entity.AttributeTypeSelect, Options: []string{"Apple", "Samsung"}, Filterable: true, Order: 1},
			{Key: "screen_size", Label: "Screen size", Type: entity.AttributeTypeNumberRange, Unit: "in", Filterable: true, Order: 2},
			// Suppresses the inherited warranty filter.
			{Key: "warranty", Label: "Warranty", Type: entity.AttributeTypeSelect, Options: []string{"1y"}, Filterable: false, Order: 3},
		},
	}

	fx.filterCache.EXPECT().
		GetFilters(ctx, leafID).
		Return(nil, false, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().
				FindCategoryByID(ctx, leafID).
				Return(leaf, nil)
			mockCategoryRepo.EXPECT().
				FindCategoryByID(ctx, rootID).
				Return(root, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.filterCache.EXPECT().
		SetFilters(ctx, leafID, mock.AnythingOfType("[]entity.AttributeDefinition")).
		Return(nil)

	filters, err := fx.service.ResolveFilters(ctx, leafID)

	require.NoError(t, err)
	require.Len(t, filters, 2)
	assert.Equal(t, "brand", filters[0].Key)
	assert.Equal(t, []string{"Apple", "Samsung"}, filters[0].Options)
	assert.Equal(t, "screen_size", filters[1].Key)
}

func TestCatalogService_ResolveFilters_ServedFromCache(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	cached := []entity.AttributeDefinition{
		{Key: "brand", Label: "Brand", Type: entity.AttributeTypeSelect, Filterable: true},
	}

	fx.filterCache.EXPECT().
		GetFilters(ctx, categoryID).
		Return(cached, true, nil)

	filters, err := fx.service.ResolveFilters(ctx, categoryID)

	require.NoError(t, err)
	assert.Equal(t, cached, filters)
}

func TestCatalogService_ResolveFilters_CacheErrorOnlySkipsCache(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	category := &entity.Category{
		ID: categoryID,
		Attributes: []entity.AttributeDefinition{
			{Key: "color", Label: "Color", Type: entity.AttributeTypeMultiSelect, Options: []string{"red"}, Filterable: true},
		},
	}

	fx.filterCache.EXPECT().
		GetFilters(ctx, categoryID).
		Return(nil, false, errors.New("redis connection refused"))

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().
				FindCategoryByID(ctx, categoryID).
				Return(category, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.filterCache.EXPECT().
		SetFilters(ctx, categoryID, mock.AnythingOfType("[]entity.AttributeDefinition")).
		Return(errors.New("redis connection refused"))

	filters, err := fx.service.ResolveFilters(ctx, categoryID)

	require.NoError(t, err)
	require.Len(t, filters, 1)
	assert.Equal(t, "color", filters[0].Key)
}

func TestCatalogService_ResolveFilters_UnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.filterCache.EXPECT().
		GetFilters(ctx, categoryID).
		Return(nil, false, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().
				FindCategoryByID(ctx, categoryID).
				Return(nil, repository.ErrCategoryNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrNotFound, "category not found"))

	filters, err := fx.service.ResolveFilters(ctx, categoryID)

	require.Error(t, err)
	assert.Nil(t, filters)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCatalogService_ReplaceAttributes_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	input := &usecase.ReplaceAttributesInput{
		Attributes: []usecase.AttributeDefinitionInput{
			{Key: "brand", Label: "Brand", Type: "select", Options: []string{"Apple"}, Filterable: true, Order: 1},
		},
	}

	category := &entity.Category{ID: categoryID, Name: "Phones"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().
				FindCategoryByID(ctx, categoryID).
				Return(category, nil)
			mockCategoryRepo.EXPECT().
				ReplaceAttributes(ctx, categoryID, mock.AnythingOfType("[]entity.AttributeDefinition")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.filterCache.EXPECT().
		InvalidateFilters(ctx, categoryID).
		Return(nil)

	updated, err := fx.service.ReplaceAttributes(ctx, categoryID, input)

	require.NoError(t, err)
	require.Len(t, updated.Attributes, 1)
	assert.Equal(t, "brand", updated.Attributes[0].Key)
}

func TestCatalogService_ReplaceAttributes_RejectsBadInput(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	tests := []struct {
		name  string
		input usecase.AttributeDefinitionInput
	}{
		{
			name:  "uppercase key",
			input: usecase.AttributeDefinitionInput{Key: "Brand", Label: "Brand", Type: "select", Options: []string{"x"}},
		},
		{
			name:  "unknown type",
			input: usecase.AttributeDefinitionInput{Key: "brand", Label: "Brand", Type: "checkbox"},
		},
		{
			name:  "select without options",
			input: usecase.AttributeDefinitionInput{Key: "brand", Label: "Brand", Type: "select"},
		},
		{
			name: "min above max",
			input: usecase.AttributeDefinitionInput{
				Key: "size", Label: "Size", Type: "number_range",
				Min: floatPtr(10), Max: floatPtr(1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &usecase.ReplaceAttributesInput{
				Attributes: []usecase.AttributeDefinitionInput{tt.input},
			}

			category, err := fx.service.ReplaceAttributes(ctx, categoryID, input)

			require.Error(t, err)
			assert.Nil(t, category)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCatalogService_ReplaceAttributes_RejectsDuplicateKeys(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.ReplaceAttributesInput{
		Attributes: []usecase.AttributeDefinitionInput{
			{Key: "brand", Label: "Brand", Type: "select", Options: []string{"x"}},
			{Key: "brand", Label: "Brand again", Type: "select", Options: []string{"y"}},
		},
	}

	category, err := fx.service.ReplaceAttributes(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func floatPtr(v float64) *float64 {
	return &v
}
