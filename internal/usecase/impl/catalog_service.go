package impl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"souq/internal/domain/entity"
	domainerrors "souq/internal/domain/errors"
	"souq/internal/domain/repository"
	"souq/internal/domain/service"
	"souq/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// maxCategoryDepth bounds the ancestor walk so a corrupted parent cycle can
// never spin the resolver.
const maxCategoryDepth = 32

var attributeKeyPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	filterCache service.FilterCache
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	txManager repository.TransactionManager,
	filterCache service.FilterCache,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   txManager,
		filterCache: filterCache,
		logger:      logger,
	}
}

// ResolveFilters returns the category's effective storefront filter set:
// the attribute definitions of the whole ancestor chain merged root to leaf,
// with the leaf-most definition winning per key. Cached results are served
// when present; cache failures only skip the cache.
func (srv *catalogService) ResolveFilters(ctx context.Context, categoryID uuid.UUID) ([]entity.AttributeDefinition, error) {
	srv.logger.Debug("Resolving category filters", "categoryID", categoryID)

	if cached, ok, err := srv.filterCache.GetFilters(ctx, categoryID); err != nil {
		srv.logger.Warn("Filter cache read failed", "categoryID", categoryID, "error", err)
	} else if ok {
		return cached, nil
	}

	var filters []entity.AttributeDefinition

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		chain, err := srv.ancestorChain(ctx, repoFactory.CategoryRepo(), categoryID)
		if err != nil {
			return err
		}

		filters = entity.MergeAttributeChain(chain)

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve filters")
	}

	if err := srv.filterCache.SetFilters(ctx, categoryID, filters); err != nil {
		srv.logger.Warn("Filter cache write failed", "categoryID", categoryID, "error", err)
	}

	return filters, nil
}

// ReplaceAttributes swaps a category's own attribute definition set and drops
// its cached resolution. Descendant caches expire by TTL rather than by an
// eager subtree walk.
func (srv *catalogService) ReplaceAttributes(ctx context.Context, categoryID uuid.UUID, input *usecase.ReplaceAttributesInput) (*entity.Category, error) {
	srv.logger.Info("Replacing category attributes", "categoryID", categoryID, "count", len(input.Attributes))

	attributes, err := buildAttributeDefinitions(input.Attributes)
	if err != nil {
		return nil, err
	}

	var category *entity.Category

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		found, err := categoryRepo.FindCategoryByID(ctx, categoryID)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "category not found")
			}

			return errors.Wrap(err, "failed to find category")
		}

		if err := categoryRepo.ReplaceAttributes(ctx, categoryID, attributes); err != nil {
			return errors.Wrap(err, "failed to replace attributes")
		}

		found.Attributes = attributes
		category = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to replace category attributes")
	}

	if err := srv.filterCache.InvalidateFilters(ctx, categoryID); err != nil {
		srv.logger.Warn("Filter cache invalidation failed", "categoryID", categoryID, "error", err)
	}

	return category, nil
}

// ancestorChain loads the category and its ancestors, returned root first.
// The walk is depth-bounded and tracks visited ids so a parent cycle fails
// loudly instead of looping.
func (srv *catalogService) ancestorChain(ctx context.Context, categoryRepo repository.CategoryRepository, categoryID uuid.UUID) ([][]entity.AttributeDefinition, error) {
	var leafToRoot [][]entity.AttributeDefinition

	visited := make(map[uuid.UUID]bool, 4)
	currentID := categoryID

	for depth := 0; ; depth++ {
		if depth >= maxCategoryDepth || visited[currentID] {
			return nil, errors.Errorf("category hierarchy cycle detected at %s", currentID)
		}
		visited[currentID] = true

		category, err := categoryRepo.FindCategoryByID(ctx, currentID)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				if currentID == categoryID {
					return nil, errors.Wrap(domainerrors.ErrNotFound, "category not found")
				}
				// A dangling parent reference truncates the chain rather
				// than failing the storefront.
				srv.logger.Warn("Category parent missing, truncating chain", "categoryID", currentID)

				break
			}

			return nil, errors.Wrap(err, "failed to find category")
		}

		leafToRoot = append(leafToRoot, category.Attributes)

		if category.ParentID == nil {
			break
		}
		currentID = *category.ParentID
	}

	chain := make([][]entity.AttributeDefinition, 0, len(leafToRoot))
	for i := len(leafToRoot) - 1; i >= 0; i-- {
		chain = append(chain, leafToRoot[i])
	}

	return chain, nil
}

// buildAttributeDefinitions validates admin input and converts it to entity
// definitions. Key format and per-type shape rules are enforced here, on top
// of the struct tags the delivery layer already ran.
func buildAttributeDefinitions(inputs []usecase.AttributeDefinitionInput) ([]entity.AttributeDefinition, error) {
	attributes := make([]entity.AttributeDefinition, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))

	for _, in := range inputs {
		if !attributeKeyPattern.MatchString(in.Key) {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("attribute key %q must match [a-z0-9_]+", in.Key))
		}
		if seen[in.Key] {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("attribute key %q appears more than once", in.Key))
		}
		seen[in.Key] = true

		attrType := entity.AttributeType(in.Type)
		if !attrType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("attribute %q has unknown type %q", in.Key, in.Type))
		}

		switch attrType {
		case entity.AttributeTypeSelect, entity.AttributeTypeMultiSelect:
			if len(in.Options) == 0 {
				return nil, domainerrors.ErrValidationFailed.WithDetails(
					fmt.Sprintf("attribute %q of type %s needs at least one option", in.Key, in.Type))
			}
		case entity.AttributeTypeNumberRange:
			if in.Min != nil && in.Max != nil && *in.Min > *in.Max {
				return nil, domainerrors.ErrValidationFailed.WithDetails(
					fmt.Sprintf("attribute %q has min greater than max", in.Key))
			}
		}

		attributes = append(attributes, entity.AttributeDefinition{
			Key:        in.Key,
			Label:      in.Label,
			LabelAr:    in.LabelAr,
			Type:       attrType,
			Options:    in.Options,
			Unit:       in.Unit,
			Min:        in.Min,
			Max:        in.Max,
			Filterable: in.Filterable,
			Required:   in.Required,
			Order:      in.Order,
		})
	}

	return attributes, nil
}
