package postgres

import (
	"context"
	"encoding/json"

	"souq/internal/domain/entity"
	"souq/internal/domain/repository"
	"souq/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// FindCategoryByID retrieves a category with its own attribute definitions.
func (repo *categoryRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM)
}

// ReplaceAttributes swaps the category's own attribute definition set.
func (repo *categoryRepository) ReplaceAttributes(ctx context.Context, categoryID uuid.UUID, attributes []entity.AttributeDefinition) error {
	encoded, err := encodeAttributes(attributes)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", categoryID).
		Update("attributes", encoded)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to replace category attributes")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// storedAttribute is the persisted shape of an attribute definition. It keeps
// the filterable flag, which the entity's JSON form deliberately hides from
// API responses.
type storedAttribute struct {
	Key        string               `json:"key"`
	Label      string               `json:"label"`
	LabelAr    string               `json:"labelAr,omitempty"`
	Type       entity.AttributeType `json:"type"`
	Options    []string             `json:"options,omitempty"`
	Unit       string               `json:"unit,omitempty"`
	Min        *float64             `json:"min,omitempty"`
	Max        *float64             `json:"max,omitempty"`
	Filterable bool                 `json:"filterable"`
	Required   bool                 `json:"required"`
	Order      int                  `json:"order"`
}

func encodeAttributes(attributes []entity.AttributeDefinition) ([]byte, error) {
	stored := make([]storedAttribute, 0, len(attributes))
	for _, def := range attributes {
		stored = append(stored, storedAttribute(def))
	}

	encoded, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode category attributes")
	}

	return encoded, nil
}

func decodeAttributes(data []byte) ([]entity.AttributeDefinition, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var stored []storedAttribute
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errors.Wrap(err, "failed to decode category attributes")
	}

	attributes := make([]entity.AttributeDefinition, 0, len(stored))
	for _, def := range stored {
		attributes = append(attributes, entity.AttributeDefinition(def))
	}

	return attributes, nil
}

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) (*entity.Category, error) {
	if data == nil {
		return nil, nil
	}

	attributes, err := decodeAttributes(data.Attributes)
	if err != nil {
		return nil, err
	}

	return &entity.Category{
		ID:         data.ID,
		ParentID:   data.ParentID,
		Name:       data.Name,
		NameAr:     data.NameAr,
		Slug:       data.Slug,
		Attributes: attributes,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}, nil
}
