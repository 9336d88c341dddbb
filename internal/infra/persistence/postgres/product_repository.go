package postgres

import (
	"context"

	"souq/internal/domain/entity"
	"souq/internal/domain/repository"
	"souq/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// DecrementStock subtracts quantity from the product's stock with a guard in
// the WHERE clause, so two concurrent checkouts can never oversell: the
// second one matches no row and gets ErrInsufficientStock.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrInsufficientStock
		}

		return errors.Wrap(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing product from an out-of-stock one.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check product existence")
		}
		if count == 0 {
			return repository.ErrProductNotFound
		}

		return repository.ErrInsufficientStock
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:         data.ID,
		CategoryID: data.CategoryID,
		Name:       data.Name,
		NameAr:     data.NameAr,
		Price:      data.Price,
		Image:      data.Image,
		Stock:      data.Stock,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
