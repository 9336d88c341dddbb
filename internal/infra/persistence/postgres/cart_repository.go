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
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindCartByCustomer retrieves the customer's cart with its item lines.
func (repo *cartRepository) FindCartByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by customer")
	}

	return toCartDomain(&cartM)
}

// SaveCart upserts the cart document keyed by its owner. The unique index on
// customer_id makes concurrent first saves converge on one row.
func (repo *cartRepository) SaveCart(ctx context.Context, cart *entity.Cart) error {
	cartM, err := fromCartDomain(cart)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"items", "subtotal", "tax", "shipping", "discount", "total", "coupon_code", "updated_at",
			}),
		}).
		Create(cartM).Error; err != nil {
		return errors.Wrap(err, "failed to save cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// DeleteCart removes the customer's cart document. Deleting an absent cart is
// not an error; the end state is the same.
func (repo *cartRepository) DeleteCart(ctx context.Context, customerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&model.CartModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) (*entity.Cart, error) {
	if data == nil {
		return nil, nil
	}

	var items []entity.CartItem
	if len(data.Items) > 0 {
		if err := json.Unmarshal(data.Items, &items); err != nil {
			return nil, errors.Wrap(err, "failed to decode cart items")
		}
	}

	return &entity.Cart{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Items:      items,
		Subtotal:   data.Subtotal,
		Tax:        data.Tax,
		Shipping:   data.Shipping,
		Discount:   data.Discount,
		Total:      data.Total,
		CouponCode: data.CouponCode,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}, nil
}

// fromCartDomain converts a domain Cart entity to a GORM CartModel.
func fromCartDomain(data *entity.Cart) (*model.CartModel, error) {
	if data == nil {
		return nil, nil
	}

	items := data.Items
	if items == nil {
		items = []entity.CartItem{}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode cart items")
	}

	return &model.CartModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Items:      encoded,
		Subtotal:   data.Subtotal,
		Tax:        data.Tax,
		Shipping:   data.Shipping,
		Discount:   data.Discount,
		Total:      data.Total,
		CouponCode: data.CouponCode,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}, nil
}
