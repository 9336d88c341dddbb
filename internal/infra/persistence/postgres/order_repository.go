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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order with its frozen snapshots.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderNumber
		}

		return errors.Wrap(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order by its unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM)
}

// FindOrdersByCustomer retrieves a customer's orders, newest first.
func (repo *orderRepository) FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by customer")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// UpdateOrderStatus persists the order's status pair guarded on the
// previously loaded values. A concurrent transition makes the WHERE clause
// match no row, reported as ErrOrderStatusConflict instead of silently
// overwriting the other writer.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, order *entity.Order, prevStatus entity.OrderStatus, prevPayment entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ? AND payment_status = ?", order.ID, string(prevStatus), string(prevPayment)).
		Updates(map[string]any{
			"status":         string(order.Status),
			"payment_status": string(order.PaymentStatus),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing order from a lost CAS race.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.OrderModel{}).
			Where("id = ?", order.ID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check order existence")
		}
		if count == 0 {
			return repository.ErrOrderNotFound
		}

		return repository.ErrOrderStatusConflict
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	if data == nil {
		return nil, nil
	}

	var items []entity.OrderItem
	if len(data.Items) > 0 {
		if err := json.Unmarshal(data.Items, &items); err != nil {
			return nil, errors.Wrap(err, "failed to decode order items")
		}
	}

	var shippingAddress entity.ShippingAddress
	if len(data.ShippingAddress) > 0 {
		if err := json.Unmarshal(data.ShippingAddress, &shippingAddress); err != nil {
			return nil, errors.Wrap(err, "failed to decode shipping address")
		}
	}

	return &entity.Order{
		ID:              data.ID,
		OrderNumber:     data.OrderNumber,
		CustomerID:      data.CustomerID,
		Items:           items,
		ShippingAddress: shippingAddress,
		PaymentMethod:   entity.PaymentMethod(data.PaymentMethod),
		PaymentStatus:   entity.PaymentStatus(data.PaymentStatus),
		Status:          entity.OrderStatus(data.Status),
		Subtotal:        data.Subtotal,
		Tax:             data.Tax,
		ShippingCost:    data.ShippingCost,
		Discount:        data.Discount,
		Total:           data.Total,
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	if data == nil {
		return nil, nil
	}

	items, err := json.Marshal(data.Items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order items")
	}

	shippingAddress, err := json.Marshal(data.ShippingAddress)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode shipping address")
	}

	return &model.OrderModel{
		ID:              data.ID,
		OrderNumber:     data.OrderNumber,
		CustomerID:      data.CustomerID,
		Items:           items,
		ShippingAddress: shippingAddress,
		PaymentMethod:   string(data.PaymentMethod),
		PaymentStatus:   string(data.PaymentStatus),
		Status:          string(data.Status),
		Subtotal:        data.Subtotal,
		Tax:             data.Tax,
		ShippingCost:    data.ShippingCost,
		Discount:        data.Discount,
		Total:           data.Total,
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}
