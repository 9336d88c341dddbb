package repository

import (
	"context"

	"souq/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderNumber is returned when the order number collides with
	// an existing order. The caller retries generation before surfacing it.
	ErrDuplicateOrderNumber = errors.New("order number already exists")
	// ErrOrderStatusConflict is returned when a guarded status update matched
	// no row, meaning a concurrent transition landed first.
	ErrOrderStatusConflict = errors.New("order status changed concurrently")
)

// OrderRepository defines the interface for order-related database operations.
// Orders are append-only apart from status transitions; they are never deleted.
type OrderRepository interface {
	// CreateOrder persists a new order with its item snapshots.
	// Returns ErrDuplicateOrderNumber if the unique order-number index rejects it.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByCustomer retrieves a customer's orders, newest first.
	FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrderStatus persists the order's status pair with compare-and-set
	// semantics: the update is guarded on the previous values and returns
	// ErrOrderStatusConflict when no row matched.
	UpdateOrderStatus(ctx context.Context, order *entity.Order, prevStatus entity.OrderStatus, prevPayment entity.PaymentStatus) error
}
