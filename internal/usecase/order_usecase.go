package usecase

import (
	"context"

	"souq/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput defines the data required to place an order from the
// customer's current cart.
type CheckoutInput struct {
	AddressID     uuid.UUID            `json:"addressId" validate:"required"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod" validate:"required"`
	Notes         string               `json:"notes,omitempty"`
}

// TransitionOrderInput names the requested fulfilment status.
type TransitionOrderInput struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// TransitionPaymentInput names the requested payment status.
type TransitionPaymentInput struct {
	PaymentStatus entity.PaymentStatus `json:"paymentStatus" validate:"required"`
}

// OrderUsecase defines the interface for checkout and order lifecycle
// operations. All status changes go through the transition tables; persisted
// updates are compare-and-set against the previously loaded state.
type OrderUsecase interface {
	// Checkout snapshots the cart and shipping address into a new order,
	// decrements stock, assigns a unique order number and clears the cart,
	// all within one transaction.
	Checkout(ctx context.Context, customerID uuid.UUID, input *CheckoutInput) (*entity.Order, error)

	ListOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)
	GetOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error)

	// CancelOrder applies the customer cancellation rule: only PENDING or
	// CONFIRMED orders may be cancelled by their owner.
	CancelOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error)

	// TrackingQR renders the order's tracking reference as a PNG QR code.
	TrackingQR(ctx context.Context, customerID, orderID uuid.UUID) ([]byte, error)

	// Staff operations, not scoped to the requesting customer.
	TransitionStatus(ctx context.Context, orderID uuid.UUID, input *TransitionOrderInput) (*entity.Order, error)
	TransitionPayment(ctx context.Context, orderID uuid.UUID, input *TransitionPaymentInput) (*entity.Order, error)
}
