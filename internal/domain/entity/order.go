package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// PaymentStatus is the payment state of an order, orthogonal to OrderStatus
// except at cancellation.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// PaymentMethod is how the customer pays for an order.
type PaymentMethod string

const (
	PaymentMethodCOD  PaymentMethod = "COD"
	PaymentMethodCard PaymentMethod = "CARD"
)

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodCard:
		return true
	default:
		return false
	}
}

// The allowed directed edges of each state machine. Keeping the edge sets as
// data makes every transition decision exhaustively testable.
var validStatusNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:    {OrderStatusConfirmed: true, OrderStatusCancelled: true},
	OrderStatusConfirmed:  {OrderStatusProcessing: true, OrderStatusCancelled: true},
	OrderStatusProcessing: {OrderStatusShipped: true},
	OrderStatusShipped:    {OrderStatusDelivered: true},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

var validPaymentNext = map[PaymentStatus]map[PaymentStatus]bool{
	PaymentStatusPending:  {PaymentStatusPaid: true, PaymentStatusFailed: true},
	PaymentStatusPaid:     {PaymentStatusRefunded: true},
	PaymentStatusFailed:   {PaymentStatusPaid: true},
	PaymentStatusRefunded: {},
}

// CanTransitionStatus reports whether from -> to is an allowed status edge.
func CanTransitionStatus(from, to OrderStatus) bool {
	return validStatusNext[from][to]
}

// CanTransitionPayment reports whether from -> to is an allowed payment edge.
func CanTransitionPayment(from, to PaymentStatus) bool {
	return validPaymentNext[from][to]
}

// InvalidTransitionError reports an attempted state change that is not in the
// allowed edge set, naming the current and requested states.
type InvalidTransitionError struct {
	Axis string // "status" or "payment"
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition from %s to %s", e.Axis, e.From, e.To)
}

// OrderItem carries a frozen product snapshot so historical orders stay
// stable regardless of later product edits.
type OrderItem struct {
	ProductID  uuid.UUID `json:"productId"`
	Name       string    `json:"name"`
	NameAr     string    `json:"nameAr,omitempty"`
	Image      string    `json:"image,omitempty"`
	UnitPrice  float64   `json:"unitPrice"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"totalPrice"`
}

// ShippingAddress is the address snapshot copied at checkout, decoupled from
// the live Address document.
type ShippingAddress struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Area      string `json:"area"`
	Street    string `json:"street"`
	Landmark  string `json:"landmark,omitempty"`
	Apartment string `json:"apartment,omitempty"`
}

// Order is created once at checkout and afterwards mutated only through
// lifecycle transitions. It is never deleted; cancellation is a status.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	CustomerID      uuid.UUID       `json:"customerId"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	Status          OrderStatus     `json:"status"`
	Subtotal        float64         `json:"subtotal"`
	Tax             float64         `json:"tax"`
	ShippingCost    float64         `json:"shippingCost"`
	Discount        float64         `json:"discount"`
	Total           float64         `json:"total"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Recompute derives subtotal and total from the frozen item snapshots, using
// the same arithmetic as the cart aggregation (clamped at zero).
func (o *Order) Recompute() {
	var subtotal float64
	for i := range o.Items {
		item := &o.Items[i]
		item.TotalPrice = item.UnitPrice * float64(item.Quantity)
		subtotal += item.TotalPrice
	}
	o.Subtotal = subtotal

	total := subtotal + o.Tax + o.ShippingCost - o.Discount
	if total < 0 {
		total = 0
	}
	o.Total = total
}

// TransitionStatus applies a fulfilment-status change in place. Cancelling a
// paid order also drives the payment axis to REFUNDED as part of the same
// operation; the two axes are decoupled otherwise.
func (o *Order) TransitionStatus(target OrderStatus) error {
	if !CanTransitionStatus(o.Status, target) {
		return &InvalidTransitionError{Axis: "status", From: string(o.Status), To: string(target)}
	}

	o.Status = target
	if target == OrderStatusCancelled && o.PaymentStatus == PaymentStatusPaid {
		o.PaymentStatus = PaymentStatusRefunded
	}

	return nil
}

// TransitionPayment applies a payment-status change in place.
func (o *Order) TransitionPayment(target PaymentStatus) error {
	if !CanTransitionPayment(o.PaymentStatus, target) {
		return &InvalidTransitionError{Axis: "payment", From: string(o.PaymentStatus), To: string(target)}
	}

	o.PaymentStatus = target

	return nil
}

// CancellableByCustomer reports whether the customer may still cancel the
// order themselves. After processing starts only staff can reverse an order.
func (o *Order) CancellableByCustomer() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusConfirmed
}

// ItemCount is the derived number of units in the order.
func (o *Order) ItemCount() int {
	var count int
	for i := range o.Items {
		count += o.Items[i].Quantity
	}

	return count
}
