package service

import (
	"context"
)

// Order event types published on the commerce topic.
const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
)

// OrderEvent is the message published when an order is created or moves
// through its lifecycle. Downstream consumers (fulfilment dashboard, email
// worker) subscribe to these.
type OrderEvent struct {
	RequestID     string  `json:"request_id,omitempty"` // For distributed tracing
	Type          string  `json:"type"`
	OrderID       string  `json:"order_id"`
	OrderNumber   string  `json:"order_number"`
	CustomerID    string  `json:"customer_id"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	Total         float64 `json:"total"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
