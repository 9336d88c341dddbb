package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionStatus(t *testing.T) {
	allStatuses := []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
	}

	allowed := map[OrderStatus][]OrderStatus{
		OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
		OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
		OrderStatusProcessing: {OrderStatusShipped},
		OrderStatusShipped:    {OrderStatusDelivered},
		OrderStatusDelivered:  {},
		OrderStatusCancelled:  {},
	}

	for _, from := range allStatuses {
		allowedSet := make(map[OrderStatus]bool)
		for _, to := range allowed[from] {
			allowedSet[to] = true
		}

		for _, to := range allStatuses {
			got := CanTransitionStatus(from, to)
			assert.Equal(t, allowedSet[to], got, "%s -> %s", from, to)
		}
	}
}

func TestCanTransitionPayment(t *testing.T) {
	allStatuses := []PaymentStatus{
		PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded,
	}

	allowed := map[PaymentStatus][]PaymentStatus{
		PaymentStatusPending:  {PaymentStatusPaid, PaymentStatusFailed},
		PaymentStatusPaid:     {PaymentStatusRefunded},
		PaymentStatusFailed:   {PaymentStatusPaid},
		PaymentStatusRefunded: {},
	}

	for _, from := range allStatuses {
		allowedSet := make(map[PaymentStatus]bool)
		for _, to := range allowed[from] {
			allowedSet[to] = true
		}

		for _, to := range allStatuses {
			got := CanTransitionPayment(from, to)
			assert.Equal(t, allowedSet[to], got, "%s -> %s", from, to)
		}
	}
}

func TestCanTransitionStatus_SelfAndUnknown(t *testing.T) {
	assert.False(t, CanTransitionStatus(OrderStatusPending, OrderStatusPending))
	assert.False(t, CanTransitionStatus(OrderStatus("BOGUS"), OrderStatusConfirmed))
	assert.False(t, CanTransitionPayment(PaymentStatus("BOGUS"), PaymentStatusPaid))
}

func TestOrder_TransitionStatus_CancelRefundsPaidOrder(t *testing.T) {
	order := &Order{
		Status:        OrderStatusConfirmed,
		PaymentStatus: PaymentStatusPaid,
	}

	require.NoError(t, order.TransitionStatus(OrderStatusCancelled))

	assert.Equal(t, OrderStatusCancelled, order.Status)
	assert.Equal(t, PaymentStatusRefunded, order.PaymentStatus)
}

func TestOrder_TransitionStatus_CancelLeavesUnpaidPaymentAlone(t *testing.T) {
	order := &Order{
		Status:        OrderStatusPending,
		PaymentStatus: PaymentStatusPending,
	}

	require.NoError(t, order.TransitionStatus(OrderStatusCancelled))

	assert.Equal(t, OrderStatusCancelled, order.Status)
	assert.Equal(t, PaymentStatusPending, order.PaymentStatus)
}

func TestOrder_TransitionStatus_InvalidEdgeLeavesOrderUntouched(t *testing.T) {
	order := &Order{
		Status:        OrderStatusShipped,
		PaymentStatus: PaymentStatusPaid,
	}

	err := order.TransitionStatus(OrderStatusCancelled)

	require.Error(t, err)
	assert.Equal(t, OrderStatusShipped, order.Status)
	assert.Equal(t, PaymentStatusPaid, order.PaymentStatus)

	var invalidErr *InvalidTransitionError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "status", invalidErr.Axis)
	assert.Equal(t, "invalid status transition from SHIPPED to CANCELLED", err.Error())
}

func TestOrder_TransitionPayment(t *testing.T) {
	order := &Order{PaymentStatus: PaymentStatusPending}

	require.NoError(t, order.TransitionPayment(PaymentStatusFailed))
	assert.Equal(t, PaymentStatusFailed, order.PaymentStatus)

	// A failed payment can be retried.
	require.NoError(t, order.TransitionPayment(PaymentStatusPaid))
	require.NoError(t, order.TransitionPayment(PaymentStatusRefunded))

	err := order.TransitionPayment(PaymentStatusPaid)
	require.Error(t, err)

	var invalidErr *InvalidTransitionError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "payment", invalidErr.Axis)
}

func TestOrder_CancellableByCustomer(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   bool
	}{
		{OrderStatusPending, true},
		{OrderStatusConfirmed, true},
		{OrderStatusProcessing, false},
		{OrderStatusShipped, false},
		{OrderStatusDelivered, false},
		{OrderStatusCancelled, false},
	}

	for _, tt := range tests {
		order := &Order{Status: tt.status}
		assert.Equal(t, tt.want, order.CancellableByCustomer(), "status %s", tt.status)
	}
}

func TestOrder_Recompute(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{UnitPrice: 12, Quantity: 2},
			{UnitPrice: 3, Quantity: 1},
		},
		Tax:          2.7,
		ShippingCost: 5,
		Discount:     40,
	}

	order.Recompute()

	assert.Equal(t, 24.0, order.Items[0].TotalPrice)
	assert.Equal(t, 27.0, order.Subtotal)
	// 27 + 2.7 + 5 - 40 is negative, so the payable total clamps at zero.
	assert.Equal(t, 0.0, order.Total)
}

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, PaymentMethodCOD.IsValid())
	assert.True(t, PaymentMethodCard.IsValid())
	assert.False(t, PaymentMethod("WIRE").IsValid())
	assert.False(t, PaymentMethod("").IsValid())
}
