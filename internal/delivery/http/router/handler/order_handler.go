package handler

import (
	"log/slog"
	"net/http"

	"souq/internal/delivery/http/response"
	"souq/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for checkout and order-lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// Checkout places an order from the customer's current cart.
func (h *OrderHandler) Checkout(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Checkout(c.Request().Context(), customerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListOrders returns the customer's orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one of the customer's orders.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.GetOrder(c.Request().Context(), customerID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// CancelOrder lets a customer cancel an order that has not started
// fulfilment.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), customerID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// TrackingQR streams the order's tracking QR code as a PNG image.
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.uc.TrackingQR(c.Request().Context(), customerID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// TransitionStatus moves an order along the fulfilment lifecycle. Staff only.
func (h *OrderHandler) TransitionStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.TransitionOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.TransitionStatus(c.Request().Context(), orderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// TransitionPayment moves an order along the payment lifecycle. Staff only.
func (h *OrderHandler) TransitionPayment(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.TransitionPaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid payment status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.TransitionPayment(c.Request().Context(), orderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}
