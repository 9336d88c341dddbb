package handler

import (
	"log/slog"
	"net/http"

	"souq/internal/delivery/http/response"
	"souq/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// GetCart returns the customer's current cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.GetCart(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddItem adds a product to the cart or merges its quantity into an existing
// line.
func (h *CartHandler) AddItem(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.AddCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid cart item input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.AddItem(c.Request().Context(), customerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// UpdateItemQuantity sets the quantity of an existing cart line.
func (h *CartHandler) UpdateItemQuantity(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid quantity input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.UpdateItemQuantity(c.Request().Context(), customerID, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveItem removes a product line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), customerID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// ApplyCoupon records a priced coupon on the cart.
func (h *CartHandler) ApplyCoupon(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.ApplyCouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid coupon input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.ApplyCoupon(c.Request().Context(), customerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// ClearCart removes the customer's cart document.
func (h *CartHandler) ClearCart(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ClearCart(c.Request().Context(), customerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}
