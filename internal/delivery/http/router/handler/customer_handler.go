package handler

import (
	"log/slog"
	"net/http"

	"souq/internal/delivery/http/response"
	"souq/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for account-related handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, logger: logger}
}

// Register handles the customer registration request.
func (h *CustomerHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// Login handles the customer login request.
func (h *CustomerHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// GetProfile returns the authenticated customer's profile.
func (h *CustomerHandler) GetProfile(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	customer, err := h.uc.GetProfile(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// UpdateDeviceToken stores the push notification token of the customer's
// current device.
func (h *CustomerHandler) UpdateDeviceToken(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateDeviceTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid device token input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateDeviceToken(c.Request().Context(), customerID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}
