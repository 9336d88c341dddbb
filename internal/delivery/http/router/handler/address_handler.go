package handler

import (
	"log/slog"
	"net/http"

	"souq/internal/delivery/http/response"
	"souq/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for address-book handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{uc: uc, logger: logger}
}

// ListAddresses returns the customer's address book.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses)
}

// CreateAddress saves a new address for the customer.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.CreateAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), customerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address)
}

// UpdateAddress applies a partial update to one of the customer's addresses.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	addressID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), customerID, addressID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address)
}

// DeleteAddress removes an address from the customer's book.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	addressID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), customerID, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// SetDefault marks an address as the customer's default shipping address.
func (h *AddressHandler) SetDefault(c echo.Context) error {
	customerID, err := customerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	addressID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.SetDefault(c.Request().Context(), customerID, addressID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address)
}
