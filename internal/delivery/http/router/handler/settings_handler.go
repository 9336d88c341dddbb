package handler

import (
	"log/slog"
	"net/http"

	"souq/internal/delivery/http/response"
	"souq/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SettingsHandler holds dependencies for site-settings handlers.
type SettingsHandler struct {
	uc     usecase.SettingsUsecase
	logger *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler, injected by Fx.
func NewSettingsHandler(uc usecase.SettingsUsecase, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{uc: uc, logger: logger}
}

// GetSettings returns the storefront settings document.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.uc.GetSettings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// UpdateSettings applies a partial settings update. Staff only.
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var input *usecase.UpdateSettingsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid settings input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	settings, err := h.uc.UpdateSettings(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings)
}
