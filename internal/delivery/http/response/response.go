// Package response renders the unified API envelope.
package response

import (
	"net/http"

	domainerrors "souq/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Envelope is the unified API response structure. Status is "success" for
// 2xx, "fail" for client errors and "error" for server errors.
type Envelope struct {
	Status  string                  `json:"status"`
	Data    any                     `json:"data,omitempty"`
	Message string                  `json:"message,omitempty"`
	Error   *domainerrors.ErrorInfo `json:"error,omitempty"`
}

// Success writes a success envelope with the given payload.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Status: "success",
		Data:   data,
	})
}

// Error writes a fail/error envelope.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Envelope{
		Status:  domainerrors.StatusForHTTPCode(statusCode),
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BindingError reports a request body that could not be decoded.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, "UNAUTHORIZED", message, "")
}

// Forbidden 403 error
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, "FORBIDDEN", message, "")
}
