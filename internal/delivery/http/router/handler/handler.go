// Package handler contains the HTTP handlers for the application.
package handler

import (
	"souq/internal/delivery/http/middleware"
	domainerrors "souq/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// customerIDFromContext reads the authenticated customer's ID placed on the
// context by the auth middleware.
func customerIDFromContext(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(middleware.ContextKeyCustomerID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}
