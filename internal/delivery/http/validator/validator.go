// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	govalidator "github.com/go-playground/validator/v10"

	domainerrors "souq/internal/domain/errors"
)

// CustomValidator wraps the go-playground validator for echo.
type CustomValidator struct {
	validate *govalidator.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: govalidator.New(govalidator.WithRequiredStructEnabled()),
	}
}

// Validate checks a bound request struct against its validate tags. Failures
// surface as the application's validation error so the error handler renders
// them in the standard envelope.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
