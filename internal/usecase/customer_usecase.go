package usecase

import (
	"context"

	"souq/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput defines the data required to register a new customer.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required for a customer to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput returns the generated tokens after registration or login.
type AuthOutput struct {
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
	Customer     *entity.Customer `json:"customer"`
}

// UpdateDeviceTokenInput carries the push notification token of the
// customer's current device.
type UpdateDeviceTokenInput struct {
	Token string `json:"token" validate:"required"`
}

// CustomerUsecase defines the interface for account operations.
type CustomerUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error)
	UpdateDeviceToken(ctx context.Context, customerID uuid.UUID, input *UpdateDeviceTokenInput) error
}
