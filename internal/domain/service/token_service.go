// Package service defines domain-level contracts implemented by the
// infrastructure layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the contract for issuing and validating access tokens.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a
	// customer and their roles.
	GenerateTokens(customerID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
