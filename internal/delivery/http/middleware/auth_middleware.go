// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"slices"
	"strings"

	"souq/config"
	"souq/internal/delivery/http/response"
	"souq/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate.
const (
	ContextKeyCustomerID = "customerID"
	ContextKeyRoles      = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "Failed to parse token claims")
		}

		// Extract customer ID
		customerIDStr, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, "Customer ID missing from token")
		}
		customerID, err := uuid.Parse(customerIDStr)
		if err != nil {
			return response.Unauthorized(c, "Invalid customer ID format in token")
		}

		// Extract roles
		rolesClaim, _ := claims["roles"].([]any)
		var roles []string
		for _, r := range rolesClaim {
			if roleStr, ok := r.(string); ok {
				roles = append(roles, roleStr)
			}
		}

		// Set customer info on the context for handlers to use
		c.Set(ContextKeyCustomerID, customerID)
		c.Set(ContextKeyRoles, roles)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the customer has a
// specific role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get(ContextKeyRoles)
			roles, ok := rolesVal.([]string)
			if !ok {
				return response.Forbidden(c, "Permission denied: role information missing")
			}

			if !slices.Contains(roles, requiredRole) {
				return response.Forbidden(c, "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}
