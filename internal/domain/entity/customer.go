package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer roles for the authorization middleware.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Customer is the account entity. PasswordHash never leaves the domain; the
// JSON tag keeps it out of every serialized response.
type Customer struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	FCMToken     string    `json:"-"` // push notification device token, set by the mobile client
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Roles returns the role names carried in the customer's access token.
func (c *Customer) Roles() []string {
	roles := []string{RoleCustomer}
	if c.IsAdmin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}
