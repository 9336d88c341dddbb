package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a customer's saved shipping address. A customer may own many
// addresses; at most one of them has IsDefault set at any instant — the
// enforcement lives in the address write path, not here.
type Address struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	City       string    `json:"city"`
	Area       string    `json:"area"`
	Street     string    `json:"street"`
	Landmark   string    `json:"landmark,omitempty"`
	Apartment  string    `json:"apartment,omitempty"`
	IsDefault  bool      `json:"isDefault"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Snapshot copies the address into the immutable form embedded in an order.
func (a *Address) Snapshot() ShippingAddress {
	return ShippingAddress{
		Name:      a.Name,
		Phone:     a.Phone,
		City:      a.City,
		Area:      a.Area,
		Street:    a.Street,
		Landmark:  a.Landmark,
		Apartment: a.Apartment,
	}
}
