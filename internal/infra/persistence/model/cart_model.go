package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel is the GORM-specific struct for the 'carts' table. Each customer
// owns at most one cart, enforced by the unique index on customer_id. Items
// are stored as a JSONB document because cart lines are always read and
// written as one unit with their cart.
type CartModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Items      []byte    `gorm:"type:jsonb;not null;default:'[]'"`
	Subtotal   float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Tax        float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Shipping   float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Discount   float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Total      float64   `gorm:"type:numeric(12,2);not null;default:0"`
	CouponCode string    `gorm:"type:varchar(100)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}
