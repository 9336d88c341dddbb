package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table. Item and
// address snapshots are JSONB documents frozen at checkout; orders are never
// deleted, so there is no DeletedAt column.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber     string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Items           []byte    `gorm:"type:jsonb;not null"`
	ShippingAddress []byte    `gorm:"type:jsonb;not null"`
	PaymentMethod   string    `gorm:"type:varchar(20);not null"`
	PaymentStatus   string    `gorm:"type:varchar(20);not null"`
	Status          string    `gorm:"type:varchar(20);not null;index"`
	Subtotal        float64   `gorm:"type:numeric(12,2);not null"`
	Tax             float64   `gorm:"type:numeric(12,2);not null;default:0"`
	ShippingCost    float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Discount        float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Total           float64   `gorm:"type:numeric(12,2);not null"`
	Notes           string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
