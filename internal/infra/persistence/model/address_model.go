package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// A partial unique index on (customer_id) WHERE is_default guards the
// single-default invariant at the storage layer as well.
type AddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Phone      string    `gorm:"type:varchar(50);not null"`
	City       string    `gorm:"type:varchar(100);not null"`
	Area       string    `gorm:"type:varchar(100);not null"`
	Street     string    `gorm:"type:varchar(255);not null"`
	Landmark   string    `gorm:"type:varchar(255)"`
	Apartment  string    `gorm:"type:varchar(100)"`
	IsDefault  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
