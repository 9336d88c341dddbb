package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Stock carries a CHECK constraint so a bug in the guarded decrement can
// never drive it negative.
type ProductModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	NameAr     string    `gorm:"type:varchar(255)"`
	Price      float64   `gorm:"type:numeric(12,2);not null"`
	Image      string    `gorm:"type:varchar(512)"`
	Stock      int       `gorm:"not null;default:0;check:stock >= 0"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
