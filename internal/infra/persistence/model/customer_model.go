// Package model contains the GORM-specific table structs. Mapping between
// these and the domain entities lives next to each repository.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(50)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FCMToken     string    `gorm:"type:varchar(512)"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
