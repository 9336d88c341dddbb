package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryModel is the GORM-specific struct for the 'categories' table.
// Attributes holds the category's own definition set as a JSONB document;
// inheritance is resolved at read time by walking parent_id.
type CategoryModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ParentID   *uuid.UUID `gorm:"type:uuid;index"`
	Name       string     `gorm:"type:varchar(255);not null"`
	NameAr     string     `gorm:"type:varchar(255)"`
	Slug       string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Attributes []byte     `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
