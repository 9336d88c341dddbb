package model

import "time"

// SiteSettingsModel is the GORM-specific struct for the 'site_settings'
// table. The table holds exactly one row, pinned to ID 1; writes are upserts
// against that row.
type SiteSettingsModel struct {
	ID             int16   `gorm:"primary_key"`
	StoreName      string  `gorm:"type:varchar(255);not null"`
	StoreNameAr    string  `gorm:"type:varchar(255)"`
	SupportPhone   string  `gorm:"type:varchar(50)"`
	SupportEmail   string  `gorm:"type:varchar(255)"`
	ShippingFee    float64 `gorm:"type:numeric(12,2);not null;default:0"`
	TaxRate        float64 `gorm:"type:numeric(6,4);not null;default:0"`
	CODEnabled     bool    `gorm:"not null;default:true"`
	MinOrderAmount float64 `gorm:"type:numeric(12,2);not null;default:0"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (SiteSettingsModel) TableName() string {
	return "site_settings"
}
