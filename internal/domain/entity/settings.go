package entity

import "time"

// SiteSettings is the single store-wide configuration document. The write
// path treats it as an upsert keyed by a fixed row.
type SiteSettings struct {
	StoreName      string    `json:"storeName"`
	StoreNameAr    string    `json:"storeNameAr,omitempty"`
	SupportPhone   string    `json:"supportPhone,omitempty"`
	SupportEmail   string    `json:"supportEmail,omitempty"`
	ShippingFee    float64   `json:"shippingFee"`
	TaxRate        float64   `json:"taxRate"`
	CODEnabled     bool      `json:"codEnabled"`
	MinOrderAmount float64   `json:"minOrderAmount"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
