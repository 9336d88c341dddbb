package usecase

import (
	"context"

	"souq/internal/domain/entity"
)

// UpdateSettingsInput defines a partial site-settings update.
type UpdateSettingsInput struct {
	StoreName      *string  `json:"storeName,omitempty"`
	StoreNameAr    *string  `json:"storeNameAr,omitempty"`
	SupportPhone   *string  `json:"supportPhone,omitempty"`
	SupportEmail   *string  `json:"supportEmail,omitempty" validate:"omitempty,email"`
	ShippingFee    *float64 `json:"shippingFee,omitempty" validate:"omitempty,gte=0"`
	TaxRate        *float64 `json:"taxRate,omitempty" validate:"omitempty,gte=0,lte=1"`
	CODEnabled     *bool    `json:"codEnabled,omitempty"`
	MinOrderAmount *float64 `json:"minOrderAmount,omitempty" validate:"omitempty,gte=0"`
}

// SettingsUsecase defines the interface for site-settings operations.
type SettingsUsecase interface {
	GetSettings(ctx context.Context) (*entity.SiteSettings, error)
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.SiteSettings, error)
}
