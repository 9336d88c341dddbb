package postgres

import (
	"context"

	"souq/internal/domain/entity"
	"souq/internal/domain/repository"
	"souq/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The site_settings table holds exactly one row.
const settingsRowID = int16(1)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// GetSettings retrieves the site settings. A store that has never saved
// settings gets zero-value defaults with COD enabled, not an error.
func (repo *settingsRepository) GetSettings(ctx context.Context) (*entity.SiteSettings, error) {
	var settingsM model.SiteSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", settingsRowID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.SiteSettings{CODEnabled: true}, nil
		}

		return nil, errors.Wrap(err, "failed to load site settings")
	}

	return toSettingsDomain(&settingsM), nil
}

// SaveSettings upserts the single settings row.
func (repo *settingsRepository) SaveSettings(ctx context.Context, settings *entity.SiteSettings) error {
	settingsM := fromSettingsDomain(settings)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"store_name", "store_name_ar", "support_phone", "support_email",
				"shipping_fee", "tax_rate", "cod_enabled", "min_order_amount", "updated_at",
			}),
		}).
		Create(settingsM).Error; err != nil {
		return errors.Wrap(err, "failed to save site settings")
	}

	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toSettingsDomain(data *model.SiteSettingsModel) *entity.SiteSettings {
	if data == nil {
		return nil
	}

	return &entity.SiteSettings{
		StoreName:      data.StoreName,
		StoreNameAr:    data.StoreNameAr,
		SupportPhone:   data.SupportPhone,
		SupportEmail:   data.SupportEmail,
		ShippingFee:    data.ShippingFee,
		TaxRate:        data.TaxRate,
		CODEnabled:     data.CODEnabled,
		MinOrderAmount: data.MinOrderAmount,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromSettingsDomain(data *entity.SiteSettings) *model.SiteSettingsModel {
	if data == nil {
		return nil
	}

	return &model.SiteSettingsModel{
		ID:             settingsRowID,
		StoreName:      data.StoreName,
		StoreNameAr:    data.StoreNameAr,
		SupportPhone:   data.SupportPhone,
		SupportEmail:   data.SupportEmail,
		ShippingFee:    data.ShippingFee,
		TaxRate:        data.TaxRate,
		CODEnabled:     data.CODEnabled,
		MinOrderAmount: data.MinOrderAmount,
		UpdatedAt:      data.UpdatedAt,
	}
}
