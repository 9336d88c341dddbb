package repository

import (
	"context"

	"souq/internal/domain/entity"
)

// SettingsRepository stores the single site-settings document. Reads of a
// store that has never saved settings return zero-value defaults.
type SettingsRepository interface {
	// GetSettings retrieves the current site settings.
	GetSettings(ctx context.Context) (*entity.SiteSettings, error)

	// SaveSettings upserts the site settings document.
	SaveSettings(ctx context.Context, settings *entity.SiteSettings) error
}
