package impl

import (
	"context"
	"log/slog"

	"souq/internal/domain/entity"
	"souq/internal/domain/repository"
	"souq/internal/usecase"

	"github.com/pkg/errors"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	return &settingsService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetSettings returns the current site settings.
func (srv *settingsService) GetSettings(ctx context.Context) (*entity.SiteSettings, error) {
	var settings *entity.SiteSettings

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.SettingsRepo().GetSettings(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load site settings")
		}
		settings = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get settings")
	}

	return settings, nil
}

// UpdateSettings applies a partial update to the site-settings document.
func (srv *settingsService) UpdateSettings(ctx context.Context, input *usecase.UpdateSettingsInput) (*entity.SiteSettings, error) {
	srv.logger.Info("Updating site settings")

	var settings *entity.SiteSettings

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		settingsRepo := repoFactory.SettingsRepo()

		current, err := settingsRepo.GetSettings(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load site settings")
		}

		applySettingsUpdate(current, input)

		if err := settingsRepo.SaveSettings(ctx, current); err != nil {
			return errors.Wrap(err, "failed to save site settings")
		}
		settings = current

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update settings")
	}

	return settings, nil
}

func applySettingsUpdate(settings *entity.SiteSettings, input *usecase.UpdateSettingsInput) {
	if input.StoreName != nil {
		settings.StoreName = *input.StoreName
	}
	if input.StoreNameAr != nil {
		settings.StoreNameAr = *input.StoreNameAr
	}
	if input.SupportPhone != nil {
		settings.SupportPhone = *input.SupportPhone
	}
	if input.SupportEmail != nil {
		settings.SupportEmail = *input.SupportEmail
	}
	if input.ShippingFee != nil {
		settings.ShippingFee = *input.ShippingFee
	}
	if input.TaxRate != nil {
		settings.TaxRate = *input.TaxRate
	}
	if input.CODEnabled != nil {
		settings.CODEnabled = *input.CODEnabled
	}
	if input.MinOrderAmount != nil {
		settings.MinOrderAmount = *input.MinOrderAmount
	}
}
