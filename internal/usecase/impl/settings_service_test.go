package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"souq/internal/domain/entity"
	"souq/internal/domain/repository"
	mockRepo "souq/internal/mocks/repository"
	"souq/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// settingsServiceFixtures holds all test dependencies for settings service tests.
type settingsServiceFixtures struct {
	service   usecase.SettingsUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestSettingsService(t *testing.T) settingsServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewSettingsService(txManager, logger)

	return settingsServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func storedSettings() *entity.SiteSettings {
	return &entity.SiteSettings{
		StoreName:      "Souq",
		StoreNameAr:    "سوق",
		SupportPhone:   "+96550000000",
		SupportEmail:   "support@souq.example",
		ShippingFee:    5,
		TaxRate:        0.1,
		CODEnabled:     true,
		MinOrderAmount: 10,
	}
}

func TestSettingsService_GetSettings_Success(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)

			mockFactory.EXPECT().SettingsRepo().Return(mockSettingsRepo)
			mockSettingsRepo.EXPECT().GetSettings(ctx).Return(storedSettings(), nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	settings, err := fx.service.GetSettings(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Souq", settings.StoreName)
	assert.Equal(t, 0.1, settings.TaxRate)
	assert.True(t, settings.CODEnabled)
}

func TestSettingsService_UpdateSettings_PartialApply(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	newFee := 7.5
	codOff := false
	input := &usecase.UpdateSettingsInput{
		ShippingFee: &newFee,
		CODEnabled:  &codOff,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)

			mockFactory.EXPECT().SettingsRepo().Return(mockSettingsRepo)
			mockSettingsRepo.EXPECT().GetSettings(ctx).Return(storedSettings(), nil)
			mockSettingsRepo.EXPECT().
				SaveSettings(ctx, mock.MatchedBy(func(s *entity.SiteSettings) bool {
					return s.ShippingFee == 7.5 && !s.CODEnabled
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	settings, err := fx.service.UpdateSettings(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 7.5, settings.ShippingFee)
	assert.False(t, settings.CODEnabled)
	// Untouched fields survive the partial update.
	assert.Equal(t, "Souq", settings.StoreName)
	assert.Equal(t, 0.1, settings.TaxRate)
	assert.Equal(t, float64(10), settings.MinOrderAmount)
}

func TestSettingsService_UpdateSettings_EmptyInputIsNoOp(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)

			mockFactory.EXPECT().SettingsRepo().Return(mockSettingsRepo)
			mockSettingsRepo.EXPECT().GetSettings(ctx).Return(storedSettings(), nil)
			mockSettingsRepo.EXPECT().
				SaveSettings(ctx, mock.MatchedBy(func(s *entity.SiteSettings) bool {
					return s.StoreName == "Souq" && s.ShippingFee == 5 && s.CODEnabled
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	settings, err := fx.service.UpdateSettings(ctx, &usecase.UpdateSettingsInput{})

	require.NoError(t, err)
	assert.Equal(t, *storedSettings(), *settings)
}
