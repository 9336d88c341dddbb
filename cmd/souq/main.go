package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"souq/config"
	"souq/internal/delivery"
	"souq/internal/delivery/http"
	"souq/internal/delivery/http/middleware"
	"souq/internal/delivery/http/router/handler"
	"souq/internal/domain/repository"
	"souq/internal/domain/service"
	"souq/internal/infra/auth"
	"souq/internal/infra/cache"
	logs "souq/internal/infra/log"
	"souq/internal/infra/notification"
	"souq/internal/infra/ordernum"
	"souq/internal/infra/persistence/postgres"
	"souq/internal/infra/pubsub"
	"souq/internal/infra/qrcode"
	"souq/internal/usecase"
	"souq/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewRedis,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			newFirebaseService,
			newQRCodeService,
			newOrderNumberGenerator,
			newFilterCache,
			pubsub.NewEventPublisher,
		),
	)
}

// newPasswordHasher builds the bcrypt hasher from the configured cost
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", cfg.Orders.TrackingBaseURL)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.Orders.TrackingBaseURL)
}

// newOrderNumberGenerator builds the order number generator from the
// configured prefix
func newOrderNumberGenerator(cfg *config.Config) service.OrderNumberGenerator {
	return ordernum.NewGenerator(cfg.Orders.NumberPrefix)
}

// newFilterCache builds the category filter cache on the shared Redis client
func newFilterCache(client *redis.Client, cfg *config.Config) service.FilterCache {
	return cache.NewFilterCache(client, cfg.Catalog.FilterCacheTTL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCustomerService,
			impl.NewCartService,
			impl.NewAddressService,
			newOrderUsecase,
			impl.NewCatalogService,
			impl.NewSettingsService,
		),
	)
}

type orderUsecaseParams struct {
	fx.In

	TxManager repository.TransactionManager
	NumberGen service.OrderNumberGenerator
	Publisher service.EventPublisher
	Notifier  service.NotificationService
	QRGen     service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// newOrderUsecase passes the configured collision retry count to the order service
func newOrderUsecase(params orderUsecaseParams) usecase.OrderUsecase {
	return impl.NewOrderService(
		params.TxManager,
		params.NumberGen,
		params.Publisher,
		params.Notifier,
		params.QRGen,
		params.Config.Orders.MaxNumberRetries,
		params.Logger,
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCustomerHandler,
			handler.NewCartHandler,
			handler.NewAddressHandler,
			handler.NewOrderHandler,
			handler.NewCatalogHandler,
			handler.NewSettingsHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
