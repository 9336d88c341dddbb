// Package cache contains the Redis-backed cache layer.
package cache

import (
	"context"
	"log/slog"

	"souq/config"
	"souq/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedis creates the shared Redis client. Redis is optional: without
// configuration the client is nil and every consumer degrades to a no-op.
func NewRedis(params Params) (*redis.Client, error) {
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		params.Logger.Info("Redis not configured, caching disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
