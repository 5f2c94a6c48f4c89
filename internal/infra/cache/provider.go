// Package cache provides the proximity query result cache.
package cache

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// noopCache is a no-op implementation when the cache is disabled. Every
// lookup misses, so searches always hit the spatial index.
type noopCache struct{}

func (noopCache) Get(_ context.Context, _ string) ([]byte, error) {
	return nil, service.ErrCacheMiss
}

func (noopCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}

// Params holds dependencies for QueryCache, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates a QueryCache based on configuration.
func New(params Params) (service.QueryCache, error) {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("Query cache disabled, using no-op cache")

		return noopCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
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
			logger.Info("Closing Redis query cache")

			return client.Close()
		},
	})

	logger.Info("Using Redis query cache", slog.String("addr", cfg.Addr))

	return NewRedisQueryCache(client, logger), nil
}
