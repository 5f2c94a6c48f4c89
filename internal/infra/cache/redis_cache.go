package cache

import (
	"context"
	"log/slog"
	"time"

	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisQueryCache implements QueryCache on a Redis instance. Entries
// expire by TTL; there is no explicit invalidation.
type redisQueryCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisQueryCache creates a Redis-backed QueryCache.
func NewRedisQueryCache(client *redis.Client, logger *slog.Logger) service.QueryCache {
	return &redisQueryCache{client: client, logger: logger}
}

// Get retrieves a cached payload. A missing key maps to ErrCacheMiss.
func (c *redisQueryCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "failed to read query cache")
	}

	return payload, nil
}

// Set stores a payload under key with the given TTL.
func (c *redisQueryCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write query cache")
	}

	return nil
}
