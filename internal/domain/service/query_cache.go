package service

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// QueryCache is a read-through cache for expensive query results.
// Implementations must treat it as best effort: callers log failures
// and fall back to the underlying query.
type QueryCache interface {
	// Get retrieves the cached payload for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores payload under key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
