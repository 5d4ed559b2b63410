package datacache

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks github.com/KirkDiggler/dota-bot-discord/internal/repositories/datacache Cache,TimeProvider

import (
	"context"
	"time"
)

type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

const (
	// ErrCacheMiss is returned by Get when the key is absent or expired.
	ErrCacheMiss CacheError = "cache miss"
)

// Cache stores serialized datafeed responses for a bounded time.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key. A zero ttl keeps the value until it is
	// evicted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type TimeProvider interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time {
	return time.Now()
}
