package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/core"
)

// RateLimitConfig configures rate limiting behavior
type RateLimitConfig struct {
	// MaxRequests is the maximum number of requests allowed
	MaxRequests int

	// Window is the time window for rate limiting
	Window time.Duration

	// KeyFunc extracts the rate limit key from context
	KeyFunc func(*core.InteractionContext) string

	// Message shown when rate limited
	Message string

	// Store for tracking rate limits (if nil, uses in-memory)
	Store RateLimitStore

	// Metrics counts rejected interactions when set
	Metrics MetricsCollector
}

// RateLimitStore tracks rate limit data
type RateLimitStore interface {
	// Increment increments the counter for a key and returns the new count
	Increment(ctx context.Context, key string, window time.Duration) (int, error)

	// Reset resets the counter for a key
	Reset(ctx context.Context, key string) error
}

// defaultKeyFunc uses user ID as the rate limit key
func defaultKeyFunc(ctx *core.InteractionContext) string {
	return ctx.UserID
}

// RateLimitMiddleware applies rate limiting
func RateLimitMiddleware(config *RateLimitConfig) core.Middleware {
	if config.KeyFunc == nil {
		config.KeyFunc = defaultKeyFunc
	}
	if config.Message == "" {
		config.Message = fmt.Sprintf("You're doing that too fast! Please wait %v before trying again.", config.Window)
	}
	if config.Store == nil {
		config.Store = NewMemoryRateLimitStore()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			key := config.KeyFunc(ctx)
			if key == "" {
				return next.Handle(ctx)
			}

			count, err := config.Store.Increment(ctx.Context, key, config.Window)
			if err != nil {
				// A broken store never blocks a command.
				log.WithError(err).WithField("key", key).Warn("Rate limit store failed")
				return next.Handle(ctx)
			}

			if count > config.MaxRequests {
				if config.Metrics != nil {
					config.Metrics.IncrementCounter(MetricRateLimited, extractLabels(ctx))
				}
				return nil, core.NewUserError("⏱️ "+config.Message, core.ErrorCodeTooManyRequests)
			}

			return next.Handle(ctx)
		})
	}
}

// UserRateLimitMiddleware applies per-user rate limiting. metrics may be nil.
func UserRateLimitMiddleware(maxRequests int, window time.Duration, store RateLimitStore, metrics MetricsCollector) core.Middleware {
	return RateLimitMiddleware(&RateLimitConfig{
		MaxRequests: maxRequests,
		Window:      window,
		KeyFunc:     defaultKeyFunc,
		Store:       store,
		Metrics:     metrics,
	})
}

// MemoryRateLimitStore is an in-memory rate limit store
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	count   int
	resetAt time.Time
}

// NewMemoryRateLimitStore creates a new in-memory store. Close stops its
// cleanup loop.
func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	store := &MemoryRateLimitStore{
		buckets: make(map[string]*bucket),
		now:     time.Now,
		stop:    make(chan struct{}),
	}

	go store.cleanup(time.Minute)

	return store
}

// Increment increments the counter for a key
func (s *MemoryRateLimitStore) Increment(_ context.Context, key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	b, exists := s.buckets[key]
	if !exists || !now.Before(b.resetAt) {
		b = &bucket{resetAt: now.Add(window)}
		s.buckets[key] = b
	}

	b.count++

	return b.count, nil
}

// Reset resets the counter for a key
func (s *MemoryRateLimitStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.buckets, key)
	return nil
}

func (s *MemoryRateLimitStore) Close() {
	s.once.Do(func() { close(s.stop) })
}

// cleanup periodically removes expired buckets
func (s *MemoryRateLimitStore) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			now := s.now()
			for key, b := range s.buckets {
				if !now.Before(b.resetAt) {
					delete(s.buckets, key)
				}
			}
			s.mu.Unlock()
		}
	}
}

// RedisRateLimitStore shares rate limit windows between bot instances.
// Each key is a counter that expires with its window.
type RedisRateLimitStore struct {
	client redis.UniversalClient
	prefix string
}

type RedisRateLimitConfig struct {
	Client redis.UniversalClient
	// Prefix defaults to "ratelimit:"
	Prefix string
}

func NewRedisRateLimitStore(cfg *RedisRateLimitConfig) *RedisRateLimitStore {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "ratelimit:"
	}

	return &RedisRateLimitStore{
		client: cfg.Client,
		prefix: prefix,
	}
}

// Increment counts a request. The expiry is only set on the first request of
// a window so later requests don't extend it.
func (s *RedisRateLimitStore) Increment(ctx context.Context, key string, window time.Duration) (int, error) {
	if strings.TrimSpace(key) == "" {
		return 0, fmt.Errorf("rate limit key is required")
	}

	redisKey := s.prefix + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to increment rate limit %s: %w", key, err)
	}

	return int(incr.Val()), nil
}

func (s *RedisRateLimitStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit %s: %w", key, err)
	}
	return nil
}
