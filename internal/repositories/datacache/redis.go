package datacache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dota:"

// RedisConfig holds configuration for the Redis cache
type RedisConfig struct {
	Client redis.UniversalClient
	// Prefix is prepended to every key; defaults to "dota:".
	Prefix string
}

type redisCache struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis creates a Redis-backed cache
func NewRedis(cfg *RedisConfig) Cache {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = keyPrefix
	}

	return &redisCache{
		client: cfg.Client,
		prefix: prefix,
	}
}

func (r *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get %s from Redis: %w", key, err)
	}

	return data, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if err := r.client.Set(ctx, r.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in Redis: %w", key, err)
	}

	return nil
}
