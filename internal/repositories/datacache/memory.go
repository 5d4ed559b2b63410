package datacache

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultMemorySize = 1024
	defaultMemoryTTL  = 24 * time.Hour
)

// MemoryConfig holds configuration for the in-memory cache
type MemoryConfig struct {
	Size int
	// MaxTTL bounds how long any entry lives, including those set with a
	// zero ttl.
	MaxTTL       time.Duration
	TimeProvider TimeProvider
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

type memoryCache struct {
	lru          *expirable.LRU[string, memoryEntry]
	timeProvider TimeProvider
}

// NewMemory creates an in-process cache used when Redis is not configured
func NewMemory(cfg *MemoryConfig) Cache {
	if cfg == nil {
		cfg = &MemoryConfig{}
	}

	size := cfg.Size
	if size <= 0 {
		size = defaultMemorySize
	}

	maxTTL := cfg.MaxTTL
	if maxTTL <= 0 {
		maxTTL = defaultMemoryTTL
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = systemTime{}
	}

	return &memoryCache{
		lru:          expirable.NewLRU[string, memoryEntry](size, nil, maxTTL),
		timeProvider: timeProvider,
	}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	entry, ok := m.lru.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}

	if !entry.expiresAt.IsZero() && !m.timeProvider.Now().Before(entry.expiresAt) {
		m.lru.Remove(key)
		return nil, ErrCacheMiss
	}

	return entry.value, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.timeProvider.Now().Add(ttl)
	}

	m.lru.Add(key, entry)
	return nil
}
