package dota

//go:generate mockgen -destination=mock/mock_service.go -package=mockdota -source=service.go

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	internal "github.com/KirkDiggler/dota-bot-discord/internal"
	"github.com/KirkDiggler/dota-bot-discord/internal/clients/dota"
	"github.com/KirkDiggler/dota-bot-discord/internal/entities"
	"github.com/KirkDiggler/dota-bot-discord/internal/repositories/datacache"
)

// Service resolves display names to datafeed IDs and fetches full records,
// caching every datafeed response.
type Service interface {
	// HeroIDByName returns internal.ErrNotFound when no hero matches
	HeroIDByName(ctx context.Context, name string) (int, error)
	Hero(ctx context.Context, id int) (*entities.Hero, error)

	ItemIDByName(ctx context.Context, name string) (int, error)
	Item(ctx context.Context, id int) (*entities.Item, error)

	AbilityIDByName(ctx context.Context, name string) (int, error)
	Ability(ctx context.Context, id int) (*entities.Ability, error)
}

// fetchTimeout bounds a shared datafeed fetch.
const fetchTimeout = 30 * time.Second

const (
	cacheKeyHeroList    = "herolist"
	cacheKeyItemList    = "itemlist"
	cacheKeyAbilityList = "abilitylist"
	cacheKeyHero        = "hero:"
	cacheKeyItem        = "item:"
	cacheKeyAbility     = "ability:"
)

type service struct {
	client    dota.Client
	cache     datacache.Cache
	cacheTime time.Duration
	group     singleflight.Group
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client dota.Client // Required
	// Cache defaults to an in-memory cache.
	Cache datacache.Cache
	// CacheTime is how long datafeed responses are reused. Zero keeps them
	// until the cache evicts them.
	CacheTime time.Duration
}

// NewService creates a new dota dataset service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Client == nil {
		panic("dota client is required")
	}

	cache := cfg.Cache
	if cache == nil {
		cache = datacache.NewMemory(nil)
	}

	return &service{
		client:    cfg.Client,
		cache:     cache,
		cacheTime: cfg.CacheTime,
	}
}

func (s *service) HeroIDByName(ctx context.Context, name string) (int, error) {
	refs, err := cached(ctx, s, cacheKeyHeroList, s.client.ListHeroes)
	if err != nil {
		return 0, err
	}

	return findID(refs, name, "hero", "npc_dota_hero_")
}

func (s *service) Hero(ctx context.Context, id int) (*entities.Hero, error) {
	return cached(ctx, s, cacheKeyHero+strconv.Itoa(id), func(ctx context.Context) (*entities.Hero, error) {
		return s.client.GetHero(ctx, id)
	})
}

func (s *service) ItemIDByName(ctx context.Context, name string) (int, error) {
	refs, err := cached(ctx, s, cacheKeyItemList, s.client.ListItems)
	if err != nil {
		return 0, err
	}

	return findID(refs, name, "item", "item_")
}

func (s *service) Item(ctx context.Context, id int) (*entities.Item, error) {
	return cached(ctx, s, cacheKeyItem+strconv.Itoa(id), func(ctx context.Context) (*entities.Item, error) {
		return s.client.GetItem(ctx, id)
	})
}

func (s *service) AbilityIDByName(ctx context.Context, name string) (int, error) {
	refs, err := cached(ctx, s, cacheKeyAbilityList, s.client.ListAbilities)
	if err != nil {
		return 0, err
	}

	return findID(refs, name, "ability", "")
}

func (s *service) Ability(ctx context.Context, id int) (*entities.Ability, error) {
	return cached(ctx, s, cacheKeyAbility+strconv.Itoa(id), func(ctx context.Context) (*entities.Ability, error) {
		return s.client.GetAbility(ctx, id)
	})
}

// cached serves key from the cache, falling back to fetch. Concurrent misses
// for the same key share a single fetch. The fetch is detached from the
// caller that started it and bounded by fetchTimeout, so a cancelled caller
// returns early without failing the others. Cache failures are logged and
// never fail the lookup.
func cached[T any](ctx context.Context, s *service, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	data, err := s.cache.Get(ctx, key)
	if err == nil {
		var value T
		if err := json.Unmarshal(data, &value); err == nil {
			return value, nil
		}
		log.WithField("key", key).Warn("Discarding undecodable cache entry")
	} else if !errors.Is(err, datacache.ErrCacheMiss) {
		log.WithError(err).WithField("key", key).Warn("Cache read failed")
	}

	ch := s.group.DoChan(key, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()

		value, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}

		encoded, err := json.Marshal(value)
		if err != nil {
			log.WithError(err).WithField("key", key).Warn("Failed to encode cache entry")
			return value, nil
		}
		if err := s.cache.Set(fetchCtx, key, encoded, s.cacheTime); err != nil {
			log.WithError(err).WithField("key", key).Warn("Cache write failed")
		}

		return value, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		if res.Shared {
			log.WithField("key", key).Debug("Shared in-flight datafeed fetch")
		}
		return res.Val.(T), nil
	}
}

// findID matches name against display names and internal names, ignoring
// case, spacing and punctuation, so "anti mage" finds "Anti-Mage".
func findID(refs []*entities.EntityRef, name, kind, namePrefix string) (int, error) {
	want := normalizeName(name)
	if want == "" {
		return 0, internal.NewNotFoundError(kind, name)
	}

	for _, ref := range refs {
		if normalizeName(ref.Name) == want {
			return ref.ID, nil
		}
	}

	for _, ref := range refs {
		if normalizeName(strings.TrimPrefix(ref.NameID, namePrefix)) == want || normalizeName(ref.NameID) == want {
			return ref.ID, nil
		}
	}

	return 0, internal.NewNotFoundError(kind, name)
}

func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
