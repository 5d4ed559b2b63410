package dota_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	internal "github.com/KirkDiggler/dota-bot-discord/internal"
	mockclient "github.com/KirkDiggler/dota-bot-discord/internal/clients/dota/mock"
	"github.com/KirkDiggler/dota-bot-discord/internal/entities"
	"github.com/KirkDiggler/dota-bot-discord/internal/repositories/datacache"
	mockcache "github.com/KirkDiggler/dota-bot-discord/internal/repositories/datacache/mocks"
	"github.com/KirkDiggler/dota-bot-discord/internal/services/dota"
	"github.com/KirkDiggler/dota-bot-discord/internal/testutils"
)

var heroRefs = []*entities.EntityRef{
	{ID: 1, Name: "Anti-Mage", NameID: "npc_dota_hero_antimage"},
	{ID: 74, Name: "Invoker", NameID: "npc_dota_hero_invoker"},
	{ID: 129, Name: "Mars", NameID: "npc_dota_hero_mars"},
}

func TestService_HeroIDByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockclient.NewMockClient(ctrl)
	svc := dota.NewService(&dota.ServiceConfig{Client: client})
	ctx := context.Background()

	// The list is fetched once and served from cache afterwards.
	client.EXPECT().ListHeroes(gomock.Any()).Return(heroRefs, nil).Times(1)

	tests := []struct {
		input    string
		expected int
	}{
		{"Anti-Mage", 1},
		{"anti mage", 1},
		{"ANTIMAGE", 1},
		{"invoker", 74},
		{"npc_dota_hero_mars", 129},
	}
	for _, tt := range tests {
		id, err := svc.HeroIDByName(ctx, tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, id, tt.input)
	}

	_, err := svc.HeroIDByName(ctx, "Not A Hero")
	assert.ErrorIs(t, err, internal.ErrNotFound)

	// Names with nothing to match on are unknown, not malformed.
	for _, input := range []string{"  ", "???", "--", "!"} {
		_, err = svc.HeroIDByName(ctx, input)
		assert.ErrorIs(t, err, internal.ErrNotFound, input)
	}
}

func TestService_ItemAndAbilityIDByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockclient.NewMockClient(ctrl)
	svc := dota.NewService(&dota.ServiceConfig{Client: client})
	ctx := context.Background()

	client.EXPECT().ListItems(gomock.Any()).Return([]*entities.EntityRef{
		{ID: 1, Name: "Blink Dagger", NameID: "item_blink"},
	}, nil)
	client.EXPECT().ListAbilities(gomock.Any()).Return([]*entities.EntityRef{
		{ID: 5003, Name: "Mana Break", NameID: "antimage_mana_break"},
	}, nil)

	id, err := svc.ItemIDByName(ctx, "blink")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	id, err = svc.AbilityIDByName(ctx, "mana break")
	require.NoError(t, err)
	assert.Equal(t, 5003, id)

	_, err = svc.AbilityIDByName(ctx, "blink")
	assert.ErrorIs(t, err, internal.ErrNotFound)
}

func TestService_Hero_Cached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockclient.NewMockClient(ctrl)
	svc := dota.NewService(&dota.ServiceConfig{Client: client, CacheTime: time.Hour})
	ctx := context.Background()

	hero := testutils.CreateTestHero(1, "Anti Mage")
	client.EXPECT().GetHero(gomock.Any(), 1).Return(hero, nil).Times(1)

	first, err := svc.Hero(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, hero, first)

	second, err := svc.Hero(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, hero.Name, second.Name)
	assert.Equal(t, hero.Talents, second.Talents)
	assert.Equal(t, hero.Abilities[2].ScepterDesc, second.Abilities[2].ScepterDesc)
}

func TestService_ClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockclient.NewMockClient(ctrl)
	svc := dota.NewService(&dota.ServiceConfig{Client: client})
	ctx := context.Background()

	client.EXPECT().GetItem(gomock.Any(), 7).Return(nil, errors.New("datafeed down"))
	_, err := svc.Item(ctx, 7)
	assert.EqualError(t, err, "datafeed down")

	// Failures are not cached.
	item := testutils.CreateTestItem(7, "Blade Mail", 2100)
	client.EXPECT().GetItem(gomock.Any(), 7).Return(item, nil)
	got, err := svc.Item(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestService_UsesConfiguredCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockclient.NewMockClient(ctrl)
	cache := mockcache.NewMockCache(ctrl)
	svc := dota.NewService(&dota.ServiceConfig{Client: client, Cache: cache, CacheTime: 10 * time.Minute})
	ctx := context.Background()

	ability := testutils.CreateTestAbility(5003, "Mana Break")
	encoded, err := json.Marshal(ability)
	require.NoError(t, err)

	// Hit
	cache.EXPECT().Get(gomock.Any(), "ability:5003").Return(encoded, nil)
	got, err := svc.Ability(ctx, 5003)
	require.NoError(t, err)
	assert.Equal(t, ability, got)

	// Miss populates the cache with the configured ttl
	cache.EXPECT().Get(gomock.Any(), "ability:5004").Return(nil, datacache.ErrCacheMiss)
	client.EXPECT().GetAbility(gomock.Any(), 5004).Return(ability, nil)
	cache.EXPECT().Set(gomock.Any(), "ability:5004", encoded, 10*time.Minute).Return(nil)
	_, err = svc.Ability(ctx, 5004)
	require.NoError(t, err)

	// Cache failures do not fail the lookup
	cache.EXPECT().Get(gomock.Any(), "ability:5005").Return(nil, errors.New("redis down"))
	client.EXPECT().GetAbility(gomock.Any(), 5005).Return(ability, nil)
	cache.EXPECT().Set(gomock.Any(), "ability:5005", encoded, 10*time.Minute).Return(errors.New("redis down"))
	_, err = svc.Ability(ctx, 5005)
	require.NoError(t, err)
}

func TestService_ConcurrentFetchesShared(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockclient.NewMockClient(ctrl)
	svc := dota.NewService(&dota.ServiceConfig{Client: client})
	ctx := context.Background()

	release := make(chan struct{})
	client.EXPECT().ListHeroes(gomock.Any()).DoAndReturn(func(context.Context) ([]*entities.EntityRef, error) {
		<-release
		return heroRefs, nil
	}).MinTimes(1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := svc.HeroIDByName(ctx, "invoker")
			assert.NoError(t, err)
			assert.Equal(t, 74, id)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
}

func TestService_CancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockclient.NewMockClient(ctrl)
	svc := dota.NewService(&dota.ServiceConfig{Client: client})

	started := make(chan struct{})
	release := make(chan struct{})
	client.EXPECT().ListHeroes(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]*entities.EntityRef, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return heroRefs, nil
	}).Times(1)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.HeroIDByName(firstCtx, "invoker")
		firstErr <- err
	}()
	<-started

	secondID := make(chan int, 1)
	secondErr := make(chan error, 1)
	go func() {
		id, err := svc.HeroIDByName(context.Background(), "invoker")
		secondID <- id
		secondErr <- err
	}()

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	require.NoError(t, <-secondErr)
	assert.Equal(t, 74, <-secondID)
}

func TestNewService_RequiresClient(t *testing.T) {
	assert.Panics(t, func() {
		dota.NewService(&dota.ServiceConfig{})
	})
}
