//go:build integration
// +build integration

package dota_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dota-bot-discord/internal/clients/dota"
)

func TestClient_Heroes_Integration(t *testing.T) {
	// This test requires network access to the Dota 2 datafeed
	client, err := dota.New(&dota.Config{
		HttpClient: &http.Client{Timeout: 30 * time.Second},
	})
	require.NoError(t, err)

	ctx := context.Background()

	heroes, err := client.ListHeroes(ctx)
	require.NoError(t, err)
	assert.Greater(t, len(heroes), 100, "datafeed should list every hero")

	var antiMageID int
	for _, h := range heroes {
		if h.NameID == "npc_dota_hero_antimage" {
			antiMageID = h.ID
		}
	}
	require.NotZero(t, antiMageID, "Anti-Mage should be listed")

	hero, err := client.GetHero(ctx, antiMageID)
	require.NoError(t, err)
	assert.Equal(t, "Anti-Mage", hero.Name)
	assert.NotEmpty(t, hero.Abilities)
	assert.Len(t, hero.Talents, 4)
}

func TestClient_Items_Integration(t *testing.T) {
	// This test requires network access to the Dota 2 datafeed
	client, err := dota.New(&dota.Config{
		HttpClient: &http.Client{Timeout: 30 * time.Second},
	})
	require.NoError(t, err)

	items, err := client.ListItems(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, items)

	for _, item := range items {
		if item.NameID != "item_blink" {
			continue
		}

		blink, err := client.GetItem(context.Background(), item.ID)
		require.NoError(t, err)
		assert.Equal(t, "Blink Dagger", blink.Name)
		assert.False(t, blink.IsNeutral())
		return
	}

	t.Fatal("Blink Dagger should be listed")
}
