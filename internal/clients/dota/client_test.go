package dota_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	internal "github.com/KirkDiggler/dota-bot-discord/internal"
	"github.com/KirkDiggler/dota-bot-discord/internal/clients/dota"
	mockdota "github.com/KirkDiggler/dota-bot-discord/internal/clients/dota/mock"
	"github.com/KirkDiggler/dota-bot-discord/internal/entities"
)

const heroListJSON = `{"result":{"data":{"heroes":[
	{"id":1,"name":"npc_dota_hero_antimage","name_loc":"Anti-Mage","name_english_loc":"Anti-Mage"},
	{"id":74,"name":"npc_dota_hero_invoker","name_loc":"Invoker","name_english_loc":"Invoker"}
]},"status":1}}`

const heroDataJSON = `{"result":{"data":{"heroes":[{
	"id":1,
	"name":"npc_dota_hero_antimage",
	"name_loc":"Anti-Mage",
	"npe_desc_loc":"Agile mana-burning melee carry",
	"primary_attr":1,
	"complexity":1,
	"attack_capability":1,
	"facets":[{"name":"magebanes_mirror","title_loc":"Magebane's Mirror","description_loc":"Reflects <b>spells</b>."}],
	"abilities":[
		{"id":5006,"name":"antimage_mana_void","name_loc":"Mana Void","type":1,"behavior":"48"},
		{"id":5003,"name":"antimage_mana_break","name_loc":"Mana Break","desc_loc":"Burns %mana_per_hit% mana.","behavior":2,
			"special_values":[{"name":"mana_per_hit","values_float":[25,30,35,40]}]},
		{"id":7314,"name":"antimage_persectur","name_loc":"Persecutor","ability_is_innate":true,"behavior":2},
		{"id":9999,"name":"antimage_hidden","name_loc":"Hidden","behavior":1}
	],
	"talents":[
		{"name_loc":"+5 Agility"},{"name_loc":"+200 Health"},
		{"name_loc":"+15 Damage"},{"name_loc":"-1s Blink Cooldown"},
		{"name_loc":"+20 Attack Speed"},{"name_loc":"+1 Mana Break"},
		{"name_loc":"+25% Spell Resist"},{"name_loc":"+0.8 Mana Void Multiplier"}
	]
}]},"status":1}}`

const itemDataJSON = `{"result":{"data":{"items":[{
	"id":1,
	"name":"item_blink",
	"name_loc":"Blink Dagger",
	"desc_loc":"Teleport up to %blink_range% units.",
	"behavior":"4112",
	"item_cost":2250,
	"item_neutral_tier":-1,
	"cooldowns":[15],
	"special_values":[
		{"name":"blink_range","values_float":[1200],"heading_loc":"MAX BLINK RANGE:"},
		{"name":"bonus_strength","values_float":[10]},
		{"name":"unlabelled","values_float":[3]}
	]
}]},"status":1}}`

func newTestClient(t *testing.T, handler http.HandlerFunc) dota.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := dota.New(&dota.Config{
		HttpClient: server.Client(),
		BaseURL:    server.URL,
	})
	require.NoError(t, err)

	return client
}

func TestNew_NilConfig(t *testing.T) {
	client, err := dota.New(nil)
	assert.Nil(t, client)
	assert.ErrorIs(t, err, internal.ErrMissingParam)
}

func TestClient_ListHeroes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/herolist", r.URL.Path)
		assert.Equal(t, "english", r.URL.Query().Get("language"))
		_, _ = w.Write([]byte(heroListJSON))
	})

	heroes, err := client.ListHeroes(context.Background())
	require.NoError(t, err)
	require.Len(t, heroes, 2)
	assert.Equal(t, &entities.EntityRef{ID: 74, Name: "Invoker", NameID: "npc_dota_hero_invoker"}, heroes[1])
}

func TestClient_GetHero(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/herodata", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("hero_id"))
		_, _ = w.Write([]byte(heroDataJSON))
	})

	hero, err := client.GetHero(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Anti-Mage", hero.Name)
	assert.Equal(t, "antimage", hero.ShortNameID())
	assert.Equal(t, entities.AttributeAgility, hero.Attribute)
	assert.Equal(t, entities.ComplexityLow, hero.Complexity)
	assert.Equal(t, entities.AttackTypeMelee, hero.AttackType)

	require.Len(t, hero.Facets, 1)
	assert.Equal(t, "Reflects spells.", hero.Facets[0].ShortDesc)

	// Innate first, ultimate last, hidden dropped.
	require.Len(t, hero.Abilities, 3)
	assert.Equal(t, "Persecutor", hero.Abilities[0].Name)
	assert.Equal(t, "Mana Break", hero.Abilities[1].Name)
	assert.Equal(t, "Burns 25/30/35/40 mana.", hero.Abilities[1].ShortDesc)
	assert.Equal(t, "Mana Void", hero.Abilities[2].Name)
	assert.True(t, hero.Abilities[2].IsUltimate)
	assert.Equal(t, "AOE", hero.Abilities[2].Behavior.TargetType())

	require.Len(t, hero.Talents, 4)
	assert.Equal(t, "+25% Spell Resist", hero.Talents[0].Left.Name)
	assert.Equal(t, "+0.8 Mana Void Multiplier", hero.Talents[0].Right.Name)
	assert.Equal(t, "+5 Agility", hero.Talents[3].Left.Name)
	assert.Equal(t, "+200 Health", hero.Talents[3].Right.Name)
}

func TestClient_GetHero_Empty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":{"data":{"heroes":[]},"status":1}}`))
	})

	hero, err := client.GetHero(context.Background(), 999)
	assert.Nil(t, hero)
	assert.ErrorIs(t, err, internal.ErrNotFound)
}

func TestClient_GetHero_InvalidID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.GetHero(context.Background(), 0)
	assert.ErrorIs(t, err, internal.ErrInvalidParam)
}

func TestClient_GetItem(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/itemdata", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("item_id"))
		_, _ = w.Write([]byte(itemDataJSON))
	})

	item, err := client.GetItem(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Blink Dagger", item.Name)
	assert.Equal(t, "blink", item.ShortNameID())
	assert.Equal(t, 2250, item.Cost)
	assert.False(t, item.IsNeutral())
	assert.Equal(t, "Teleport up to 1200 units.", item.ShortDesc)
	assert.True(t, item.HasAbility())
	assert.Equal(t, "Point Target, Autocast", item.Behavior.TargetType())

	require.Len(t, item.AbilityValues, 1)
	assert.Equal(t, "MAX BLINK RANGE:", item.AbilityValues[0].Heading)

	require.Len(t, item.BonusValues, 1)
	assert.Equal(t, "Strength", item.BonusValues[0].Heading)
	assert.Equal(t, "10", item.BonusValues[0].FirstValue())
}

func TestClient_ServiceURLOverride(t *testing.T) {
	var hit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = r.URL.Path
		_, _ = w.Write([]byte(`{"result":{"data":{"itemabilities":[{"id":5003,"name":"antimage_mana_break","name_english_loc":"Mana Break"}]},"status":1}}`))
	}))
	defer server.Close()

	client, err := dota.New(&dota.Config{
		HttpClient:  server.Client(),
		BaseURL:     "http://unused.invalid",
		ServiceURLs: map[string]string{dota.ServiceAbilityList: server.URL + "/custom/abilities"},
	})
	require.NoError(t, err)

	abilities, err := client.ListAbilities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/custom/abilities", hit)
	require.Len(t, abilities, 1)
	assert.Equal(t, "Mana Break", abilities[0].Name)
}

func TestClient_ErrorResponses(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		_, err := client.ListItems(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("result status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"result":{"data":{},"status":2}}`))
		})

		_, err := client.ListItems(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "result status 2")
	})

	t.Run("bad json", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"result":`))
		})

		_, err := client.ListItems(context.Background())
		require.Error(t, err)
	})
}

func TestClient_ImplementsInterface(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockdota.NewMockClient(ctrl)
	var _ dota.Client = mock

	expected := &entities.Ability{ID: 5003, Name: "Mana Break"}
	mock.EXPECT().GetAbility(gomock.Any(), 5003).Return(expected, nil)

	ability, err := mock.GetAbility(context.Background(), 5003)
	require.NoError(t, err)
	assert.Equal(t, expected, ability)
}
