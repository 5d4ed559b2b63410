package routers_test

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	internal "github.com/KirkDiggler/dota-bot-discord/internal"
	"github.com/KirkDiggler/dota-bot-discord/internal/config"
	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/routers"
	"github.com/KirkDiggler/dota-bot-discord/internal/jargon"
	"github.com/KirkDiggler/dota-bot-discord/internal/services"
	mockdota "github.com/KirkDiggler/dota-bot-discord/internal/services/dota/mock"
	"github.com/KirkDiggler/dota-bot-discord/internal/testutils"
)

type fakeRegistrar struct {
	appID    string
	guildID  string
	commands []*discordgo.ApplicationCommand
	err      error
}

func (f *fakeRegistrar) ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.appID, f.guildID, f.commands = appID, guildID, commands
	return commands, f.err
}

func setupRouter(t *testing.T, feature config.FeatureConfig) (*core.Pipeline, *routers.DotaRouter, *mockdota.MockService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mockdota.NewMockService(ctrl)
	pipeline := core.NewPipeline()

	router, err := routers.NewDotaRouter(&routers.DotaRouterConfig{
		Pipeline: pipeline,
		Provider: &services.Provider{
			DotaService: service,
			Jargon:      jargon.NewParser(&jargon.Tables{Items: map[string][]string{"Black King Bar": {"bkb"}}}),
		},
		Dota: &config.DotaConfig{Feature: feature},
	})
	require.NoError(t, err)

	return pipeline, router, service
}

func TestNewDotaRouter_Validation(t *testing.T) {
	_, err := routers.NewDotaRouter(&routers.DotaRouterConfig{})
	assert.Error(t, err)

	_, err = routers.NewDotaRouter(&routers.DotaRouterConfig{
		Pipeline: core.NewPipeline(),
		Provider: &services.Provider{},
		Dota:     &config.DotaConfig{},
	})
	assert.Error(t, err)
}

func TestDotaRouter_Patterns(t *testing.T) {
	pipeline, router, _ := setupRouter(t, config.FeatureConfig{DefaultEnabled: true})

	assert.Equal(t, []string{"cmd:dotaability", "cmd:dotahero", "cmd:dotaitem"}, router.Patterns())
	assert.Equal(t, 1, pipeline.HandlerCount())
}

func TestDotaRouter_ItemEndToEnd(t *testing.T) {
	pipeline, _, service := setupRouter(t, config.FeatureConfig{EnabledGuilds: []string{"guild-1"}})

	item := testutils.CreateTestItem(116, "Black King Bar", 4050)
	service.EXPECT().ItemIDByName(gomock.Any(), "Black King Bar").Return(116, nil)
	service.EXPECT().Item(gomock.Any(), 116).Return(item, nil)

	responder := core.NewMockResponder()
	ctx := core.NewTestInteractionContext().
		WithGuildID("guild-1").
		AsCommand(routers.CommandItem).
		WithParam("name", "bkb")

	require.NoError(t, pipeline.ExecuteWith(ctx.InteractionContext, responder))

	assert.Equal(t, []bool{false}, responder.DeferCalls)
	require.Len(t, responder.Edits, 1)
	require.Len(t, responder.Edits[0].Embeds, 1)
	assert.Equal(t, "4050 Gold Cost Item", responder.Edits[0].Embeds[0].Title)
}

func TestDotaRouter_UnrecognizedEndToEnd(t *testing.T) {
	pipeline, _, service := setupRouter(t, config.FeatureConfig{DefaultEnabled: true})
	service.EXPECT().AbilityIDByName(gomock.Any(), "nonsense").Return(0, internal.ErrNotFound)

	responder := core.NewMockResponder()
	ctx := core.NewTestInteractionContext().AsCommand(routers.CommandAbility).WithParam("name", "nonsense")

	require.NoError(t, pipeline.ExecuteWith(ctx.InteractionContext, responder))

	assert.Equal(t, "Unrecognized.", responder.LastResponse().Content)
}

func TestDotaRouter_FeatureDisabled(t *testing.T) {
	pipeline, router, _ := setupRouter(t, config.FeatureConfig{})

	responder := core.NewMockResponder()
	ctx := core.NewTestInteractionContext().WithGuildID("guild-2").AsCommand(routers.CommandHero).WithParam("name", "am")

	require.NoError(t, pipeline.ExecuteWith(ctx.InteractionContext, responder))
	require.Len(t, responder.Responses, 1)
	assert.True(t, responder.Responses[0].Ephemeral)
	assert.Empty(t, responder.DeferCalls)

	router.Reload(&config.DotaConfig{Feature: config.FeatureConfig{EnabledGuilds: []string{"guild-2"}}})

	responder = core.NewMockResponder()
	ctx = core.NewTestInteractionContext().WithGuildID("guild-2").AsCommand(routers.CommandHero).WithParam("name", "")

	require.NoError(t, pipeline.ExecuteWith(ctx.InteractionContext, responder))
	assert.Equal(t, "Unrecognized.", responder.LastResponse().Content)
}

func TestCommands(t *testing.T) {
	commands := routers.Commands()

	require.Len(t, commands, 3)
	for _, cmd := range commands {
		require.Len(t, cmd.Options, 1)
		assert.Equal(t, "name", cmd.Options[0].Name)
		assert.True(t, cmd.Options[0].Required)
		assert.Equal(t, discordgo.ApplicationCommandOptionString, cmd.Options[0].Type)
	}
	assert.Equal(t, "Shows details of the given DotA Hero", commands[0].Description)
}

func TestRegisterCommands(t *testing.T) {
	registrar := &fakeRegistrar{}

	created, err := routers.RegisterCommands(registrar, "app-1", "guild-1")
	require.NoError(t, err)
	assert.Len(t, created, 3)
	assert.Equal(t, "app-1", registrar.appID)
	assert.Equal(t, "guild-1", registrar.guildID)

	registrar.err = errors.New("unauthorized")
	_, err = routers.RegisterCommands(registrar, "app-1", "")
	assert.ErrorContains(t, err, "unauthorized")
}
