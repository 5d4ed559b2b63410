package middleware_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dota-bot-discord/internal/config"
	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/middleware"
)

func TestFeatureGate_Enabled(t *testing.T) {
	on, off := true, false

	testCases := []struct {
		name     string
		cfg      config.FeatureConfig
		override *bool
		guildID  string
		expected bool
	}{
		{name: "default off", guildID: "g1", expected: false},
		{name: "default on", cfg: config.FeatureConfig{DefaultEnabled: true}, guildID: "g1", expected: true},
		{name: "enabled guild", cfg: config.FeatureConfig{EnabledGuilds: []string{"g1"}}, guildID: "g1", expected: true},
		{name: "other guild", cfg: config.FeatureConfig{EnabledGuilds: []string{"g1"}}, guildID: "g2", expected: false},
		{name: "disabled guild", cfg: config.FeatureConfig{DefaultEnabled: true, DisabledGuilds: []string{"g1"}}, guildID: "g1", expected: false},
		{name: "direct message uses default", cfg: config.FeatureConfig{DefaultEnabled: true}, guildID: "", expected: true},
		{name: "override on", cfg: config.FeatureConfig{DisabledGuilds: []string{"g1"}}, override: &on, guildID: "g1", expected: true},
		{name: "override off", cfg: config.FeatureConfig{DefaultEnabled: true}, override: &off, guildID: "g1", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gate := middleware.NewFeatureGate("dota_info", tc.cfg, tc.override)
			assert.Equal(t, tc.expected, gate.Enabled(tc.guildID))
		})
	}
}

func TestFeatureGate_Update(t *testing.T) {
	gate := middleware.NewFeatureGate("dota_info", config.FeatureConfig{}, nil)
	assert.False(t, gate.Enabled("g1"))

	gate.Update(config.FeatureConfig{EnabledGuilds: []string{"g1"}})
	assert.True(t, gate.Enabled("g1"))
	assert.Equal(t, "dota_info", gate.Name())
}

func TestFeatureGateMiddleware(t *testing.T) {
	gate := middleware.NewFeatureGate("dota_info", config.FeatureConfig{EnabledGuilds: []string{"on-guild"}}, nil)
	handler := middleware.FeatureGateMiddleware(gate)(okHandler())

	enabled := core.NewTestInteractionContext().WithGuildID("on-guild").AsCommand("dotahero").InteractionContext
	result, err := handler.Handle(enabled)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Response.Content)

	disabled := core.NewTestInteractionContext().WithGuildID("off-guild").AsCommand("dotahero").InteractionContext
	result, err = handler.Handle(disabled)
	assert.Nil(t, result)
	var handlerErr *core.HandlerError
	require.ErrorAs(t, err, &handlerErr)
	assert.Equal(t, core.ErrorCodeForbidden, handlerErr.Code)
	assert.Equal(t, "This command is not enabled on this server.", handlerErr.UserMessage)

	// The error middleware turns the rejection into an ephemeral notice.
	result, err = middleware.ErrorMiddleware(nil)(handler).Handle(disabled)
	require.NoError(t, err)
	assert.True(t, result.Response.Ephemeral)
	assert.Equal(t, "This command is not enabled on this server.", result.Response.Content)
}
