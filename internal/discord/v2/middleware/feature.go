package middleware

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dota-bot-discord/internal/config"
	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/core"
)

const featureDisabledMessage = "This command is not enabled on this server."

// FeatureGate decides per guild whether a feature is on. Guild lists win
// over the default; a non-nil override wins over everything.
type FeatureGate struct {
	name     string
	override *bool

	mu      sync.RWMutex
	enabled map[string]bool
	def     bool
}

func NewFeatureGate(name string, cfg config.FeatureConfig, override *bool) *FeatureGate {
	gate := &FeatureGate{
		name:     name,
		override: override,
	}
	gate.Update(cfg)
	return gate
}

// Update swaps the guild lists, e.g. after a config reload
func (g *FeatureGate) Update(cfg config.FeatureConfig) {
	enabled := make(map[string]bool, len(cfg.EnabledGuilds)+len(cfg.DisabledGuilds))
	for _, guild := range cfg.EnabledGuilds {
		enabled[guild] = true
	}
	for _, guild := range cfg.DisabledGuilds {
		enabled[guild] = false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.enabled = enabled
	g.def = cfg.DefaultEnabled
}

func (g *FeatureGate) Name() string {
	return g.name
}

func (g *FeatureGate) Enabled(guildID string) bool {
	if g.override != nil {
		return *g.override
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if on, ok := g.enabled[guildID]; ok && guildID != "" {
		return on
	}
	return g.def
}

// FeatureGateMiddleware rejects the interaction with a forbidden error instead
// of running the handler when the feature is off for the guild.
func FeatureGateMiddleware(gate *FeatureGate) core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if !gate.Enabled(ctx.GuildID) {
				log.WithFields(interactionFields(ctx)).WithField("feature", gate.Name()).Debug("Feature disabled")
				return nil, core.NewForbiddenError(featureDisabledMessage)
			}

			return next.Handle(ctx)
		})
	}
}
