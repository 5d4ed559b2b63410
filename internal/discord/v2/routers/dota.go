package routers

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dota-bot-discord/internal/config"
	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/handlers"
	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/dota-bot-discord/internal/services"
)

const (
	FeatureDotaInfo = "dota_info"

	CommandHero    = "dotahero"
	CommandItem    = "dotaitem"
	CommandAbility = "dotaability"

	rateLimitRequests = 10
	rateLimitWindow   = time.Minute
)

// DotaRouter handles the dota info commands
type DotaRouter struct {
	router  *core.Router
	handler *handlers.DotaHandler
	gate    *middleware.FeatureGate
}

type DotaRouterConfig struct {
	Pipeline *core.Pipeline
	Provider *services.Provider
	Dota     *config.DotaConfig
	// EnabledOverride forces the feature on or off for every guild
	EnabledOverride *bool
	// RateLimitStore defaults to an in-memory store
	RateLimitStore middleware.RateLimitStore
	Metrics        middleware.MetricsCollector
}

func (c *DotaRouterConfig) Validate() error {
	if c.Pipeline == nil {
		return errors.New("pipeline is required")
	}
	if c.Provider == nil {
		return errors.New("provider is required")
	}
	if c.Provider.DotaService == nil {
		return errors.New("provider.DotaService is required")
	}
	if c.Provider.Jargon == nil {
		return errors.New("provider.Jargon is required")
	}
	if c.Dota == nil {
		return errors.New("dota config is required")
	}

	return nil
}

// NewDotaRouter wires the dota commands into the pipeline
func NewDotaRouter(cfg *DotaRouterConfig) (*DotaRouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	handler, err := handlers.NewDotaHandler(&handlers.DotaHandlerConfig{
		Service:    cfg.Provider.DotaService,
		Translator: cfg.Provider.Jargon,
		Images:     cfg.Dota.ImageURLs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dota handler: %w", err)
	}

	gate := middleware.NewFeatureGate(FeatureDotaInfo, cfg.Dota.Feature, cfg.EnabledOverride)

	router := core.NewRouter(FeatureDotaInfo, cfg.Pipeline)
	router.Use(
		middleware.FeatureGateMiddleware(gate),
		middleware.UserRateLimitMiddleware(rateLimitRequests, rateLimitWindow, cfg.RateLimitStore, cfg.Metrics),
	)

	dr := &DotaRouter{
		router:  router,
		handler: handler,
		gate:    gate,
	}

	router.CommandFunc(CommandHero, handler.HandleHero)
	router.CommandFunc(CommandItem, handler.HandleItem)
	router.CommandFunc(CommandAbility, handler.HandleAbility)
	router.Register()

	return dr, nil
}

// Reload applies a reloaded dota config. Abbreviations are reloaded by the
// jargon parser's owner.
func (r *DotaRouter) Reload(cfg *config.DotaConfig) {
	r.gate.Update(cfg.Feature)
	r.handler.SetImages(cfg.ImageURLs)
}

// Patterns lists the routes this router handles
func (r *DotaRouter) Patterns() []string {
	return r.router.Patterns()
}

// Commands returns the slash command definitions for the dota commands
func Commands() []*discordgo.ApplicationCommand {
	nameOption := func(description string) []*discordgo.ApplicationCommandOption {
		return []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        handlers.NameOption,
				Description: description,
				Required:    true,
			},
		}
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandHero,
			Description: "Shows details of the given DotA Hero",
			Options:     nameOption("Hero name, prefix with \"talents\" for the talent tree"),
		},
		{
			Name:        CommandItem,
			Description: "Shows details of the given DotA Item",
			Options:     nameOption("Item name"),
		},
		{
			Name:        CommandAbility,
			Description: "Shows details of the given DotA Ability",
			Options:     nameOption("Ability name"),
		},
	}
}

// CommandRegistrar is the part of *discordgo.Session used to publish commands
type CommandRegistrar interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// RegisterCommands publishes the dota commands. An empty guildID registers
// them globally.
func RegisterCommands(registrar CommandRegistrar, appID, guildID string) ([]*discordgo.ApplicationCommand, error) {
	created, err := registrar.ApplicationCommandBulkOverwrite(appID, guildID, Commands())
	if err != nil {
		return nil, fmt.Errorf("failed to register dota commands: %w", err)
	}
	return created, nil
}
