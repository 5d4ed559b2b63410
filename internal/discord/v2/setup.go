package v2

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dota-bot-discord/internal/config"
	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/routers"
	"github.com/KirkDiggler/dota-bot-discord/internal/services"
	"github.com/KirkDiggler/dota-bot-discord/internal/uuid"
)

// interactionTimeout bounds a single command, datafeed calls included
const interactionTimeout = 30 * time.Second

type SetupConfig struct {
	Provider *services.Provider
	Dota     *config.DotaConfig
	// EnabledOverride forces the dota commands on or off everywhere
	EnabledOverride *bool
	// RateLimitStore defaults to an in-memory store
	RateLimitStore middleware.RateLimitStore
	// Metrics is optional
	Metrics middleware.MetricsCollector
	// UUID defaults to random UUIDs
	UUID uuid.Generator
}

// SetupHandlers builds the pipeline with global middleware and the dota router
func SetupHandlers(cfg *SetupConfig) (*core.Pipeline, *routers.DotaRouter, error) {
	if cfg == nil {
		return nil, nil, errors.New("setup config is required")
	}

	pipeline := core.NewPipeline()

	globals := []core.Middleware{
		middleware.RecoveryMiddleware(),
		middleware.RequestIDMiddleware(cfg.UUID),
		middleware.ErrorMiddleware(nil),
		middleware.LoggingMiddleware(nil),
	}
	if cfg.Metrics != nil {
		globals = append(globals, middleware.MetricsMiddleware(cfg.Metrics))
	}
	pipeline.Use(globals...)

	dotaRouter, err := routers.NewDotaRouter(&routers.DotaRouterConfig{
		Pipeline:        pipeline,
		Provider:        cfg.Provider,
		Dota:            cfg.Dota,
		EnabledOverride: cfg.EnabledOverride,
		RateLimitStore:  cfg.RateLimitStore,
		Metrics:         cfg.Metrics,
	})
	if err != nil {
		return nil, nil, err
	}

	return pipeline, dotaRouter, nil
}

// AttachPipeline routes every interaction the session receives through the
// pipeline. The returned func detaches it.
func AttachPipeline(dg *discordgo.Session, pipeline *core.Pipeline) func() {
	return dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
		defer cancel()

		if err := pipeline.Execute(ctx, s, i); err != nil {
			log.WithError(err).WithField("interaction_id", i.ID).Error("Pipeline failed")
		}
	})
}
