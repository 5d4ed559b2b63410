package services

import (
	"time"

	"github.com/KirkDiggler/dota-bot-discord/internal/clients/dota"
	"github.com/KirkDiggler/dota-bot-discord/internal/jargon"
	"github.com/KirkDiggler/dota-bot-discord/internal/repositories/datacache"
	dotaService "github.com/KirkDiggler/dota-bot-discord/internal/services/dota"
)

// Provider holds all service instances
type Provider struct {
	DotaService dotaService.Service
	Jargon      *jargon.Parser
	// DotaLookup combines the two for command input
	DotaLookup *dotaService.Lookup
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	DotaClient dota.Client
	// Cache defaults to an in-memory cache
	Cache         datacache.Cache
	CacheTime     time.Duration
	Abbreviations *jargon.Tables
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	cache := cfg.Cache
	if cache == nil {
		cache = datacache.NewMemory(nil)
	}

	service := dotaService.NewService(&dotaService.ServiceConfig{
		Client:    cfg.DotaClient,
		Cache:     cache,
		CacheTime: cfg.CacheTime,
	})
	parser := jargon.NewParser(cfg.Abbreviations)

	return &Provider{
		DotaService: service,
		Jargon:      parser,
		DotaLookup:  dotaService.NewLookup(service, parser),
	}
}
