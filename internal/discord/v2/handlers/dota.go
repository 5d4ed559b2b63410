package handlers

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dota-bot-discord/internal/config"
	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/dota-bot-discord/internal/services/dota"
)

const (
	// UnrecognizedMessage is the reply for any name that doesn't resolve
	UnrecognizedMessage = "Unrecognized."

	// NameOption is the free text option every dota command takes
	NameOption = "name"
)

// Translator expands player jargon into canonical names
type Translator = dota.Translator

// DotaHandler answers the dotahero, dotaitem and dotaability commands
type DotaHandler struct {
	lookup *dota.Lookup

	mu     sync.RWMutex
	images config.ImageURLs
}

// DotaHandlerConfig holds the configuration
type DotaHandlerConfig struct {
	Service    dota.Service
	Translator Translator
	Images     config.ImageURLs
}

// NewDotaHandler creates a new dota handler
func NewDotaHandler(cfg *DotaHandlerConfig) (*DotaHandler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Service == nil {
		return nil, fmt.Errorf("service is required")
	}
	if cfg.Translator == nil {
		return nil, fmt.Errorf("translator is required")
	}

	return &DotaHandler{
		lookup: dota.NewLookup(cfg.Service, cfg.Translator),
		images: cfg.Images,
	}, nil
}

// SetImages swaps the image URLs after a config reload
func (h *DotaHandler) SetImages(images config.ImageURLs) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.images = images
}

func (h *DotaHandler) imageURLs() config.ImageURLs {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.images
}

// HandleHero shows a hero embed, or the talent tree when the name is
// prefixed with "talents".
func (h *DotaHandler) HandleHero(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	name, showTalents := h.lookup.HeroName(ctx.GetArgs(NameOption))
	if name == "" {
		return unrecognized(false), nil
	}

	deferred := startTyping(ctx)

	hero, err := h.lookup.Hero(ctx.Context, name)
	if err != nil {
		return resolveError(err, deferred)
	}

	if showTalents {
		return &core.HandlerResult{
			Response: core.NewResponse(RenderTalents(hero)),
			Deferred: deferred,
		}, nil
	}

	return &core.HandlerResult{
		Response: core.NewEmbedResponse(RenderHero(hero, h.imageURLs())),
		Deferred: deferred,
	}, nil
}

// HandleItem shows an item embed
func (h *DotaHandler) HandleItem(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	name := h.lookup.ItemName(ctx.GetArgs(NameOption))
	if name == "" {
		return unrecognized(false), nil
	}

	deferred := startTyping(ctx)

	item, err := h.lookup.Item(ctx.Context, name)
	if err != nil {
		return resolveError(err, deferred)
	}

	return &core.HandlerResult{
		Response: core.NewEmbedResponse(RenderItem(item, h.imageURLs())),
		Deferred: deferred,
	}, nil
}

// HandleAbility shows an ability embed
func (h *DotaHandler) HandleAbility(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	name := h.lookup.AbilityName(ctx.GetArgs(NameOption))
	if name == "" {
		return unrecognized(false), nil
	}

	deferred := startTyping(ctx)

	ability, err := h.lookup.Ability(ctx.Context, name)
	if err != nil {
		return resolveError(err, deferred)
	}

	return &core.HandlerResult{
		Response: core.NewEmbedResponse(RenderAbility(ability, h.imageURLs())),
		Deferred: deferred,
	}, nil
}

// startTyping defers the interaction so Discord shows the bot as thinking
// while the datafeed is queried.
func startTyping(ctx *core.InteractionContext) bool {
	responder := ctx.Responder()
	if responder == nil {
		return false
	}

	if err := responder.Defer(false); err != nil {
		log.WithError(err).WithField("command", ctx.GetCommandName()).Warn("Failed to defer interaction")
		return false
	}

	return true
}

func resolveError(err error, deferred bool) (*core.HandlerResult, error) {
	if dota.IsUnrecognized(err) {
		return unrecognized(deferred), nil
	}

	return nil, core.NewInternalError(err)
}

func unrecognized(deferred bool) *core.HandlerResult {
	return &core.HandlerResult{
		Response: core.NewResponse(UnrecognizedMessage),
		Deferred: deferred,
	}
}
