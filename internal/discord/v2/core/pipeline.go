package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Pipeline manages handler registration and execution
type Pipeline struct {
	// Handlers registered in the pipeline
	handlers []Handler

	// Middleware to apply to all handlers
	middleware []Middleware

	// Mutex for thread-safe handler registration
	mu sync.RWMutex
}

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// NewPipeline creates a new handler pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		handlers:   make([]Handler, 0),
		middleware: make([]Middleware, 0),
	}
}

// Register adds handlers to the pipeline, wrapped in the middleware added so
// far. Add middleware before registering handlers.
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		wrapped := h
		for i := len(p.middleware) - 1; i >= 0; i-- {
			wrapped = p.middleware[i](wrapped)
		}
		p.handlers = append(p.handlers, &registeredHandler{match: h, run: wrapped})
	}
}

// registeredHandler matches on the bare handler, since middleware wrappers
// are HandlerFuncs that accept everything.
type registeredHandler struct {
	match Handler
	run   Handler
}

func (h *registeredHandler) CanHandle(ctx *InteractionContext) bool {
	return h.match.CanHandle(ctx)
}

func (h *registeredHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return h.run.Handle(ctx)
}

// Use adds middleware to the pipeline
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

// Execute runs the pipeline for an interaction
func (p *Pipeline) Execute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return p.ExecuteWith(NewInteractionContext(ctx, s, i), NewDiscordResponder(s, i))
}

// ExecuteWith runs the first handler that can handle the interaction and
// sends its result through responder.
func (p *Pipeline) ExecuteWith(ctx *InteractionContext, responder InteractionResponder) error {
	ctx.SetResponder(responder)

	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	p.mu.RUnlock()

	log.WithFields(log.Fields{
		"command":  ctx.GetCommandName(),
		"handlers": len(handlers),
	}).Debug("Executing pipeline")

	for _, handler := range handlers {
		if !handler.CanHandle(ctx) {
			continue
		}

		result, err := handler.Handle(ctx)
		if err != nil {
			result = defaultErrorHandler(ctx, err)
		}

		if result != nil && result.Response != nil {
			if err := sendResponse(responder, result); err != nil {
				return fmt.Errorf("failed to send response: %w", err)
			}
		}

		return nil
	}

	if responder.HasResponded() {
		return nil
	}

	return sendResponse(responder, &HandlerResult{
		Response: NewEphemeralResponse("I don't know how to handle that command."),
	})
}

// sendResponse sends a response using the responder
func sendResponse(responder InteractionResponder, result *HandlerResult) error {
	if result.Deferred || responder.IsDeferred() {
		return responder.Edit(result.Response)
	}

	return responder.Respond(result.Response)
}

// HandlerCount returns the number of registered handlers
func (p *Pipeline) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

// defaultErrorHandler answers errors that no middleware turned into a reply
func defaultErrorHandler(ctx *InteractionContext, err error) *HandlerResult {
	if handlerErr, ok := err.(*HandlerError); ok && handlerErr.ShowToUser {
		return &HandlerResult{
			Response: NewEphemeralResponse(handlerErr.UserMessage),
		}
	}

	return &HandlerResult{
		Response: NewEphemeralResponse("An error occurred while processing your request."),
	}
}
