package core

import (
	"fmt"
	"sort"
)

// Router groups the slash commands of one feature behind shared middleware
type Router struct {
	// Feature name (e.g., "dota_info"), used in logs
	name string

	// Handlers by pattern, "cmd:<command>"
	handlers map[string]Handler

	// Middleware specific to this router
	middleware []Middleware

	// Parent pipeline to register with
	pipeline *Pipeline
}

// NewRouter creates a new feature router
func NewRouter(name string, pipeline *Pipeline) *Router {
	return &Router{
		name:       name,
		handlers:   make(map[string]Handler),
		middleware: make([]Middleware, 0),
		pipeline:   pipeline,
	}
}

// Use adds middleware to this router. It only wraps handlers added after it.
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

func (r *Router) handle(pattern string, handler Handler) *Router {
	wrapped := handler
	for i := len(r.middleware) - 1; i >= 0; i-- {
		wrapped = r.middleware[i](wrapped)
	}

	r.handlers[pattern] = wrapped
	return r
}

// Command registers a slash command handler
func (r *Router) Command(name string, handler Handler) *Router {
	return r.handle(fmt.Sprintf("cmd:%s", name), handler)
}

// CommandFunc registers a slash command handler function
func (r *Router) CommandFunc(name string, fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.Command(name, HandlerFunc(fn))
}

// Patterns lists the registered patterns in sorted order
func (r *Router) Patterns() []string {
	patterns := make([]string, 0, len(r.handlers))
	for p := range r.handlers {
		patterns = append(patterns, p)
	}
	sort.Strings(patterns)
	return patterns
}

// Build creates a single handler from all registered routes
func (r *Router) Build() Handler {
	return &routerHandler{
		name:     r.name,
		handlers: r.handlers,
	}
}

// Register registers this router with the pipeline
func (r *Router) Register() {
	if r.pipeline != nil {
		r.pipeline.Register(r.Build())
	}
}

// routerHandler implements Handler for a router
type routerHandler struct {
	name     string
	handlers map[string]Handler
}

// CanHandle checks if this router can handle the interaction
func (h *routerHandler) CanHandle(ctx *InteractionContext) bool {
	_, ok := h.lookup(ctx)
	return ok
}

// Handle processes the interaction
func (h *routerHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	handler, ok := h.lookup(ctx)
	if !ok {
		return nil, NewNotFoundError("handler")
	}
	return handler.Handle(ctx)
}

func (h *routerHandler) lookup(ctx *InteractionContext) (Handler, bool) {
	if !ctx.IsCommand() {
		return nil, false
	}

	handler, ok := h.handlers[fmt.Sprintf("cmd:%s", ctx.GetCommandName())]
	return handler, ok
}
