package middleware

import (
	"errors"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/dota-bot-discord/internal/uuid"
)

// LogConfig configures logging behavior
type LogConfig struct {
	// LogRequests logs incoming interactions
	LogRequests bool

	// LogDuration logs handler execution time
	LogDuration bool

	// LogErrors logs errors (if not using ErrorMiddleware)
	LogErrors bool

	// RequestFilter filters which requests to log
	RequestFilter func(*core.InteractionContext) bool
}

// DefaultLogConfig returns sensible defaults
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		LogRequests: true,
		LogDuration: true,
		LogErrors:   true,
	}
}

// LoggingMiddleware provides request/response logging
func LoggingMiddleware(config *LogConfig) core.Middleware {
	if config == nil {
		config = DefaultLogConfig()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if config.RequestFilter != nil && !config.RequestFilter(ctx) {
				return next.Handle(ctx)
			}

			entry := log.WithFields(interactionFields(ctx))
			if config.LogRequests {
				entry.WithField("args", ctx.GetStringParam("name")).Info("Interaction received")
			}

			start := time.Now()
			result, err := next.Handle(ctx)
			duration := time.Since(start)

			if err != nil && config.LogErrors {
				entry.WithError(err).Warn("Interaction failed")
			}

			if config.LogDuration {
				entry.WithField("duration", duration).Debug("Interaction completed")
			}

			return result, err
		})
	}
}

// MetricsCollector collects metrics
type MetricsCollector interface {
	IncrementCounter(name string, labels map[string]string)
	ObserveHistogram(name string, value float64, labels map[string]string)
}

// Metric names reported by MetricsMiddleware and RateLimitMiddleware
const (
	MetricInteractionsTotal   = "discord_interactions_total"
	MetricInteractionDuration = "discord_interaction_duration_seconds"
	MetricInteractionErrors   = "discord_interactions_errors_total"
	MetricRateLimited         = "discord_interactions_rate_limited_total"
)

// MetricsMiddleware tracks handler metrics
func MetricsMiddleware(collector MetricsCollector) core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			labels := extractLabels(ctx)

			collector.IncrementCounter(MetricInteractionsTotal, labels)

			start := time.Now()
			result, err := next.Handle(ctx)
			collector.ObserveHistogram(MetricInteractionDuration, time.Since(start).Seconds(), labels)

			if err != nil {
				errorLabels := make(map[string]string, len(labels)+1)
				for k, v := range labels {
					errorLabels[k] = v
				}

				errorLabels["error_code"] = strconv.Itoa(core.ErrorCodeInternal)
				var handlerErr *core.HandlerError
				if errors.As(err, &handlerErr) {
					errorLabels["error_code"] = strconv.Itoa(handlerErr.Code)
				}

				collector.IncrementCounter(MetricInteractionErrors, errorLabels)
			}

			return result, err
		})
	}
}

// extractLabels keeps label cardinality bounded: guild and user IDs are
// left out.
func extractLabels(ctx *core.InteractionContext) map[string]string {
	labels := map[string]string{
		"interaction_type": "other",
		"command":          "",
	}

	if ctx.IsCommand() {
		labels["interaction_type"] = "command"
		labels["command"] = ctx.GetCommandName()
	}

	return labels
}

// RequestIDMiddleware tags each interaction with a unique request ID
func RequestIDMiddleware(generator uuid.Generator) core.Middleware {
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			requestID := generator.New()
			ctx.SetRequestID(requestID)

			log.WithField("request_id", requestID).Debug("Starting request")

			return next.Handle(ctx)
		})
	}
}
