package middleware

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/core"
)

// ErrorConfig configures error handling behavior
type ErrorConfig struct {
	// LogErrors controls whether errors are logged
	LogErrors bool

	// DefaultUserMessage is shown when no user-friendly message exists
	DefaultUserMessage string

	// ErrorLogger allows custom logging
	ErrorLogger ErrorLogger
}

// ErrorLogger logs errors
type ErrorLogger func(ctx *core.InteractionContext, err error)

// DefaultErrorConfig returns sensible defaults
func DefaultErrorConfig() *ErrorConfig {
	return &ErrorConfig{
		LogErrors:          true,
		DefaultUserMessage: "An error occurred while processing your request.",
		ErrorLogger:        defaultErrorLogger,
	}
}

// ErrorMiddleware turns handler errors into ephemeral replies
func ErrorMiddleware(config *ErrorConfig) core.Middleware {
	if config == nil {
		config = DefaultErrorConfig()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			result, err := next.Handle(ctx)
			if err == nil {
				return result, nil
			}

			if config.LogErrors && config.ErrorLogger != nil {
				config.ErrorLogger(ctx, err)
			}

			return &core.HandlerResult{
				Response: createErrorResponse(err, config),
				Context: map[string]interface{}{
					"error": err,
				},
			}, nil
		})
	}
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(interactionFields(ctx)).Errorf("Panic recovered in handler: %v", r)

					switch v := r.(type) {
					case error:
						err = v
					case string:
						err = errors.New(v)
					default:
						err = fmt.Errorf("panic: %v", r)
					}

					result = &core.HandlerResult{
						Response: core.NewEphemeralResponse("An unexpected error occurred. Please try again later."),
					}
				}
			}()

			return next.Handle(ctx)
		})
	}
}

func createErrorResponse(err error, config *ErrorConfig) *core.Response {
	message := config.DefaultUserMessage

	var handlerErr *core.HandlerError
	if errors.As(err, &handlerErr) && handlerErr.ShowToUser {
		message = handlerErr.UserMessage
	}

	return core.NewEphemeralResponse(message)
}

func defaultErrorLogger(ctx *core.InteractionContext, err error) {
	fields := interactionFields(ctx)

	var handlerErr *core.HandlerError
	if errors.As(err, &handlerErr) {
		fields["code"] = handlerErr.Code

		// 4xx rejections are not failures
		if handlerErr.Code < core.ErrorCodeInternal {
			log.WithFields(fields).WithError(err).Info("Request rejected")
			return
		}
	}

	log.WithFields(fields).WithError(err).Error("Handler error")
}

// interactionFields builds the log fields shared by the middleware
func interactionFields(ctx *core.InteractionContext) log.Fields {
	fields := log.Fields{
		"user_id":    ctx.UserID,
		"guild_id":   ctx.GuildID,
		"channel_id": ctx.ChannelID,
	}

	if ctx.IsCommand() {
		fields["command"] = ctx.GetCommandName()
		if sub := ctx.GetSubcommand(); sub != "" {
			fields["subcommand"] = sub
		}
	}

	if id := ctx.RequestID(); id != "" {
		fields["request_id"] = id
	}

	return fields
}
