package middleware_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/middleware"
)

func failingHandler(err error) core.Handler {
	return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		return nil, err
	})
}

func okHandler() core.Handler {
	return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		return &core.HandlerResult{Response: core.NewResponse("ok")}, nil
	})
}

func TestErrorMiddleware(t *testing.T) {
	ctx := core.NewTestInteractionContext().AsCommand("dotahero").InteractionContext

	t.Run("passes results through", func(t *testing.T) {
		result, err := middleware.ErrorMiddleware(nil)(okHandler()).Handle(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ok", result.Response.Content)
	})

	t.Run("shows handler error message", func(t *testing.T) {
		handler := middleware.ErrorMiddleware(nil)(failingHandler(core.NewInternalError(errors.New("datafeed down"))))

		result, err := handler.Handle(ctx)
		require.NoError(t, err)
		require.NotNil(t, result.Response)
		assert.Equal(t, "An internal error occurred. Please try again later.", result.Response.Content)
		assert.True(t, result.Response.Ephemeral)
	})

	t.Run("hides plain errors", func(t *testing.T) {
		var logged error
		handler := middleware.ErrorMiddleware(&middleware.ErrorConfig{
			LogErrors:          true,
			DefaultUserMessage: "nope",
			ErrorLogger: func(_ *core.InteractionContext, err error) {
				logged = err
			},
		})(failingHandler(errors.New("secret detail")))

		result, err := handler.Handle(ctx)
		require.NoError(t, err)
		assert.Equal(t, "nope", result.Response.Content)
		assert.EqualError(t, logged, "secret detail")
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	ctx := core.NewTestInteractionContext().AsCommand("dotaitem").InteractionContext

	panicking := core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		panic("boom")
	})

	result, err := middleware.RecoveryMiddleware()(panicking).Handle(ctx)

	assert.EqualError(t, err, "boom")
	require.NotNil(t, result)
	assert.True(t, result.Response.Ephemeral)
}

func TestErrorMiddleware_LogLevels(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	ctx := core.NewTestInteractionContext().AsCommand("dotahero").InteractionContext

	_, err := middleware.ErrorMiddleware(nil)(failingHandler(core.NewForbiddenError("off"))).Handle(ctx)
	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)

	_, err = middleware.ErrorMiddleware(nil)(failingHandler(errors.New("datafeed down"))).Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
