package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmagarde/pharmagarde/pkg/logger"
)

type ctxKey struct{}

func TestNew(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello", logger.PharmacyID("p1"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "p1", entry["pharmacy_id"])
	})

	t.Run("development renders text through tint", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithEnvironment("development", "pharmagarde"),
			logger.WithNoColor(),
		)
		log.Debug("visible at debug")
		out := buf.String()
		assert.Contains(t, out, "DBG")
		assert.Contains(t, out, "visible at debug")
		assert.Contains(t, out, "service=pharmagarde")
	})

	t.Run("production hides debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithEnvironment("production", "svc"))
		log.Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("context extractors inject attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				v, ok := ctx.Value(ctxKey{}).(string)
				return slog.String("request_id", v), ok
			}),
		)
		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.With("a", 1).InfoContext(ctx, "msg", logger.Error(errors.New("boom")))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "boom", entry["error"])
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("nonsense"))
}
