package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbncursed/vkr/board-service/internal/logger"
)

type ctxKey struct{}

func TestNew_JSONWithAttrsAndContext(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatJSON),
		logger.WithAttr(slog.String("service", "board-service")),
		logger.WithContextValue("request_id", ctxKey{}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	l.InfoContext(ctx, "hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "board-service", rec["service"])
	assert.Equal(t, "req-1", rec["request_id"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
	l.Info("dropped")
	assert.Empty(t, buf.String())
	l.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithEnvironment(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("development", "svc"))
	l.Debug("dbg")
	assert.Contains(t, buf.String(), "msg=dbg")
	assert.Contains(t, buf.String(), "service=svc")

	buf.Reset()
	l = logger.New(logger.WithOutput(&buf), logger.WithEnvironment("production", "svc"))
	l.Debug("dbg")
	assert.Empty(t, buf.String())
}

func TestWithFormat_InvalidPanics(t *testing.T) {
	assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
}

func TestParseLevel(t *testing.T) {
	l, ok := logger.ParseLevel("warn")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, l)

	_, ok = logger.ParseLevel("")
	assert.False(t, ok)

	_, ok = logger.ParseLevel("loud")
	assert.False(t, ok)
}
