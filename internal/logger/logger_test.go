package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"learndash/internal/config"
	"learndash/internal/reqctx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestWithCtx_AddsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	prev := Log
	Log = zap.New(core)
	t.Cleanup(func() { Log = prev })

	ctx := reqctx.WithRequestID(context.Background(), "req-42")
	WithCtx(ctx).Info("hello")
	WithCtx(context.Background()).Info("anonymous")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestInitLogger_WritesToLogDir(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	dir := t.TempDir()
	err := InitLogger(&config.Config{LogLevel: "info", LogDir: dir})
	require.NoError(t, err)
	assert.NotNil(t, Log)
	assert.DirExists(t, dir)
}

func TestBootstrap_WritesBeforeConfig(t *testing.T) {
	var buf bytes.Buffer
	log := newBootstrap(zapcore.AddSync(&buf))

	log.Error("failed to load config", zap.Error(errors.New("DB_AUTO_MIGRATE: invalid syntax")))
	log.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "failed to load config")
	assert.Contains(t, out, "DB_AUTO_MIGRATE: invalid syntax")
	assert.NotContains(t, out, "hidden")
}

func TestInitBootstrap_ReplacesNop(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })
	Log = zap.NewNop()

	InitBootstrap()

	assert.True(t, Log.Core().Enabled(zapcore.InfoLevel))
}
