package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/recipe-api/internal/config"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := logger.ParseLevel(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestSetupWithWriter(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	buf := &logger.TestLogBuffer{}
	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "warn", Environment: "test"}, buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("should be filtered")
	l.Warn("kept", "key", "value")

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["msg"])
	assert.Equal(t, "value", entries[0]["key"])
	assert.Equal(t, "recipe-api", entries[0]["service"])
	assert.Equal(t, "test", entries[0]["environment"])
}

func TestSetupWithWriterInvalidLevel(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	buf := &logger.TestLogBuffer{}
	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "loud"}, buf)
	require.NoError(t, err)

	l.Debug("filtered at info")

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "invalid log level configured, using default level", entries[0]["msg"])
	assert.Equal(t, "loud", entries[0]["configured_level"])
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	assert.Nil(t, logger.FromContext(context.Background()))
	assert.NotNil(t, logger.FromContextOrDefault(context.Background(), nil))

	l, buf := logger.NewTestLogger()
	ctx := logger.WithLogger(context.Background(), l)
	assert.Same(t, l, logger.FromContext(ctx))

	ctx = logger.WithTraceID(ctx, "trace-123")
	assert.Equal(t, "trace-123", logger.TraceIDFromContext(ctx))

	logger.FromContextOrDefault(ctx, nil).Info("hello")

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "trace-123", entries[0]["trace_id"])
}

func TestFromContextOrDefaultFallback(t *testing.T) {
	t.Parallel()

	fallback, buf := logger.NewTestLogger()
	ctx := context.WithValue(context.Background(), struct{}{}, "unrelated")
	logger.FromContextOrDefault(ctx, fallback).Info("via fallback")

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "via fallback", entries[0]["msg"])
}

func TestWithLoggerNil(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, ctx, logger.WithLogger(ctx, nil))
}
