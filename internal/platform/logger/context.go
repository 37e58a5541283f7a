package logger

import (
	"context"
	"log/slog"
)

type contextKey int

const (
	loggerKey contextKey = iota
	traceIDKey
)

// WithLogger returns a copy of ctx carrying the given logger.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	if l == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger stored in ctx, or nil when there is none.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nil
	}
	l, _ := ctx.Value(loggerKey).(*slog.Logger)
	return l
}

// FromContextOrDefault returns the logger stored in ctx, falling back to fallback
// (or slog.Default() when fallback is nil). A trace ID carried by ctx is added to
// the fallback so log lines stay correlated.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l := FromContext(ctx); l != nil {
		return l
	}
	if fallback == nil {
		fallback = slog.Default()
	}
	if traceID := TraceIDFromContext(ctx); traceID != "" {
		return fallback.With("trace_id", traceID)
	}
	return fallback
}

// WithTraceID stores a trace ID in ctx and binds it to the context logger.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	ctx = context.WithValue(ctx, traceIDKey, traceID)
	base := FromContext(ctx)
	if base == nil {
		base = slog.Default()
	}
	return WithLogger(ctx, base.With("trace_id", traceID))
}

// TraceIDFromContext returns the trace ID stored in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey).(string)
	return id
}
