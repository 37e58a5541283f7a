package shared

import (
	"context"
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
)

// SetTraceID adds a fresh trace ID to the context and binds it to the context logger.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return logger.WithTraceID(ctx, newTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	return logger.TraceIDFromContext(ctx)
}

// newTraceID returns 32 hex characters of a random UUID.
func newTraceID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
