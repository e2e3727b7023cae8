package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// ContextKey is the key type for values stored in a request context.
type ContextKey string

// TraceIDKey is the context key for the per-request trace ID used to
// correlate logs and error responses.
const TraceIDKey ContextKey = "traceID"

// traceIDBytes is the number of random bytes in a trace ID (32 hex chars).
const traceIDBytes = 16

// SetTraceID returns a copy of ctx carrying a freshly generated trace ID.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, newTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" if absent.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// newTraceID generates a random trace ID. If the system randomness source
// fails it falls back to a UUID rather than returning a static value.
func newTraceID() string {
	b := make([]byte, traceIDBytes)
	if _, err := rand.Read(b); err != nil {
		return uuid.NewString()
	}
	return hex.EncodeToString(b)
}
