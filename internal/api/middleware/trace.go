// Package middleware provides HTTP middleware applied across the router.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/api/shared"
	"github.com/taskdeck/taskdeck/internal/platform/logger"
)

// Trace assigns each request a trace ID and stores a trace-scoped logger
// in the request context so downstream handlers and stores log with the
// same correlation attribute. Apply it early in the middleware chain.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
