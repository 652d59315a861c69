package logging

import "context"

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID returns a context carrying a per-request correlation id.
// Loggers aware of this package attach the id to every record they emit.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the correlation id stored by WithRequestID,
// or the empty string when the context carries none.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
