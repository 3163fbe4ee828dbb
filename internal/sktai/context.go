package sktai

import "context"

type contextKey struct{}

var usernameKey contextKey

// WithUsername marks the acting platform principal for a call chain. The
// eviction key on a 401 is taken from here, never re-derived from ambient
// state.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// UsernameFromContext returns the acting principal, if any.
func UsernameFromContext(ctx context.Context) string {
	if username, ok := ctx.Value(usernameKey).(string); ok {
		return username
	}
	return ""
}
