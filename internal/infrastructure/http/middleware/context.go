package middleware

import (
	"context"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
)

type contextKey string

const sessionContextKey contextKey = "session"

// WithSession injects verified session claims into the context. Only the
// bearer-token gate calls this.
func WithSession(ctx context.Context, claims *ports.SessionClaims) context.Context {
	return context.WithValue(ctx, sessionContextKey, claims)
}

// SessionFromContext returns the verified claims, or nil when the request
// never passed the gate.
func SessionFromContext(ctx context.Context) *ports.SessionClaims {
	v := ctx.Value(sessionContextKey)
	if v == nil {
		return nil
	}
	c, _ := v.(*ports.SessionClaims)
	return c
}
