// Package context carries authenticated session claims on request contexts.
package context

import (
	"context"

	"github.com/mytasks/mytasks-server/internal/model"
)

type contextKey int

const claimsKey contextKey = iota

// Manager implements model.ContextManager on plain request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetClaimsToContext returns a child context carrying the session claims.
func (m *Manager) SetClaimsToContext(ctx context.Context, claims model.SessionClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext retrieves the session claims set by the authentication
// middleware. The boolean is false on unauthenticated requests.
func (m *Manager) GetClaimsFromContext(ctx context.Context) (model.SessionClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(model.SessionClaims)
	return claims, ok
}
