package model

import "context"

// ContextManager stores and retrieves the authenticated session claims on a
// request context.
type ContextManager interface {
	SetClaimsToContext(ctx context.Context, claims SessionClaims) context.Context
	GetClaimsFromContext(ctx context.Context) (SessionClaims, bool)
}
