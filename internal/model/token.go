package model

import "github.com/google/uuid"

// TokenManager issues and verifies session tokens.
type TokenManager interface {
	Generate(user User) (string, error)
	Parse(token string) (SessionClaims, error)
}

// SessionClaims is the decoded payload of a session token. It is trusted only
// after the token's signature and expiry have been verified.
type SessionClaims struct {
	UserID uuid.UUID
	Name   string
	Email  string
}
