package model

import "errors"

var (
	// ErrNotFound is returned when a record does not exist. Ownership denials
	// surface as ErrNotFound too, so a task owned by another user is
	// indistinguishable from a task that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when registration hits an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers expired, tampered and malformed session tokens.
	ErrInvalidToken = errors.New("invalid session token")
)

// ValidationError reports a missing or invalid request field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing or invalid field: " + e.Field
}

// NewValidationError creates a ValidationError for the named field.
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}
