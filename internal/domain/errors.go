package domain

import "errors"

// Sentinel errors shared across layers. Callers match them with errors.Is;
// the delivery layer maps them to HTTP statuses.
var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// Validation errors.
	ErrInvalidInput = errors.New("invalid input")

	// Auth errors. A single generic credential error is returned for both
	// unknown email and wrong password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)
