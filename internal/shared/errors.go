// Package shared holds the sentinel errors used across repositories,
// services, and handlers. Handlers classify them with errors.Is to pick
// status codes; the error values themselves never carry internal detail.
package shared

import "errors"

var (
	// common errors
	ErrNotFound = errors.New("not found")

	// auth-specific errors
	ErrValidation = errors.New("all fields required")

	ErrDuplicateEmail = errors.New("user already exists")

	// ErrInvalidCredentials covers both "unknown email" and "wrong
	// password". Callers must never be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionPersistence means a session could not be durably recorded.
	// A login must not report success when this is returned.
	ErrSessionPersistence = errors.New("session could not be saved")
)
