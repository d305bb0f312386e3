// Package common defines shared constants and sentinel errors used across
// taskkeeper components. Callers should use errors.Is to match these values;
// the message text is a presentation concern and may be surfaced verbatim.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors raised by the transport boundary before the core runs.
	ErrValidation = errors.New("validation error")

	// Credential manager errors. ErrInvalidCredentials deliberately collapses
	// "unknown email" and "wrong password" into a single kind and message.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Task store errors. ErrTaskNotFound covers both "no such task" and
	// "task owned by someone else" so callers cannot probe for existence.
	ErrOwnerNotFound = errors.New("owner not found")
	ErrTaskNotFound  = errors.New("task not found or access denied")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
