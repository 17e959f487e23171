// Package apperrors defines the sentinel errors shared by services,
// middleware and controllers. Callers match them with errors.Is; the
// transport layer maps each kind to an HTTP status.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means no record with the requested id exists at all.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden means the record exists but belongs to another user.
	ErrForbidden = errors.New("forbidden")
	// ErrDuplicateEmail means registration hit an already-taken email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrTokenMissing means no bearer token was supplied.
	ErrTokenMissing = errors.New("token missing")
	// ErrTokenInvalid covers malformed, tampered and expired tokens.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrValidation marks malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")
)

// Validationf wraps ErrValidation with a detail message, so callers can
// still match errors.Is(err, ErrValidation).
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
