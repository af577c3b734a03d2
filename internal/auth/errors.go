package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases are deliberately indistinguishable so the
	// login endpoint does not reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned by UserStore lookups. The login flow
	// collapses it into ErrInvalidCredentials before it reaches a caller.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotAllowlisted rejects registration for emails outside the
	// configured allowlist.
	ErrNotAllowlisted = errors.New("registration not allowed")

	// ErrEmailTaken rejects registration for an email that already has
	// an account.
	ErrEmailTaken = errors.New("email already registered")

	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// RateLimitError is returned while an identifier is locked out after too
// many failed login attempts.
type RateLimitError struct {
	RetryAfterMinutes int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("too many login attempts, retry in %d minutes", e.RetryAfterMinutes)
}
