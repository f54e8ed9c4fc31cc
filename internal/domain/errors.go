package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the caller is not the owner of the
	// entity being mutated.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput covers missing required fields, malformed keys and
	// invalid filter sets.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStoreUnavailable is returned after the bounded retry budget for
	// transient store failures is exhausted. Callers may retry.
	ErrStoreUnavailable = errors.New("store temporarily unavailable")
	// ErrDuplicateEmail is returned on signup with an email already in use.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrInvalidCredentials is returned on login with an unknown email or
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ErrConflict is the root of the business-rule conflict family. The
// specific rules below wrap it so handlers can map the whole family to
// one status while services branch on the exact rule.
var ErrConflict = errors.New("conflict")

var (
	ErrAlreadyRegistered = wrapConflict("already registered for this conference")
	ErrNoSeatsAvailable  = wrapConflict("there are no seats available")
	ErrAlreadyInWishlist = wrapConflict("session already on wishlist")
)

func wrapConflict(msg string) error {
	return conflictError(msg)
}

type conflictError string

func (e conflictError) Error() string { return string(e) }

func (e conflictError) Unwrap() error { return ErrConflict }
