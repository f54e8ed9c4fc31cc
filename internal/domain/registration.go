package domain

import "context"

// RegistrationRepository persists conference attendance. Register and
// Unregister mutate the membership list and the conference seat counter
// as one atomic unit: an observer never sees one without the other.
type RegistrationRepository interface {
	// Register appends the conference to the profile's attendance list and
	// decrements seats_available by one. Fails with ErrAlreadyRegistered,
	// ErrNoSeatsAvailable, or ErrStoreUnavailable after exhausting the
	// transient-contention retry budget. No partial application.
	Register(ctx context.Context, profileID, conferenceID string) error
	// Unregister removes the membership entry and increments
	// seats_available. Returns false (and mutates nothing) when the
	// profile is not a member.
	Unregister(ctx context.Context, profileID, conferenceID string) (bool, error)
	// ListConferenceIDs returns the profile's attendance list in insertion order.
	ListConferenceIDs(ctx context.Context, profileID string) ([]string, error)
}

// WishlistRepository persists a profile's session wishlist. Single entity
// scope, no counter side effect.
type WishlistRepository interface {
	// Add fails with ErrAlreadyInWishlist on duplicate entries.
	Add(ctx context.Context, profileID, sessionID string) error
	// Remove returns false when the session is not on the wishlist.
	Remove(ctx context.Context, profileID, sessionID string) (bool, error)
	// ListSessionIDs returns the wishlist in insertion order.
	ListSessionIDs(ctx context.Context, profileID string) ([]string, error)
}

// AttendeeService defines attendee-facing operations: conference
// registration and the session wishlist.
type AttendeeService interface {
	// RegisterForConference registers the caller for the conference,
	// taking one seat. Returns true on success.
	RegisterForConference(ctx context.Context, profileID, conferenceID string) (bool, error)
	// UnregisterFromConference gives the seat back. Returns false (not an
	// error) when the caller was not registered.
	UnregisterFromConference(ctx context.Context, profileID, conferenceID string) (bool, error)
	ListConferencesToAttend(ctx context.Context, profileID string) ([]*Conference, error)

	AddSessionToWishlist(ctx context.Context, profileID, conferenceID, sessionID string) (bool, error)
	RemoveSessionFromWishlist(ctx context.Context, profileID, conferenceID, sessionID string) (bool, error)
	ListSessionsInWishlist(ctx context.Context, profileID string) ([]*Session, error)
}
