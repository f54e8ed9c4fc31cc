package domain

import "context"

// Cache is the read-optimized key-value store derived facts are published
// to. Best effort: callers treat failures as non-fatal.
type Cache interface {
	// Get returns the cached value; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Cache keys for published derived facts.
const (
	CacheKeyAnnouncements   = "RECENT_ANNOUNCEMENTS"
	CacheKeyFeaturedSpeaker = "FEATURED_SPEAKER"
)

// AnnouncementService recomputes derived facts from primary data and
// publishes them to the cache. Both recompute routines are idempotent and
// run in the background: failures are logged, never surfaced to a caller.
type AnnouncementService interface {
	// RecomputeAnnouncement rebuilds the near-sold-out announcement,
	// publishing it under CacheKeyAnnouncements or deleting the key when
	// no conference qualifies. Returns the message for cron logging.
	RecomputeAnnouncement(ctx context.Context) (string, error)
	// RecomputeFeaturedSpeaker checks the session's speakers and publishes
	// a featured-speaker fact for the first one appearing in more than one
	// session system-wide. Leaves the cache untouched when none qualifies.
	RecomputeFeaturedSpeaker(ctx context.Context, conferenceID, sessionID string)
	GetAnnouncement(ctx context.Context) (string, error)
	GetFeaturedSpeaker(ctx context.Context) (string, error)
}
