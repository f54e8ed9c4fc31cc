package domain

import (
	"context"
	"time"

	"conferencecentral/internal/query"
)

// Conference represents a conference owned by the organizer's profile.
// SeatsAvailable is initialized to MaxAttendees at creation and afterwards
// mutated only by the registration engine; 0 <= SeatsAvailable <= MaxAttendees
// holds at all times.
// swagger:model Conference
type Conference struct {
	ID             string     `json:"id"`
	OrganizerID    string     `json:"organizer_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Topics         []string   `json:"topics"`
	City           string     `json:"city"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Month          int        `json:"month"`
	MaxAttendees   int        `json:"max_attendees"`
	SeatsAvailable int        `json:"seats_available"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ConferenceUpdate holds the optional fields of a partial conference update.
// Nil means "leave unchanged".
type ConferenceUpdate struct {
	Name         *string
	Description  *string
	Topics       []string
	City         *string
	StartDate    *time.Time
	EndDate      *time.Time
	MaxAttendees *int
}

// ConferenceRepository defines the interface for conference storage
type ConferenceRepository interface {
	Create(ctx context.Context, conf *Conference) error
	GetByID(ctx context.Context, id string) (*Conference, error)
	Update(ctx context.Context, conf *Conference) error
	ListByOrganizerID(ctx context.Context, organizerID string) ([]*Conference, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Conference, error)
	// QueryByPlan executes a compiled filter plan over all conferences.
	QueryByPlan(ctx context.Context, plan *query.Plan) ([]*Conference, error)
	// ListNearlySoldOut returns conferences with 0 < seats_available <= threshold.
	ListNearlySoldOut(ctx context.Context, threshold int) ([]*Conference, error)
}

// ConferenceService defines the business logic for conferences.
type ConferenceService interface {
	CreateConference(ctx context.Context, organizerID string, conf *Conference) (*Conference, error)
	UpdateConference(ctx context.Context, conferenceID, callerID string, upd *ConferenceUpdate) (*Conference, error)
	GetConference(ctx context.Context, conferenceID string) (*Conference, error)
	QueryConferences(ctx context.Context, filters []query.Filter) ([]*Conference, error)
	ListConferencesCreated(ctx context.Context, organizerID string) ([]*Conference, error)
}
