package domain

import (
	"context"
	"time"
)

// Speaker represents a speaker owned by the profile that created it.
// Referenced by zero or more sessions.
// swagger:model Speaker
type Speaker struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSpeaker returns a new Speaker. ID is typically set by the repository on create.
func NewSpeaker(ownerID, name string, createdAt, updatedAt time.Time) *Speaker {
	return &Speaker{
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// SpeakerRepository defines the interface for speaker storage
type SpeakerRepository interface {
	Create(ctx context.Context, speaker *Speaker) error
	GetByID(ctx context.Context, id string) (*Speaker, error)
	Update(ctx context.Context, speaker *Speaker) error
	List(ctx context.Context) ([]*Speaker, error)
}

// SpeakerService defines the business logic for speakers.
type SpeakerService interface {
	CreateSpeaker(ctx context.Context, ownerID, name string) (*Speaker, error)
	UpdateSpeaker(ctx context.Context, speakerID, callerID, name string) (*Speaker, error)
	GetSpeaker(ctx context.Context, speakerID string) (*Speaker, error)
	ListSpeakers(ctx context.Context) ([]*Speaker, error)
}
