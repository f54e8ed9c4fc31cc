package domain

import (
	"context"
	"time"
)

// Profile represents a user profile. A profile is created lazily the first
// time an authenticated caller touches profile-backed state.
// swagger:model Profile
type Profile struct {
	ID           string    `json:"id"`
	DisplayName  string    `json:"display_name"`
	MainEmail    string    `json:"main_email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewProfile returns a new Profile. ID is typically set by the repository on create.
func NewProfile(displayName, mainEmail string, createdAt, updatedAt time.Time) *Profile {
	return &Profile{
		DisplayName: displayName,
		MainEmail:   mainEmail,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated profile.
type TokenIssuer interface {
	Issue(profileID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated profile ID.
type TokenVerifier interface {
	Verify(token string) (profileID string, err error)
}

// ProfileRepository defines the interface for profile storage
type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
}

// ProfileService defines the business logic for profiles and authentication.
type ProfileService interface {
	SignUp(ctx context.Context, email, password, displayName string) (*Profile, error)
	Login(ctx context.Context, email, password string) (token string, profile *Profile, err error)
	// GetOrCreate returns the caller's profile, creating an empty one if
	// the authenticated identity has no profile row yet.
	GetOrCreate(ctx context.Context, profileID string) (*Profile, error)
	// Save applies the user-modifiable fields (display name) and returns
	// the updated profile.
	Save(ctx context.Context, profileID, displayName string) (*Profile, error)
}
