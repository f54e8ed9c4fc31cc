package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

const minPasswordLen = 8

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type profileService struct {
	profileRepo domain.ProfileRepository
	hasher      domain.PasswordHasher
	issuer      domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewProfileService creates a ProfileService with the given repository and auth adapters.
func NewProfileService(
	profileRepo domain.ProfileRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	tokenExpiry time.Duration,
) domain.ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		hasher:      hasher,
		issuer:      issuer,
		tokenExpiry: tokenExpiry,
	}
}

func (s *profileService) SignUp(ctx context.Context, email, password, displayName string) (*domain.Profile, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	profile := domain.NewProfile(strings.TrimSpace(displayName), email, now, now)
	profile.PasswordHash = hash
	profile.Salt = salt
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) Login(ctx context.Context, email, password string) (string, *domain.Profile, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	profile, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get profile by email: %w", err)
	}
	if err := s.hasher.Compare(profile.PasswordHash, profile.Salt, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(profile.ID, profile.MainEmail, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, profile, nil
}

// GetOrCreate returns the profile for the authenticated identity, creating
// an empty one on first access.
func (s *profileService) GetOrCreate(ctx context.Context, profileID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	now := time.Now()
	profile = domain.NewProfile("", "", now, now)
	profile.ID = profileID
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) Save(ctx context.Context, profileID, displayName string) (*domain.Profile, error) {
	profile, err := s.GetOrCreate(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(displayName); name != "" {
		profile.DisplayName = name
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
	}
	return profile, nil
}
