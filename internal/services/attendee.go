package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"conferencecentral/internal/domain"
)

type attendeeService struct {
	regRepo        domain.RegistrationRepository
	wishRepo       domain.WishlistRepository
	confRepo       domain.ConferenceRepository
	sessRepo       domain.SessionRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewAttendeeService creates an AttendeeService wiring registration and
// wishlist storage to the conference and session repositories.
func NewAttendeeService(
	regRepo domain.RegistrationRepository,
	wishRepo domain.WishlistRepository,
	confRepo domain.ConferenceRepository,
	sessRepo domain.SessionRepository,
	logger *slog.Logger,
	timeout time.Duration,
) domain.AttendeeService {
	return &attendeeService{
		regRepo:        regRepo,
		wishRepo:       wishRepo,
		confRepo:       confRepo,
		sessRepo:       sessRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *attendeeService) RegisterForConference(ctx context.Context, profileID, conferenceID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.confRepo.GetByID(ctx, conferenceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("get conference: %w", err)
	}
	if err := s.regRepo.Register(ctx, profileID, conferenceID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *attendeeService) UnregisterFromConference(ctx context.Context, profileID, conferenceID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.confRepo.GetByID(ctx, conferenceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("get conference: %w", err)
	}
	removed, err := s.regRepo.Unregister(ctx, profileID, conferenceID)
	if err != nil {
		return false, fmt.Errorf("unregister: %w", err)
	}
	return removed, nil
}

func (s *attendeeService) ListConferencesToAttend(ctx context.Context, profileID string) ([]*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ids, err := s.regRepo.ListConferenceIDs(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if len(ids) == 0 {
		return []*domain.Conference{}, nil
	}
	confs, err := s.confRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	return confs, nil
}

func (s *attendeeService) AddSessionToWishlist(ctx context.Context, profileID, conferenceID, sessionID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.sessRepo.GetByID(ctx, conferenceID, sessionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("get session: %w", err)
	}
	if err := s.wishRepo.Add(ctx, profileID, sessionID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *attendeeService) RemoveSessionFromWishlist(ctx context.Context, profileID, conferenceID, sessionID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.sessRepo.GetByID(ctx, conferenceID, sessionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("get session: %w", err)
	}
	removed, err := s.wishRepo.Remove(ctx, profileID, sessionID)
	if err != nil {
		return false, fmt.Errorf("remove from wishlist: %w", err)
	}
	return removed, nil
}

func (s *attendeeService) ListSessionsInWishlist(ctx context.Context, profileID string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ids, err := s.wishRepo.ListSessionIDs(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	if len(ids) == 0 {
		return []*domain.Session{}, nil
	}
	sessions, err := s.sessRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}
