package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"conferencecentral/internal/domain"
)

type speakerService struct {
	speakerRepo    domain.SpeakerRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewSpeakerService creates a SpeakerService backed by the given repository.
func NewSpeakerService(speakerRepo domain.SpeakerRepository, logger *slog.Logger, timeout time.Duration) domain.SpeakerService {
	return &speakerService{
		speakerRepo:    speakerRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *speakerService) CreateSpeaker(ctx context.Context, ownerID, name string) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if name == "" {
		return nil, fmt.Errorf("%w: speaker 'name' field required", domain.ErrInvalidInput)
	}

	now := time.Now()
	speaker := domain.NewSpeaker(ownerID, name, now, now)
	if err := s.speakerRepo.Create(ctx, speaker); err != nil {
		return nil, fmt.Errorf("create speaker: %w", err)
	}
	return speaker, nil
}

func (s *speakerService) UpdateSpeaker(ctx context.Context, speakerID, callerID, name string) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if name == "" {
		return nil, fmt.Errorf("%w: speaker 'name' field required", domain.ErrInvalidInput)
	}

	speaker, err := s.speakerRepo.GetByID(ctx, speakerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get speaker: %w", err)
	}
	if speaker.OwnerID != callerID {
		return nil, domain.ErrForbidden
	}

	speaker.Name = name
	speaker.UpdatedAt = time.Now()
	if err := s.speakerRepo.Update(ctx, speaker); err != nil {
		return nil, fmt.Errorf("update speaker: %w", err)
	}
	return speaker, nil
}

func (s *speakerService) GetSpeaker(ctx context.Context, speakerID string) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	speaker, err := s.speakerRepo.GetByID(ctx, speakerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get speaker: %w", err)
	}
	return speaker, nil
}

func (s *speakerService) ListSpeakers(ctx context.Context) ([]*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	speakers, err := s.speakerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	return speakers, nil
}
