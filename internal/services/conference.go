package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"conferencecentral/internal/domain"
	"conferencecentral/internal/query"
)

// Creation defaults applied when the organizer leaves fields empty.
const (
	defaultCity  = "Default City"
	defaultTopic = "Default_Topic"
)

type conferenceService struct {
	confRepo       domain.ConferenceRepository
	profileRepo    domain.ProfileRepository
	taskQueue      domain.TaskQueue
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewConferenceService creates a ConferenceService with the given repositories and task queue.
func NewConferenceService(
	confRepo domain.ConferenceRepository,
	profileRepo domain.ProfileRepository,
	taskQueue domain.TaskQueue,
	logger *slog.Logger,
	timeout time.Duration,
) domain.ConferenceService {
	return &conferenceService{
		confRepo:       confRepo,
		profileRepo:    profileRepo,
		taskQueue:      taskQueue,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *conferenceService) CreateConference(ctx context.Context, organizerID string, conf *domain.Conference) (*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if conf.Name == "" {
		return nil, fmt.Errorf("%w: conference 'name' field required", domain.ErrInvalidInput)
	}
	if conf.MaxAttendees < 0 {
		return nil, fmt.Errorf("%w: maxAttendees must not be negative", domain.ErrInvalidInput)
	}

	if conf.City == "" {
		conf.City = defaultCity
	}
	if len(conf.Topics) == 0 {
		conf.Topics = []string{defaultTopic}
	}
	conf.Month = monthOf(conf.StartDate)
	// Every seat starts free.
	conf.SeatsAvailable = conf.MaxAttendees

	now := time.Now()
	conf.OrganizerID = organizerID
	conf.CreatedAt = now
	conf.UpdatedAt = now

	if err := s.confRepo.Create(ctx, conf); err != nil {
		return nil, fmt.Errorf("create conference: %w", err)
	}

	s.enqueueConfirmationEmail(ctx, organizerID, conf)
	return conf, nil
}

// enqueueConfirmationEmail dispatches the creation confirmation mail task.
// The creating request never fails on queue or profile-lookup problems.
func (s *conferenceService) enqueueConfirmationEmail(ctx context.Context, organizerID string, conf *domain.Conference) {
	profile, err := s.profileRepo.GetByID(ctx, organizerID)
	if err != nil || profile.MainEmail == "" {
		s.logger.Warn("skipping confirmation email, no organizer address", "conference_id", conf.ID, "err", err)
		return
	}
	params := map[string]string{
		domain.TaskParamEmail:          profile.MainEmail,
		domain.TaskParamConferenceName: conf.Name,
		domain.TaskParamConferenceInfo: fmt.Sprintf("%s (%s)", conf.Name, conf.City),
	}
	if err := s.taskQueue.Enqueue(ctx, domain.TaskSendConfirmationEmail, params); err != nil {
		s.logger.Warn("failed to enqueue confirmation email", "conference_id", conf.ID, "err", err)
	}
}

func (s *conferenceService) UpdateConference(ctx context.Context, conferenceID, callerID string, upd *domain.ConferenceUpdate) (*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conf, err := s.confRepo.GetByID(ctx, conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	if conf.OrganizerID != callerID {
		return nil, domain.ErrForbidden
	}

	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, fmt.Errorf("%w: conference 'name' field required", domain.ErrInvalidInput)
		}
		conf.Name = *upd.Name
	}
	if upd.Description != nil {
		conf.Description = *upd.Description
	}
	if len(upd.Topics) > 0 {
		conf.Topics = upd.Topics
	}
	if upd.City != nil {
		conf.City = *upd.City
	}
	if upd.StartDate != nil {
		conf.StartDate = upd.StartDate
	}
	if upd.EndDate != nil {
		conf.EndDate = upd.EndDate
	}
	conf.Month = monthOf(conf.StartDate)

	if upd.MaxAttendees != nil {
		if *upd.MaxAttendees < 0 {
			return nil, fmt.Errorf("%w: maxAttendees must not be negative", domain.ErrInvalidInput)
		}
		// Capacity changes move the free-seat count by the same delta so
		// existing registrations keep their seats.
		delta := *upd.MaxAttendees - conf.MaxAttendees
		conf.MaxAttendees = *upd.MaxAttendees
		conf.SeatsAvailable += delta
		if conf.SeatsAvailable < 0 {
			conf.SeatsAvailable = 0
		}
		if conf.SeatsAvailable > conf.MaxAttendees {
			conf.SeatsAvailable = conf.MaxAttendees
		}
	}

	if err := s.confRepo.Update(ctx, conf); err != nil {
		return nil, fmt.Errorf("update conference: %w", err)
	}
	return conf, nil
}

func (s *conferenceService) GetConference(ctx context.Context, conferenceID string) (*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conf, err := s.confRepo.GetByID(ctx, conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	return conf, nil
}

func (s *conferenceService) QueryConferences(ctx context.Context, filters []query.Filter) ([]*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	plan, err := query.Compile(query.ConferenceFields, filters)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	confs, err := s.confRepo.QueryByPlan(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("query conferences: %w", err)
	}
	return confs, nil
}

func (s *conferenceService) ListConferencesCreated(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	confs, err := s.confRepo.ListByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list conferences by organizer: %w", err)
	}
	return confs, nil
}

// monthOf returns the start date's month, 0 when no start date is set.
func monthOf(startDate *time.Time) int {
	if startDate == nil {
		return 0
	}
	return int(startDate.Month())
}
