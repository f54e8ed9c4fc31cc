package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"conferencecentral/internal/domain"
	"conferencecentral/internal/query"
)

// Creation defaults applied when the organizer leaves fields empty.
const (
	defaultDurationMins = 60
	defaultLocation     = "Default Room"
	defaultHighlight    = "Default_Highlight"
)

// daytimeCutoff is the exclusive upper bound for the daytime session query.
const daytimeCutoff = "19:00"

var startTimeRegexp = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type sessionService struct {
	confRepo       domain.ConferenceRepository
	sessRepo       domain.SessionRepository
	speakerRepo    domain.SpeakerRepository
	taskQueue      domain.TaskQueue
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewSessionService creates a SessionService with the given repositories and task queue.
func NewSessionService(
	confRepo domain.ConferenceRepository,
	sessRepo domain.SessionRepository,
	speakerRepo domain.SpeakerRepository,
	taskQueue domain.TaskQueue,
	logger *slog.Logger,
	timeout time.Duration,
) domain.SessionService {
	return &sessionService{
		confRepo:       confRepo,
		sessRepo:       sessRepo,
		speakerRepo:    speakerRepo,
		taskQueue:      taskQueue,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, conferenceID, callerID string, sess *domain.Session) (*domain.Session, error) {
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

	if sess.Name == "" {
		return nil, fmt.Errorf("%w: session 'name' field required", domain.ErrInvalidInput)
	}
	if sess.Type == "" {
		sess.Type = domain.SessionTypeNotSpecified
	}
	if !domain.ValidSessionType(sess.Type) {
		return nil, fmt.Errorf("%w: unknown session type %q", domain.ErrInvalidInput, sess.Type)
	}
	if sess.StartTime != "" && !startTimeRegexp.MatchString(sess.StartTime) {
		return nil, fmt.Errorf("%w: startTime must be HH:MM", domain.ErrInvalidInput)
	}
	if sess.DurationMins < 0 {
		return nil, fmt.Errorf("%w: durationInMins must not be negative", domain.ErrInvalidInput)
	}

	if sess.DurationMins == 0 {
		sess.DurationMins = defaultDurationMins
	}
	if sess.Location == "" {
		sess.Location = defaultLocation
	}
	if len(sess.Highlights) == 0 {
		sess.Highlights = []string{defaultHighlight}
	}

	if err := s.checkSpeakersExist(ctx, sess.SpeakerIDs); err != nil {
		return nil, err
	}

	now := time.Now()
	sess.ConferenceID = conferenceID
	sess.CreatedAt = now
	sess.UpdatedAt = now

	if err := s.sessRepo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	// A new session can make one of its speakers featured; figure that
	// out in the background so the request never waits on it.
	params := map[string]string{
		domain.TaskParamConferenceID: conferenceID,
		domain.TaskParamSessionID:    sess.ID,
	}
	if err := s.taskQueue.Enqueue(ctx, domain.TaskSearchFeaturedSpeakers, params); err != nil {
		s.logger.Warn("failed to enqueue featured speaker search", "session_id", sess.ID, "err", err)
	}

	return sess, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, conferenceID, sessionID, callerID string, upd *domain.SessionUpdate) (*domain.Session, error) {
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

	sess, err := s.sessRepo.GetByID(ctx, conferenceID, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, fmt.Errorf("%w: session 'name' field required", domain.ErrInvalidInput)
		}
		sess.Name = *upd.Name
	}
	if len(upd.Highlights) > 0 {
		sess.Highlights = upd.Highlights
	}
	if upd.SpeakerIDs != nil {
		if err := s.checkSpeakersExist(ctx, upd.SpeakerIDs); err != nil {
			return nil, err
		}
		sess.SpeakerIDs = upd.SpeakerIDs
	}
	if upd.Date != nil {
		sess.Date = upd.Date
	}
	if upd.StartTime != nil {
		if *upd.StartTime != "" && !startTimeRegexp.MatchString(*upd.StartTime) {
			return nil, fmt.Errorf("%w: startTime must be HH:MM", domain.ErrInvalidInput)
		}
		sess.StartTime = *upd.StartTime
	}
	if upd.DurationMins != nil {
		if *upd.DurationMins < 0 {
			return nil, fmt.Errorf("%w: durationInMins must not be negative", domain.ErrInvalidInput)
		}
		sess.DurationMins = *upd.DurationMins
	}
	if upd.Type != nil {
		if !domain.ValidSessionType(*upd.Type) {
			return nil, fmt.Errorf("%w: unknown session type %q", domain.ErrInvalidInput, *upd.Type)
		}
		sess.Type = *upd.Type
	}
	if upd.Location != nil {
		sess.Location = *upd.Location
	}

	if err := s.sessRepo.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return sess, nil
}

func (s *sessionService) checkSpeakersExist(ctx context.Context, speakerIDs []string) error {
	for _, id := range speakerIDs {
		if _, err := s.speakerRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: speaker %s", domain.ErrNotFound, id)
			}
			return fmt.Errorf("get speaker: %w", err)
		}
	}
	return nil
}

func (s *sessionService) GetSession(ctx context.Context, conferenceID, sessionID string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sess, err := s.sessRepo.GetByID(ctx, conferenceID, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *sessionService) ListConferenceSessions(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.checkConferenceExists(ctx, conferenceID); err != nil {
		return nil, err
	}
	sessions, err := s.sessRepo.ListByConferenceID(ctx, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) QuerySessions(ctx context.Context, conferenceID string, filters []query.Filter) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.checkConferenceExists(ctx, conferenceID); err != nil {
		return nil, err
	}
	plan, err := query.Compile(query.SessionFields, filters)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	sessions, err := s.sessRepo.QueryByPlan(ctx, conferenceID, plan, nil)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) ListSessionsByType(ctx context.Context, conferenceID string, sessionType domain.SessionType) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !domain.ValidSessionType(sessionType) {
		return nil, fmt.Errorf("%w: unknown session type %q", domain.ErrInvalidInput, sessionType)
	}
	if err := s.checkConferenceExists(ctx, conferenceID); err != nil {
		return nil, err
	}
	// The type restriction rides along as an extra equality condition on
	// an empty plan.
	plan := &query.Plan{}
	extra := []query.Condition{{
		Field: query.SessionFields["TYPE_OF_SESSION"],
		Op:    query.OpEq,
		Value: string(sessionType),
	}}
	sessions, err := s.sessRepo.QueryByPlan(ctx, conferenceID, plan, extra)
	if err != nil {
		return nil, fmt.Errorf("list sessions by type: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) ListSessionsByHighlight(ctx context.Context, conferenceID, highlight string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if highlight == "" {
		return nil, fmt.Errorf("%w: highlight required", domain.ErrInvalidInput)
	}
	if err := s.checkConferenceExists(ctx, conferenceID); err != nil {
		return nil, err
	}
	plan := &query.Plan{}
	extra := []query.Condition{{
		Field: query.Field{Column: "highlights", Repeated: true},
		Op:    query.OpEq,
		Value: highlight,
	}}
	sessions, err := s.sessRepo.QueryByPlan(ctx, conferenceID, plan, extra)
	if err != nil {
		return nil, fmt.Errorf("list sessions by highlight: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) ListSessionsBySpeaker(ctx context.Context, speakerID string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.speakerRepo.GetByID(ctx, speakerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get speaker: %w", err)
	}
	sessions, err := s.sessRepo.ListBySpeakerID(ctx, speakerID)
	if err != nil {
		return nil, fmt.Errorf("list sessions by speaker: %w", err)
	}
	return sessions, nil
}

// ListDaytimeNonWorkshops answers "all non-workshop sessions before 7pm".
// The store allows only one inequality field per query, so the start-time
// bound goes through the plan and the type exclusion is applied in memory.
func (s *sessionService) ListDaytimeNonWorkshops(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.checkConferenceExists(ctx, conferenceID); err != nil {
		return nil, err
	}
	plan, err := query.Compile(query.SessionFields, []query.Filter{
		{Field: "START_TIME", Operator: "LT", Value: daytimeCutoff},
	})
	if err != nil {
		return nil, fmt.Errorf("compile daytime plan: %w", err)
	}
	sessions, err := s.sessRepo.QueryByPlan(ctx, conferenceID, plan, nil)
	if err != nil {
		return nil, fmt.Errorf("query daytime sessions: %w", err)
	}
	filtered := make([]*domain.Session, 0, len(sessions))
	for _, sess := range sessions {
		if sess.Type == domain.SessionTypeWorkshop || sess.StartTime == "" {
			continue
		}
		filtered = append(filtered, sess)
	}
	return filtered, nil
}

func (s *sessionService) checkConferenceExists(ctx context.Context, conferenceID string) error {
	if _, err := s.confRepo.GetByID(ctx, conferenceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get conference: %w", err)
	}
	return nil
}
