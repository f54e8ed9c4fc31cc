package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

// nearlySoldOutThreshold picks the conferences the announcement mentions:
// open for registration with at most this many seats left.
const nearlySoldOutThreshold = 5

const announcementPrefix = "Last chance to attend! The following conferences are nearly sold out: "

const featuredSpeakerTemplate = "Speaker %s is our feature speaker, will appear in these sessions: %s"

type announcementService struct {
	confRepo       domain.ConferenceRepository
	sessRepo       domain.SessionRepository
	speakerRepo    domain.SpeakerRepository
	cache          domain.Cache
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewAnnouncementService creates an AnnouncementService publishing derived
// facts to the given cache.
func NewAnnouncementService(
	confRepo domain.ConferenceRepository,
	sessRepo domain.SessionRepository,
	speakerRepo domain.SpeakerRepository,
	cache domain.Cache,
	logger *slog.Logger,
	timeout time.Duration,
) domain.AnnouncementService {
	return &announcementService{
		confRepo:       confRepo,
		sessRepo:       sessRepo,
		speakerRepo:    speakerRepo,
		cache:          cache,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *announcementService) RecomputeAnnouncement(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	confs, err := s.confRepo.ListNearlySoldOut(ctx, nearlySoldOutThreshold)
	if err != nil {
		return "", fmt.Errorf("list nearly sold out: %w", err)
	}

	if len(confs) == 0 {
		// A stale announcement is worse than none.
		if err := s.cache.Delete(ctx, domain.CacheKeyAnnouncements); err != nil {
			return "", fmt.Errorf("delete announcement: %w", err)
		}
		return "", nil
	}

	names := make([]string, 0, len(confs))
	for _, c := range confs {
		names = append(names, c.Name)
	}
	msg := announcementPrefix + strings.Join(names, ", ")
	if err := s.cache.Set(ctx, domain.CacheKeyAnnouncements, msg); err != nil {
		return "", fmt.Errorf("set announcement: %w", err)
	}
	return msg, nil
}

// RecomputeFeaturedSpeaker never reports failure to its caller: it runs on
// the task queue after session creation and a lost recompute only delays
// the fact until the next qualifying session.
func (s *announcementService) RecomputeFeaturedSpeaker(ctx context.Context, conferenceID, sessionID string) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sess, err := s.sessRepo.GetByID(ctx, conferenceID, sessionID)
	if err != nil {
		s.logger.Warn("featured speaker recompute: get session failed",
			"session_id", sessionID, "err", err)
		return
	}

	for _, speakerID := range sess.SpeakerIDs {
		sessions, err := s.sessRepo.ListBySpeakerID(ctx, speakerID)
		if err != nil {
			s.logger.Warn("featured speaker recompute: list sessions failed",
				"speaker_id", speakerID, "err", err)
			return
		}
		if len(sessions) <= 1 {
			continue
		}

		speaker, err := s.speakerRepo.GetByID(ctx, speakerID)
		if err != nil {
			s.logger.Warn("featured speaker recompute: get speaker failed",
				"speaker_id", speakerID, "err", err)
			return
		}
		names := make([]string, 0, len(sessions))
		for _, sess := range sessions {
			names = append(names, sess.Name)
		}
		msg := fmt.Sprintf(featuredSpeakerTemplate, speaker.Name, strings.Join(names, ", "))
		if err := s.cache.Set(ctx, domain.CacheKeyFeaturedSpeaker, msg); err != nil {
			s.logger.Warn("featured speaker recompute: cache set failed", "err", err)
		}
		// First speaker over the bar wins.
		return
	}
}

func (s *announcementService) GetAnnouncement(ctx context.Context) (string, error) {
	return s.getCached(ctx, domain.CacheKeyAnnouncements)
}

func (s *announcementService) GetFeaturedSpeaker(ctx context.Context) (string, error) {
	return s.getCached(ctx, domain.CacheKeyFeaturedSpeaker)
}

// getCached returns the cached fact, or the empty string when nothing is
// published under the key.
func (s *announcementService) getCached(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	value, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("cache get: %w", err)
	}
	if !ok {
		return "", nil
	}
	return value, nil
}
