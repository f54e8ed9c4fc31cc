package services

import (
	"context"
	"testing"
	"time"

	"conferencecentral/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache is an in-memory Cache for tests.
type fakeCache struct {
	data   map[string]string
	setErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func newAnnouncementFixture() (*fakeConferenceRepo, *fakeSessionRepo, *fakeSpeakerRepo, *fakeCache, domain.AnnouncementService) {
	cr := newFakeConferenceRepo()
	sr := newFakeSessionRepo()
	spk := newFakeSpeakerRepo()
	cache := newFakeCache()
	svc := NewAnnouncementService(cr, sr, spk, cache, testLogger(), 5*time.Second)
	return cr, sr, spk, cache, svc
}

func TestAnnouncementService_RecomputeAnnouncement(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes nearly sold out conferences", func(t *testing.T) {
		cr, _, _, cache, svc := newAnnouncementFixture()
		_ = cr.Create(ctx, &domain.Conference{Name: "Almost Full", MaxAttendees: 100, SeatsAvailable: 3})
		_ = cr.Create(ctx, &domain.Conference{Name: "Last Seats", MaxAttendees: 50, SeatsAvailable: 5})
		_ = cr.Create(ctx, &domain.Conference{Name: "Plenty Left", MaxAttendees: 100, SeatsAvailable: 80})
		_ = cr.Create(ctx, &domain.Conference{Name: "Sold Out", MaxAttendees: 10, SeatsAvailable: 0})

		msg, err := svc.RecomputeAnnouncement(ctx)
		require.NoError(t, err)
		want := "Last chance to attend! The following conferences are nearly sold out: Almost Full, Last Seats"
		assert.Equal(t, want, msg)

		cached, ok, err := cache.Get(ctx, domain.CacheKeyAnnouncements)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, cached)
	})

	t.Run("deletes stale announcement when none qualify", func(t *testing.T) {
		cr, _, _, cache, svc := newAnnouncementFixture()
		_ = cr.Create(ctx, &domain.Conference{Name: "Plenty Left", MaxAttendees: 100, SeatsAvailable: 80})
		cache.data[domain.CacheKeyAnnouncements] = "stale"

		msg, err := svc.RecomputeAnnouncement(ctx)
		require.NoError(t, err)
		assert.Empty(t, msg)

		_, ok, err := cache.Get(ctx, domain.CacheKeyAnnouncements)
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestAnnouncementService_RecomputeFeaturedSpeaker(t *testing.T) {
	ctx := context.Background()

	t.Run("speaker in two sessions becomes featured", func(t *testing.T) {
		cr, sr, spk, cache, svc := newAnnouncementFixture()
		conf := &domain.Conference{Name: "GopherCon"}
		_ = cr.Create(ctx, conf)
		spk.addSpeaker("spk-a", "Ada")
		_ = sr.Create(ctx, &domain.Session{ConferenceID: conf.ID, Name: "Talk One", SpeakerIDs: []string{"spk-a"}})
		second := &domain.Session{ConferenceID: conf.ID, Name: "Talk Two", SpeakerIDs: []string{"spk-a"}}
		_ = sr.Create(ctx, second)

		svc.RecomputeFeaturedSpeaker(ctx, conf.ID, second.ID)

		got, ok, err := cache.Get(ctx, domain.CacheKeyFeaturedSpeaker)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Speaker Ada is our feature speaker, will appear in these sessions: Talk One, Talk Two", got)
	})

	t.Run("single session speaker leaves cache untouched", func(t *testing.T) {
		cr, sr, spk, cache, svc := newAnnouncementFixture()
		conf := &domain.Conference{Name: "GopherCon"}
		_ = cr.Create(ctx, conf)
		spk.addSpeaker("spk-a", "Ada")
		sess := &domain.Session{ConferenceID: conf.ID, Name: "Only Talk", SpeakerIDs: []string{"spk-a"}}
		_ = sr.Create(ctx, sess)
		cache.data[domain.CacheKeyFeaturedSpeaker] = "previous"

		svc.RecomputeFeaturedSpeaker(ctx, conf.ID, sess.ID)

		got, ok, _ := cache.Get(ctx, domain.CacheKeyFeaturedSpeaker)
		require.True(t, ok)
		assert.Equal(t, "previous", got)
	})

	t.Run("first qualifying speaker wins", func(t *testing.T) {
		cr, sr, spk, cache, svc := newAnnouncementFixture()
		conf := &domain.Conference{Name: "GopherCon"}
		_ = cr.Create(ctx, conf)
		spk.addSpeaker("spk-a", "Ada")
		spk.addSpeaker("spk-b", "Grace")
		_ = sr.Create(ctx, &domain.Session{ConferenceID: conf.ID, Name: "A1", SpeakerIDs: []string{"spk-a"}})
		_ = sr.Create(ctx, &domain.Session{ConferenceID: conf.ID, Name: "B1", SpeakerIDs: []string{"spk-b"}})
		both := &domain.Session{ConferenceID: conf.ID, Name: "Joint", SpeakerIDs: []string{"spk-a", "spk-b"}}
		_ = sr.Create(ctx, both)

		svc.RecomputeFeaturedSpeaker(ctx, conf.ID, both.ID)

		got, ok, _ := cache.Get(ctx, domain.CacheKeyFeaturedSpeaker)
		require.True(t, ok)
		assert.Contains(t, got, "Speaker Ada")
	})

	t.Run("missing session is dropped silently", func(t *testing.T) {
		_, _, _, cache, svc := newAnnouncementFixture()

		svc.RecomputeFeaturedSpeaker(ctx, "conf-missing", "sess-missing")

		_, ok, _ := cache.Get(ctx, domain.CacheKeyFeaturedSpeaker)
		require.False(t, ok)
	})
}

func TestAnnouncementService_GetCachedFacts(t *testing.T) {
	ctx := context.Background()

	_, _, _, cache, svc := newAnnouncementFixture()

	t.Run("empty when nothing published", func(t *testing.T) {
		msg, err := svc.GetAnnouncement(ctx)
		require.NoError(t, err)
		assert.Empty(t, msg)

		msg, err = svc.GetFeaturedSpeaker(ctx)
		require.NoError(t, err)
		assert.Empty(t, msg)
	})

	t.Run("returns published values", func(t *testing.T) {
		cache.data[domain.CacheKeyAnnouncements] = "hurry up"
		cache.data[domain.CacheKeyFeaturedSpeaker] = "Ada everywhere"

		msg, err := svc.GetAnnouncement(ctx)
		require.NoError(t, err)
		assert.Equal(t, "hurry up", msg)

		msg, err = svc.GetFeaturedSpeaker(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Ada everywhere", msg)
	})
}
