package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"conferencecentral/internal/domain"
	"conferencecentral/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeConferenceRepo is an in-memory ConferenceRepository for tests.
type fakeConferenceRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.Conference
	nextID    int
	createErr error
	updateErr error
	lastPlan  *query.Plan
}

func newFakeConferenceRepo() *fakeConferenceRepo {
	return &fakeConferenceRepo{byID: make(map[string]*domain.Conference), nextID: 1}
}

func (f *fakeConferenceRepo) Create(ctx context.Context, conf *domain.Conference) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	conf.ID = fmt.Sprintf("conf-%d", f.nextID)
	f.nextID++
	f.byID[conf.ID] = conf
	return nil
}

func (f *fakeConferenceRepo) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeConferenceRepo) Update(ctx context.Context, conf *domain.Conference) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[conf.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[conf.ID] = conf
	return nil
}

func (f *fakeConferenceRepo) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.Conference{}
	for _, c := range f.byID {
		if c.OrganizerID == organizerID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeConferenceRepo) ListByIDs(ctx context.Context, ids []string) ([]*domain.Conference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.Conference{}
	for _, id := range ids {
		if c, ok := f.byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeConferenceRepo) QueryByPlan(ctx context.Context, plan *query.Plan) ([]*domain.Conference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPlan = plan
	out := []*domain.Conference{}
	for _, c := range f.byID {
		if conferenceMatches(c, plan.Conditions) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeConferenceRepo) ListNearlySoldOut(ctx context.Context, threshold int) ([]*domain.Conference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.Conference{}
	for _, c := range f.byID {
		if c.SeatsAvailable > 0 && c.SeatsAvailable <= threshold {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func conferenceMatches(c *domain.Conference, conds []query.Condition) bool {
	for _, cond := range conds {
		var ok bool
		switch cond.Field.Column {
		case "city":
			ok = compareStrings(c.City, cond.Op, cond.Value.(string))
		case "topics":
			ok = false
			for _, t := range c.Topics {
				if t == cond.Value.(string) {
					ok = true
					break
				}
			}
		case "month":
			ok = compareInts(c.Month, cond.Op, cond.Value.(int))
		case "max_attendees":
			ok = compareInts(c.MaxAttendees, cond.Op, cond.Value.(int))
		}
		if !ok {
			return false
		}
	}
	return true
}

func compareStrings(got string, op query.Operator, want string) bool {
	switch op {
	case query.OpEq:
		return got == want
	case query.OpGt:
		return got > want
	case query.OpGtEq:
		return got >= want
	case query.OpLt:
		return got < want
	case query.OpLtEq:
		return got <= want
	case query.OpNe:
		return got != want
	}
	return false
}

func compareInts(got int, op query.Operator, want int) bool {
	switch op {
	case query.OpEq:
		return got == want
	case query.OpGt:
		return got > want
	case query.OpGtEq:
		return got >= want
	case query.OpLt:
		return got < want
	case query.OpLtEq:
		return got <= want
	case query.OpNe:
		return got != want
	}
	return false
}

// fakeProfileRepo is an in-memory ProfileRepository for tests.
type fakeProfileRepo struct {
	byID      map[string]*domain.Profile
	nextID    int
	createErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byID: make(map[string]*domain.Profile), nextID: 1}
}

func (f *fakeProfileRepo) addProfile(id, email string) {
	f.byID[id] = &domain.Profile{ID: id, MainEmail: email}
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, p := range f.byID {
		if profile.MainEmail != "" && p.MainEmail == profile.MainEmail {
			return domain.ErrDuplicateEmail
		}
	}
	if profile.ID == "" {
		profile.ID = fmt.Sprintf("prof-%d", f.nextID)
		f.nextID++
	}
	f.byID[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	for _, p := range f.byID {
		if p.MainEmail == email {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	if _, ok := f.byID[profile.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[profile.ID] = profile
	return nil
}

// enqueued is one recorded task dispatch.
type enqueued struct {
	task   string
	params map[string]string
}

// fakeTaskQueue records dispatched tasks.
type fakeTaskQueue struct {
	mu         sync.Mutex
	tasks      []enqueued
	enqueueErr error
}

func (f *fakeTaskQueue) Enqueue(ctx context.Context, task string, params map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.enqueueErr != nil {
		return f.enqueueErr
	}
	f.tasks = append(f.tasks, enqueued{task: task, params: params})
	return nil
}

func (f *fakeTaskQueue) recorded() []enqueued {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]enqueued{}, f.tasks...)
}

func TestConferenceService_CreateConference(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second
	start := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func() (*fakeConferenceRepo, *fakeProfileRepo, *fakeTaskQueue)
		conf    *domain.Conference
		wantErr error
		assert  func(t *testing.T, conf *domain.Conference, tq *fakeTaskQueue)
	}{
		{
			name: "success applies defaults and derives month",
			setup: func() (*fakeConferenceRepo, *fakeProfileRepo, *fakeTaskQueue) {
				pr := newFakeProfileRepo()
				pr.addProfile("user-1", "organizer@example.com")
				return newFakeConferenceRepo(), pr, &fakeTaskQueue{}
			},
			conf: &domain.Conference{Name: "GopherCon", StartDate: &start, MaxAttendees: 100},
			assert: func(t *testing.T, conf *domain.Conference, tq *fakeTaskQueue) {
				require.NotEmpty(t, conf.ID)
				assert.Equal(t, "Default City", conf.City)
				assert.Equal(t, []string{"Default_Topic"}, conf.Topics)
				assert.Equal(t, 6, conf.Month)
				assert.Equal(t, 100, conf.SeatsAvailable)
				assert.Equal(t, "user-1", conf.OrganizerID)

				tasks := tq.recorded()
				require.Len(t, tasks, 1)
				assert.Equal(t, domain.TaskSendConfirmationEmail, tasks[0].task)
				assert.Equal(t, "organizer@example.com", tasks[0].params[domain.TaskParamEmail])
				assert.Equal(t, "GopherCon", tasks[0].params[domain.TaskParamConferenceName])
			},
		},
		{
			name: "no start date means month zero",
			setup: func() (*fakeConferenceRepo, *fakeProfileRepo, *fakeTaskQueue) {
				pr := newFakeProfileRepo()
				pr.addProfile("user-1", "organizer@example.com")
				return newFakeConferenceRepo(), pr, &fakeTaskQueue{}
			},
			conf: &domain.Conference{Name: "GopherCon"},
			assert: func(t *testing.T, conf *domain.Conference, _ *fakeTaskQueue) {
				assert.Equal(t, 0, conf.Month)
				assert.Equal(t, 0, conf.SeatsAvailable)
			},
		},
		{
			name: "missing name",
			setup: func() (*fakeConferenceRepo, *fakeProfileRepo, *fakeTaskQueue) {
				return newFakeConferenceRepo(), newFakeProfileRepo(), &fakeTaskQueue{}
			},
			conf:    &domain.Conference{},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "negative max attendees",
			setup: func() (*fakeConferenceRepo, *fakeProfileRepo, *fakeTaskQueue) {
				return newFakeConferenceRepo(), newFakeProfileRepo(), &fakeTaskQueue{}
			},
			conf:    &domain.Conference{Name: "GopherCon", MaxAttendees: -1},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "profile without email skips confirmation mail",
			setup: func() (*fakeConferenceRepo, *fakeProfileRepo, *fakeTaskQueue) {
				pr := newFakeProfileRepo()
				pr.addProfile("user-1", "")
				return newFakeConferenceRepo(), pr, &fakeTaskQueue{}
			},
			conf: &domain.Conference{Name: "GopherCon"},
			assert: func(t *testing.T, conf *domain.Conference, tq *fakeTaskQueue) {
				require.NotEmpty(t, conf.ID)
				assert.Empty(t, tq.recorded())
			},
		},
		{
			name: "queue failure does not fail the request",
			setup: func() (*fakeConferenceRepo, *fakeProfileRepo, *fakeTaskQueue) {
				pr := newFakeProfileRepo()
				pr.addProfile("user-1", "organizer@example.com")
				return newFakeConferenceRepo(), pr, &fakeTaskQueue{enqueueErr: errors.New("queue down")}
			},
			conf: &domain.Conference{Name: "GopherCon"},
			assert: func(t *testing.T, conf *domain.Conference, _ *fakeTaskQueue) {
				require.NotEmpty(t, conf.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cr, pr, tq := tt.setup()
			svc := NewConferenceService(cr, pr, tq, testLogger(), timeout)
			got, err := svc.CreateConference(ctx, "user-1", tt.conf)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			if tt.assert != nil {
				tt.assert(t, got, tq)
			}
		})
	}
}

func TestConferenceService_UpdateConference(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	newConf := func(cr *fakeConferenceRepo, organizerID string, maxAttendees, seats int) *domain.Conference {
		conf := &domain.Conference{
			Name: "GopherCon", OrganizerID: organizerID, City: "Denver",
			MaxAttendees: maxAttendees, SeatsAvailable: seats,
		}
		_ = cr.Create(ctx, conf)
		return conf
	}

	t.Run("owner updates fields and month follows start date", func(t *testing.T) {
		cr := newFakeConferenceRepo()
		conf := newConf(cr, "user-1", 100, 100)
		svc := NewConferenceService(cr, newFakeProfileRepo(), &fakeTaskQueue{}, testLogger(), timeout)

		city := "Berlin"
		got, err := svc.UpdateConference(ctx, conf.ID, "user-1", &domain.ConferenceUpdate{
			City:      &city,
			StartDate: &start,
		})
		require.NoError(t, err)
		assert.Equal(t, "Berlin", got.City)
		assert.Equal(t, 9, got.Month)
	})

	t.Run("capacity change moves free seats by the delta", func(t *testing.T) {
		cr := newFakeConferenceRepo()
		conf := newConf(cr, "user-1", 100, 40) // 60 registered
		svc := NewConferenceService(cr, newFakeProfileRepo(), &fakeTaskQueue{}, testLogger(), timeout)

		max := 120
		got, err := svc.UpdateConference(ctx, conf.ID, "user-1", &domain.ConferenceUpdate{MaxAttendees: &max})
		require.NoError(t, err)
		assert.Equal(t, 120, got.MaxAttendees)
		assert.Equal(t, 60, got.SeatsAvailable)
	})

	t.Run("capacity cut below registered count clamps seats at zero", func(t *testing.T) {
		cr := newFakeConferenceRepo()
		conf := newConf(cr, "user-1", 100, 10) // 90 registered
		svc := NewConferenceService(cr, newFakeProfileRepo(), &fakeTaskQueue{}, testLogger(), timeout)

		max := 50
		got, err := svc.UpdateConference(ctx, conf.ID, "user-1", &domain.ConferenceUpdate{MaxAttendees: &max})
		require.NoError(t, err)
		assert.Equal(t, 50, got.MaxAttendees)
		assert.Equal(t, 0, got.SeatsAvailable)
	})

	t.Run("forbidden for non owner", func(t *testing.T) {
		cr := newFakeConferenceRepo()
		conf := newConf(cr, "user-1", 100, 100)
		svc := NewConferenceService(cr, newFakeProfileRepo(), &fakeTaskQueue{}, testLogger(), timeout)

		name := "Other"
		_, err := svc.UpdateConference(ctx, conf.ID, "user-2", &domain.ConferenceUpdate{Name: &name})
		require.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("not found", func(t *testing.T) {
		cr := newFakeConferenceRepo()
		svc := NewConferenceService(cr, newFakeProfileRepo(), &fakeTaskQueue{}, testLogger(), timeout)

		_, err := svc.UpdateConference(ctx, "conf-missing", "user-1", &domain.ConferenceUpdate{})
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("empty name rejected", func(t *testing.T) {
		cr := newFakeConferenceRepo()
		conf := newConf(cr, "user-1", 100, 100)
		svc := NewConferenceService(cr, newFakeProfileRepo(), &fakeTaskQueue{}, testLogger(), timeout)

		empty := ""
		_, err := svc.UpdateConference(ctx, conf.ID, "user-1", &domain.ConferenceUpdate{Name: &empty})
		require.True(t, errors.Is(err, domain.ErrInvalidInput))
	})
}

func TestConferenceService_QueryConferences(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	seed := func(cr *fakeConferenceRepo) {
		_ = cr.Create(ctx, &domain.Conference{Name: "AlpsConf", City: "Zurich", Month: 6, MaxAttendees: 50, Topics: []string{"Go"}})
		_ = cr.Create(ctx, &domain.Conference{Name: "BeachConf", City: "Lisbon", Month: 8, MaxAttendees: 200, Topics: []string{"Go", "Cloud"}})
		_ = cr.Create(ctx, &domain.Conference{Name: "CityConf", City: "Lisbon", Month: 2, MaxAttendees: 500, Topics: []string{"Web"}})
	}

	t.Run("equality and inequality combine", func(t *testing.T) {
		cr := newFakeConferenceRepo()
		seed(cr)
		svc := NewConferenceService(cr, newFakeProfileRepo(), &fakeTaskQueue{}, testLogger(), timeout)

		got, err := svc.QueryConferences(ctx, []query.Filter{
			{Field: "CITY", Operator: "EQ", Value: "Lisbon"},
			{Field: "MAX_ATTENDEES", Operator: "GT", Value: "100"},
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "BeachConf", got[0].Name)
		assert.Equal(t, "CityConf", got[1].Name)
	})

	t.Run("topic equality means membership", func(t *testing.T) {
		cr := newFakeConferenceRepo()
		seed(cr)
		svc := NewConferenceService(cr, newFakeProfileRepo(), &fakeTaskQueue{}, testLogger(), timeout)

		got, err := svc.QueryConferences(ctx, []query.Filter{
			{Field: "TOPIC", Operator: "EQ", Value: "Go"},
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("empty filter set returns everything", func(t *testing.T) {
		cr := newFakeConferenceRepo()
		seed(cr)
		svc := NewConferenceService(cr, newFakeProfileRepo(), &fakeTaskQueue{}, testLogger(), timeout)

		got, err := svc.QueryConferences(ctx, nil)
		require.NoError(t, err)
		require.Len(t, got, 3)
	})

	t.Run("compile failure maps to invalid input", func(t *testing.T) {
		cr := newFakeConferenceRepo()
		svc := NewConferenceService(cr, newFakeProfileRepo(), &fakeTaskQueue{}, testLogger(), timeout)

		_, err := svc.QueryConferences(ctx, []query.Filter{
			{Field: "CITY", Operator: "GT", Value: "A"},
			{Field: "MONTH", Operator: "LT", Value: "6"},
		})
		require.True(t, errors.Is(err, domain.ErrInvalidInput))
	})
}

func TestConferenceService_ListConferencesCreated(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	cr := newFakeConferenceRepo()
	_ = cr.Create(ctx, &domain.Conference{Name: "Mine A", OrganizerID: "user-1"})
	_ = cr.Create(ctx, &domain.Conference{Name: "Mine B", OrganizerID: "user-1"})
	_ = cr.Create(ctx, &domain.Conference{Name: "Theirs", OrganizerID: "user-2"})
	svc := NewConferenceService(cr, newFakeProfileRepo(), &fakeTaskQueue{}, testLogger(), timeout)

	got, err := svc.ListConferencesCreated(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, c := range got {
		assert.Equal(t, "user-1", c.OrganizerID)
	}
}
