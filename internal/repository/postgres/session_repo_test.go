package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"conferencecentral/internal/domain"
	"conferencecentral/internal/query"
)

var sessionRows = []string{
	"id", "conference_id", "name", "highlights", "session_date",
	"start_time", "duration_mins", "session_type", "location",
	"created_at", "updated_at",
}

func sessionRow(id, name, startTime string) *sqlmock.Rows {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(sessionRows).
		AddRow(id, "conf-1", name, "{Default_Highlight}", nil, startTime, 60, "LECTURE", "Default Room", now, now)
}

func expectSpeakerAttach(mock sqlmock.Sqlmock, sessionIDs []string, rows *sqlmock.Rows) {
	mock.ExpectQuery(`SELECT session_id, speaker_id FROM session_speakers`).
		WithArgs(pq.Array(sessionIDs)).
		WillReturnRows(rows)
}

func TestSessionRepository_Create(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	sess := &domain.Session{
		ConferenceID: "conf-1",
		Name:         "Intro to Go",
		Highlights:   []string{"Default_Highlight"},
		SpeakerIDs:   []string{"spk-a", "spk-b"},
		StartTime:    "10:00",
		DurationMins: 60,
		Type:         domain.SessionTypeLecture,
		Location:     "Default Room",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO sessions \(conference_id, name, highlights, session_date,`).
		WithArgs("conf-1", "Intro to Go", pq.Array([]string{"Default_Highlight"}), nil,
			"10:00", 60, "LECTURE", "Default Room", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("sess-1"))
	mock.ExpectExec(`INSERT INTO session_speakers`).
		WithArgs("sess-1", "spk-a", 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO session_speakers`).
		WithArgs("sess-1", "spk-b", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewSessionRepository(db)
	err = repo.Create(ctx, sess)
	require.NoError(t, err)
	require.Equal(t, "sess-1", sess.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found with speakers", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM sessions WHERE conference_id = \$1 AND id = \$2`).
			WithArgs("conf-1", "sess-1").
			WillReturnRows(sessionRow("sess-1", "Intro to Go", "10:00"))
		expectSpeakerAttach(mock, []string{"sess-1"},
			sqlmock.NewRows([]string{"session_id", "speaker_id"}).
				AddRow("sess-1", "spk-a").
				AddRow("sess-1", "spk-b"))

		repo := NewSessionRepository(db)
		sess, err := repo.GetByID(ctx, "conf-1", "sess-1")
		require.NoError(t, err)
		require.Equal(t, []string{"spk-a", "spk-b"}, sess.SpeakerIDs)
		require.Equal(t, domain.SessionTypeLecture, sess.Type)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong conference scope", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM sessions WHERE conference_id = \$1 AND id = \$2`).
			WithArgs("conf-2", "sess-1").
			WillReturnRows(sqlmock.NewRows(sessionRows))

		repo := NewSessionRepository(db)
		_, err = repo.GetByID(ctx, "conf-2", "sess-1")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSessionRepository_Update_ReplacesSpeakers(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE sessions SET`).
		WithArgs("Intro to Go", pq.Array([]string{"Default_Highlight"}), nil, "11:00",
			45, "KEYNOTE", "Main Hall", "sess-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM session_speakers WHERE session_id = \$1`).
		WithArgs("sess-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO session_speakers`).
		WithArgs("sess-1", "spk-b", 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewSessionRepository(db)
	err = repo.Update(ctx, &domain.Session{
		ID:           "sess-1",
		Name:         "Intro to Go",
		Highlights:   []string{"Default_Highlight"},
		SpeakerIDs:   []string{"spk-b"},
		StartTime:    "11:00",
		DurationMins: 45,
		Type:         domain.SessionTypeKeynote,
		Location:     "Main Hall",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_QueryByPlan_ScopesToConference(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	plan, err := query.Compile(query.SessionFields, []query.Filter{
		{Field: "START_TIME", Operator: "LT", Value: "19:00"},
	})
	require.NoError(t, err)
	extra := []query.Condition{
		{Field: query.SessionFields["TYPE_OF_SESSION"], Op: query.OpEq, Value: "LECTURE"},
	}

	mock.ExpectQuery(`SELECT (.+) FROM sessions WHERE conference_id = \$1 AND start_time < \$2 AND session_type = \$3 ORDER BY start_time, name`).
		WithArgs("conf-1", "19:00", "LECTURE").
		WillReturnRows(sessionRow("sess-1", "Intro to Go", "10:00"))
	expectSpeakerAttach(mock, []string{"sess-1"},
		sqlmock.NewRows([]string{"session_id", "speaker_id"}))

	repo := NewSessionRepository(db)
	sessions, err := repo.QueryByPlan(ctx, "conf-1", plan, extra)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.Empty(t, sessions[0].SpeakerIDs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_ListBySpeakerID(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sessionRow("sess-1", "Talk One", "09:00")
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows.AddRow("sess-2", "conf-2", "Talk Two", "{Default_Highlight}", nil, "14:00", 30, "WORKSHOP", "Lab", now, now)

	mock.ExpectQuery(`SELECT (.+) FROM sessions WHERE id IN \(SELECT session_id FROM session_speakers WHERE speaker_id = \$1\)`).
		WithArgs("spk-a").
		WillReturnRows(rows)
	expectSpeakerAttach(mock, []string{"sess-1", "sess-2"},
		sqlmock.NewRows([]string{"session_id", "speaker_id"}).
			AddRow("sess-1", "spk-a").
			AddRow("sess-2", "spk-a"))

	repo := NewSessionRepository(db)
	sessions, err := repo.ListBySpeakerID(ctx, "spk-a")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, "conf-2", sessions[1].ConferenceID)
	require.NoError(t, mock.ExpectationsWereMet())
}
