package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
	"conferencecentral/internal/query"
)

const sessionColumns = `id, conference_id, name, highlights, session_date,
		start_time, duration_mins, session_type, location, created_at, updated_at`

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{
		DB: db,
	}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	q := `
		INSERT INTO sessions (conference_id, name, highlights, session_date,
			start_time, duration_mins, session_type, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, q,
		s.ConferenceID, s.Name, pq.Array(s.Highlights), s.Date,
		s.StartTime, s.DurationMins, string(s.Type), s.Location,
		s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return err
	}
	if err := replaceSessionSpeakers(ctx, tx, s.ID, s.SpeakerIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *sessionRepository) GetByID(ctx context.Context, conferenceID, sessionID string) (*domain.Session, error) {
	q := fmt.Sprintf(`SELECT %s FROM sessions WHERE conference_id = $1 AND id = $2`, sessionColumns)
	s, err := scanSession(r.DB.QueryRowContext(ctx, q, conferenceID, sessionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.attachSpeakers(ctx, []*domain.Session{s}); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) Update(ctx context.Context, s *domain.Session) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	q := `
		UPDATE sessions SET
			name = $1, highlights = $2, session_date = $3, start_time = $4,
			duration_mins = $5, session_type = $6, location = $7, updated_at = NOW()
		WHERE id = $8
	`
	result, err := tx.ExecContext(ctx, q,
		s.Name, pq.Array(s.Highlights), s.Date, s.StartTime,
		s.DurationMins, string(s.Type), s.Location, s.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM session_speakers WHERE session_id = $1`, s.ID); err != nil {
		return err
	}
	if err := replaceSessionSpeakers(ctx, tx, s.ID, s.SpeakerIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *sessionRepository) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	q := fmt.Sprintf(`SELECT %s FROM sessions WHERE conference_id = $1 ORDER BY name`, sessionColumns)
	return r.list(ctx, q, conferenceID)
}

func (r *sessionRepository) ListBySpeakerID(ctx context.Context, speakerID string) ([]*domain.Session, error) {
	q := fmt.Sprintf(`
		SELECT %s FROM sessions
		WHERE id IN (SELECT session_id FROM session_speakers WHERE speaker_id = $1)
		ORDER BY name
	`, sessionColumns)
	return r.list(ctx, q, speakerID)
}

func (r *sessionRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Session, error) {
	if len(ids) == 0 {
		return []*domain.Session{}, nil
	}
	q := fmt.Sprintf(`SELECT %s FROM sessions WHERE id = ANY($1)`, sessionColumns)
	sessions, err := r.list(ctx, q, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	// Preserve the caller's ordering (wishlists are insertion-ordered).
	byID := make(map[string]*domain.Session, len(sessions))
	for _, s := range sessions {
		byID[s.ID] = s
	}
	ordered := make([]*domain.Session, 0, len(sessions))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			ordered = append(ordered, s)
		}
	}
	return ordered, nil
}

func (r *sessionRepository) QueryByPlan(ctx context.Context, conferenceID string, plan *query.Plan, extra []query.Condition) ([]*domain.Session, error) {
	clauses, args := planSQL(plan, extra, 2)
	q := fmt.Sprintf(`SELECT %s FROM sessions WHERE conference_id = $1`, sessionColumns)
	if len(clauses) > 0 {
		q += " AND " + strings.Join(clauses, " AND ")
	}
	q += " " + orderSQL(plan)
	return r.list(ctx, q, append([]any{conferenceID}, args...)...)
}

func (r *sessionRepository) list(ctx context.Context, q string, args ...any) ([]*domain.Session, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachSpeakers(ctx, sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) attachSpeakers(ctx context.Context, sessions []*domain.Session) error {
	if len(sessions) == 0 {
		return nil
	}
	ids := make([]string, 0, len(sessions))
	byID := make(map[string]*domain.Session, len(sessions))
	for _, s := range sessions {
		s.SpeakerIDs = []string{}
		ids = append(ids, s.ID)
		byID[s.ID] = s
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT session_id, speaker_id FROM session_speakers
		WHERE session_id = ANY($1)
		ORDER BY session_id, position
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var sessionID, speakerID string
		if err := rows.Scan(&sessionID, &speakerID); err != nil {
			return err
		}
		if s, ok := byID[sessionID]; ok {
			s.SpeakerIDs = append(s.SpeakerIDs, speakerID)
		}
	}
	return rows.Err()
}

func replaceSessionSpeakers(ctx context.Context, tx *sql.Tx, sessionID string, speakerIDs []string) error {
	for i, speakerID := range speakerIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO session_speakers (session_id, speaker_id, position)
			VALUES ($1, $2, $3)
		`, sessionID, speakerID, i)
		if err != nil {
			return err
		}
	}
	return nil
}

func scanSession(row rowScanner) (*domain.Session, error) {
	s := &domain.Session{}
	var highlights pq.StringArray
	var dateNull sql.NullTime
	var sessionType string
	err := row.Scan(
		&s.ID, &s.ConferenceID, &s.Name, &highlights, &dateNull,
		&s.StartTime, &s.DurationMins, &sessionType, &s.Location,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Highlights = highlights
	s.Type = domain.SessionType(sessionType)
	if dateNull.Valid {
		s.Date = &dateNull.Time
	}
	return s, nil
}
