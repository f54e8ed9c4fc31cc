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

const conferenceColumns = `id, organizer_id, name, description, topics, city,
		start_date, end_date, month, max_attendees, seats_available, created_at, updated_at`

type conferenceRepository struct {
	DB *sql.DB
}

func NewConferenceRepository(db *sql.DB) domain.ConferenceRepository {
	return &conferenceRepository{
		DB: db,
	}
}

func (r *conferenceRepository) Create(ctx context.Context, c *domain.Conference) error {
	q := `
		INSERT INTO conferences (organizer_id, name, description, topics, city,
			start_date, end_date, month, max_attendees, seats_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, q,
		c.OrganizerID, c.Name, c.Description, pq.Array(c.Topics), c.City,
		c.StartDate, c.EndDate, c.Month, c.MaxAttendees, c.SeatsAvailable,
		c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

func (r *conferenceRepository) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	q := fmt.Sprintf(`SELECT %s FROM conferences WHERE id = $1`, conferenceColumns)
	c, err := scanConference(r.DB.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *conferenceRepository) Update(ctx context.Context, c *domain.Conference) error {
	q := `
		UPDATE conferences SET
			name = $1, description = $2, topics = $3, city = $4,
			start_date = $5, end_date = $6, month = $7,
			max_attendees = $8, seats_available = $9, updated_at = NOW()
		WHERE id = $10
	`
	result, err := r.DB.ExecContext(ctx, q,
		c.Name, c.Description, pq.Array(c.Topics), c.City,
		c.StartDate, c.EndDate, c.Month, c.MaxAttendees, c.SeatsAvailable, c.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *conferenceRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	q := fmt.Sprintf(`SELECT %s FROM conferences WHERE organizer_id = $1 ORDER BY created_at DESC`, conferenceColumns)
	return r.list(ctx, q, organizerID)
}

func (r *conferenceRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Conference, error) {
	if len(ids) == 0 {
		return []*domain.Conference{}, nil
	}
	q := fmt.Sprintf(`SELECT %s FROM conferences WHERE id = ANY($1)`, conferenceColumns)
	confs, err := r.list(ctx, q, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	// Preserve the caller's ordering (attendance lists are insertion-ordered).
	byID := make(map[string]*domain.Conference, len(confs))
	for _, c := range confs {
		byID[c.ID] = c
	}
	ordered := make([]*domain.Conference, 0, len(confs))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return ordered, nil
}

func (r *conferenceRepository) QueryByPlan(ctx context.Context, plan *query.Plan) ([]*domain.Conference, error) {
	clauses, args := planSQL(plan, nil, 1)
	q := fmt.Sprintf(`SELECT %s FROM conferences`, conferenceColumns)
	if len(clauses) > 0 {
		q += " WHERE " + strings.Join(clauses, " AND ")
	}
	q += " " + orderSQL(plan)
	return r.list(ctx, q, args...)
}

func (r *conferenceRepository) ListNearlySoldOut(ctx context.Context, threshold int) ([]*domain.Conference, error) {
	q := fmt.Sprintf(`
		SELECT %s FROM conferences
		WHERE seats_available > 0 AND seats_available <= $1
		ORDER BY name
	`, conferenceColumns)
	return r.list(ctx, q, threshold)
}

func (r *conferenceRepository) list(ctx context.Context, q string, args ...any) ([]*domain.Conference, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	confs := make([]*domain.Conference, 0)
	for rows.Next() {
		c, err := scanConference(rows)
		if err != nil {
			return nil, err
		}
		confs = append(confs, c)
	}
	return confs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConference(row rowScanner) (*domain.Conference, error) {
	c := &domain.Conference{}
	var topics pq.StringArray
	var startNull, endNull sql.NullTime
	err := row.Scan(
		&c.ID, &c.OrganizerID, &c.Name, &c.Description, &topics, &c.City,
		&startNull, &endNull, &c.Month, &c.MaxAttendees, &c.SeatsAvailable,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Topics = topics
	if startNull.Valid {
		c.StartDate = &startNull.Time
	}
	if endNull.Valid {
		c.EndDate = &endNull.Time
	}
	return c, nil
}
