package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencecentral/internal/domain"
)

type speakerRepository struct {
	DB *sql.DB
}

func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{
		DB: db,
	}
}

func (r *speakerRepository) Create(ctx context.Context, s *domain.Speaker) error {
	q := `
		INSERT INTO speakers (owner_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, q, s.OwnerID, s.Name, s.CreatedAt, s.UpdatedAt).Scan(&s.ID)
}

func (r *speakerRepository) GetByID(ctx context.Context, id string) (*domain.Speaker, error) {
	q := `SELECT id, owner_id, name, created_at, updated_at FROM speakers WHERE id = $1`
	s := &domain.Speaker{}
	err := r.DB.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.OwnerID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *speakerRepository) Update(ctx context.Context, s *domain.Speaker) error {
	q := `UPDATE speakers SET name = $1, updated_at = NOW() WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, q, s.Name, s.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *speakerRepository) List(ctx context.Context) ([]*domain.Speaker, error) {
	q := `SELECT id, owner_id, name, created_at, updated_at FROM speakers ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	speakers := make([]*domain.Speaker, 0)
	for rows.Next() {
		s := &domain.Speaker{}
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		speakers = append(speakers, s)
	}
	return speakers, rows.Err()
}
