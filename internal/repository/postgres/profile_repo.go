package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

const profileColumns = `id, display_name, main_email, password_hash, salt, created_at, updated_at`

type profileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{
		DB: db,
	}
}

func (r *profileRepository) Create(ctx context.Context, p *domain.Profile) error {
	// Lazily created profiles arrive with the token subject as ID;
	// signed-up profiles get a generated one.
	if p.ID == "" {
		q := `
			INSERT INTO profiles (display_name, main_email, password_hash, salt, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		err := r.DB.QueryRowContext(ctx, q,
			p.DisplayName, p.MainEmail, p.PasswordHash, p.Salt, p.CreatedAt, p.UpdatedAt,
		).Scan(&p.ID)
		return translateProfileErr(err)
	}
	q := `
		INSERT INTO profiles (id, display_name, main_email, password_hash, salt, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, q,
		p.ID, p.DisplayName, p.MainEmail, p.PasswordHash, p.Salt, p.CreatedAt, p.UpdatedAt,
	)
	return translateProfileErr(err)
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	q := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return r.get(ctx, q, id)
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	q := `SELECT ` + profileColumns + ` FROM profiles WHERE main_email = $1`
	return r.get(ctx, q, email)
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	q := `
		UPDATE profiles SET display_name = $1, main_email = $2, updated_at = NOW()
		WHERE id = $3
	`
	result, err := r.DB.ExecContext(ctx, q, p.DisplayName, p.MainEmail, p.ID)
	if err != nil {
		return translateProfileErr(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) get(ctx context.Context, q string, arg any) (*domain.Profile, error) {
	p := &domain.Profile{}
	err := r.DB.QueryRowContext(ctx, q, arg).Scan(
		&p.ID, &p.DisplayName, &p.MainEmail, &p.PasswordHash, &p.Salt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func translateProfileErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return domain.ErrDuplicateEmail
	}
	return err
}
