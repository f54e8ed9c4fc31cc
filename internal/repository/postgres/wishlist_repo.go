package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

type wishlistRepository struct {
	DB *sql.DB
}

func NewWishlistRepository(db *sql.DB) domain.WishlistRepository {
	return &wishlistRepository{
		DB: db,
	}
}

// Add relies on the primary key for duplicate detection; a single-row
// insert needs no explicit transaction.
func (r *wishlistRepository) Add(ctx context.Context, profileID, sessionID string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO wishlist_entries (profile_id, session_id) VALUES ($1, $2)
	`, profileID, sessionID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return domain.ErrAlreadyInWishlist
	}
	return err
}

func (r *wishlistRepository) Remove(ctx context.Context, profileID, sessionID string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `
		DELETE FROM wishlist_entries WHERE profile_id = $1 AND session_id = $2
	`, profileID, sessionID)
	if err != nil {
		return false, err
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *wishlistRepository) ListSessionIDs(ctx context.Context, profileID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT session_id FROM wishlist_entries WHERE profile_id = $1 ORDER BY position
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
