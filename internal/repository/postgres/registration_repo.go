package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

// maxTxAttempts bounds the retry budget for transient contention on the
// registration transaction before ErrStoreUnavailable is surfaced.
const maxTxAttempts = 3

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Register runs the membership insert and the seat decrement as one
// transaction: the pair (membership, seat count) is never observable in a
// half-applied state.
func (r *registrationRepository) Register(ctx context.Context, profileID, conferenceID string) error {
	return r.withRetry(ctx, func(tx *sql.Tx) error {
		var seats int
		err := tx.QueryRowContext(ctx, `
			SELECT seats_available FROM conferences WHERE id = $1 FOR UPDATE
		`, conferenceID).Scan(&seats)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return err
		}

		var registered bool
		err = tx.QueryRowContext(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM registrations WHERE profile_id = $1 AND conference_id = $2
			)
		`, profileID, conferenceID).Scan(&registered)
		if err != nil {
			return err
		}
		if registered {
			return domain.ErrAlreadyRegistered
		}
		if seats <= 0 {
			return domain.ErrNoSeatsAvailable
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO registrations (profile_id, conference_id) VALUES ($1, $2)
		`, profileID, conferenceID); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE conferences SET seats_available = seats_available - 1, updated_at = NOW()
			WHERE id = $1
		`, conferenceID)
		return err
	})
}

func (r *registrationRepository) Unregister(ctx context.Context, profileID, conferenceID string) (bool, error) {
	removed := false
	err := r.withRetry(ctx, func(tx *sql.Tx) error {
		removed = false
		result, err := tx.ExecContext(ctx, `
			DELETE FROM registrations WHERE profile_id = $1 AND conference_id = $2
		`, profileID, conferenceID)
		if err != nil {
			return err
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			// Not a member: idempotent no-op, nothing to give back.
			return nil
		}
		// LEAST keeps the give-back inside the seats bound when the owner
		// shrank max_attendees below the registered count.
		if _, err := tx.ExecContext(ctx, `
			UPDATE conferences SET seats_available = LEAST(seats_available + 1, max_attendees), updated_at = NOW()
			WHERE id = $1
		`, conferenceID); err != nil {
			return err
		}
		removed = true
		return nil
	})
	return removed, err
}

func (r *registrationRepository) ListConferenceIDs(ctx context.Context, profileID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT conference_id FROM registrations WHERE profile_id = $1 ORDER BY position
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

// withRetry executes fn inside a transaction, retrying on transient
// serialization or deadlock failures up to maxTxAttempts. Domain errors
// abort immediately.
func (r *registrationRepository) withRetry(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * 10 * time.Millisecond):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		err := r.runTx(ctx, fn)
		if err == nil {
			return nil
		}
		if !retryableTxErr(err) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, lastErr)
}

func (r *registrationRepository) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// retryableTxErr reports whether err is a transient contention failure
// worth another attempt (serialization failure or deadlock).
func retryableTxErr(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case "40001", "40P01":
		return true
	}
	return false
}
