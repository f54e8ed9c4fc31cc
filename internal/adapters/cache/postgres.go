// Package cache provides distributed-cache adapters for published derived
// facts. The cache is process-external shared state: multiple service
// instances read and write the same keys.
package cache

import (
	"context"
	"database/sql"
	"errors"

	"conferencecentral/internal/domain"
)

type postgresCache struct {
	DB *sql.DB
}

// NewPostgresCache returns a Cache backed by the cache_entries table.
func NewPostgresCache(db *sql.DB) domain.Cache {
	return &postgresCache{
		DB: db,
	}
}

func (c *postgresCache) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := c.DB.QueryRowContext(ctx, `
		SELECT value FROM cache_entries WHERE key = $1
	`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (c *postgresCache) Set(ctx context.Context, key, value string) error {
	_, err := c.DB.ExecContext(ctx, `
		INSERT INTO cache_entries (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, value)
	return err
}

func (c *postgresCache) Delete(ctx context.Context, key string) error {
	_, err := c.DB.ExecContext(ctx, `DELETE FROM cache_entries WHERE key = $1`, key)
	return err
}
