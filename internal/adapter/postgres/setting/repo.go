// Package setting implements the key-value settings repository using PostgreSQL.
package setting

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/storylingo-backend/internal/adapter/postgres"
)

const upsertSQL = `
INSERT INTO settings (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value, updated_at = now()`

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new settings repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// Get returns the value stored under key.
// Returns domain.ErrNotFound if the key has never been set.
func (r *Repo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).
		Scan(&value)
	if err != nil {
		return "", postgres.MapError(err, "setting "+key, 0)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (r *Repo) Set(ctx context.Context, key, value string) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, upsertSQL, key, value); err != nil {
		return postgres.MapError(err, "setting "+key, 0)
	}
	return nil
}

// All returns every stored setting.
func (r *Repo) All(ctx context.Context) (map[string]string, error) {
	var rows []struct {
		Key   string `db:"key"`
		Value string `db:"value"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows,
		`SELECT key, value FROM settings ORDER BY key`); err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	out := make(map[string]string, len(rows))
	for _, rw := range rows {
		out[rw.Key] = rw.Value
	}
	return out, nil
}
