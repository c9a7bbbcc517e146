package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ShouwangH/garage-demo/internal/database"
	"github.com/ShouwangH/garage-demo/internal/logger"
)

// Postgres is a Store backed by the garage_kv table. Each key holds one
// jsonb document; writes are upserts.
type Postgres struct {
	db  *database.Database
	log *logger.Logger
}

// NewPostgres creates a Postgres-backed store.
func NewPostgres(db *database.Database, log *logger.Logger) *Postgres {
	return &Postgres{db: db, log: log}
}

// Get implements Store. A missing row or an undecodable document both
// report absent; only transport failures surface as errors.
func (p *Postgres) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	var raw []byte
	err := p.db.Pool.QueryRow(ctx,
		`SELECT value FROM garage_kv WHERE key = $1`, key,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// Malformed stored value degrades to the default, never an error.
		p.log.Warn("Discarding malformed stored value", map[string]interface{}{
			"key": key,
		})
		return false, nil
	}
	return true, nil
}

// Set implements Store.
func (p *Postgres) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %q: %w", key, err)
	}

	_, err = p.db.Pool.Exec(ctx, `
		INSERT INTO garage_kv (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, key, raw)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Ping implements Store.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

// Remove implements Store.
func (p *Postgres) Remove(ctx context.Context, key string) error {
	if _, err := p.db.Pool.Exec(ctx, `DELETE FROM garage_kv WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}
