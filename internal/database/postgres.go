package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ShouwangH/garage-demo/internal/config"
)

// Database wraps the pgx connection pool.
type Database struct {
	Pool *pgxpool.Pool
}

// NewPostgresPool creates a PostgreSQL connection pool from the database
// configuration, verifies connectivity, and ensures the key-value schema
// exists.
func NewPostgresPool(ctx context.Context, cfg config.DatabaseConfig) (*Database, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Name,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MinConns = int32(cfg.PoolMin)
	poolConfig.MaxConns = int32(cfg.PoolMax)
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Second
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &Database{Pool: pool}
	if err := db.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return db, nil
}

// ensureSchema creates the key-value table used by the storage layer.
func (db *Database) ensureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS garage_kv (
			key        text PRIMARY KEY,
			value      jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)
	`
	if _, err := db.Pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure garage_kv schema: %w", err)
	}
	return nil
}

// Ping checks if the database connection is alive.
func (db *Database) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// Close gracefully closes the connection pool.
func (db *Database) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// Stats returns connection pool statistics for monitoring.
func (db *Database) Stats() *pgxpool.Stat {
	if db.Pool == nil {
		return nil
	}
	return db.Pool.Stat()
}
