// Package db provides PostgreSQL persistence for candidate profiles and scoring results.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema creates the tables the repository reads and writes
const schema = `
CREATE TABLE IF NOT EXISTS candidate_profiles (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL DEFAULT '',
	current_company TEXT NOT NULL DEFAULT '',
	completeness    DOUBLE PRECISION NOT NULL DEFAULT 0,
	content         JSONB NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL,
	last_updated    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS scoring_results (
	profile_id      TEXT PRIMARY KEY REFERENCES candidate_profiles(id) ON DELETE CASCADE,
	overall_score   DOUBLE PRECISION NOT NULL,
	confidence      DOUBLE PRECISION NOT NULL,
	content         JSONB NOT NULL,
	scored_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_candidate_profiles_last_updated ON candidate_profiles (last_updated);
`

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the profile and scoring tables when they do not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
