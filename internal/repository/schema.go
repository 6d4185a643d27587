package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is satisfied by *pgx.Conn and *pgxpool.Pool.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

const schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS markers (
		id UUID PRIMARY KEY,
		map_id VARCHAR(255) NOT NULL,
		color VARCHAR(32) NOT NULL,
		draggable BOOLEAN NOT NULL DEFAULT TRUE,
		geom GEOGRAPHY(POINT, 4326) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS markers_map_id_idx ON markers (map_id, created_at);
	CREATE INDEX IF NOT EXISTS markers_geom_idx ON markers USING GIST (geom);
`

// EnsureSchema creates the markers table and its indexes if they do not exist.
func EnsureSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}
