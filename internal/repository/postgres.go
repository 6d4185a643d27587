package repository

import (
	"context"
	"fmt"

	"mapkit-api/internal/marker"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository stores map markers in PostgreSQL/PostGIS
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const insertMarkerSQL = `
	INSERT INTO markers (id, map_id, color, draggable, geom, created_at)
	VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326)::geography, $7)
`

// InsertMarker persists a marker on the given map
func (r *Repository) InsertMarker(ctx context.Context, mapID string, m *marker.Marker) error {
	_, err := r.db.Exec(ctx, insertMarkerSQL, m.ID, mapID, m.Color, m.Draggable, m.LngLat.Lon, m.LngLat.Lat, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to insert marker: %w", err)
	}
	return nil
}

// BatchSender is satisfied by *pgx.Conn and *pgxpool.Pool.
type BatchSender interface {
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// PlacedMarker pairs a marker with the map it belongs to.
type PlacedMarker struct {
	MapID  string
	Marker *marker.Marker
}

// InsertMarkers persists many markers in a single round trip and returns how many were written.
func InsertMarkers(ctx context.Context, db BatchSender, markers []PlacedMarker) (int64, error) {
	batch := &pgx.Batch{}
	for _, pm := range markers {
		m := pm.Marker
		batch.Queue(insertMarkerSQL, m.ID, pm.MapID, m.Color, m.Draggable, m.LngLat.Lon, m.LngLat.Lat, m.CreatedAt)
	}

	results := db.SendBatch(ctx, batch)
	defer results.Close()

	var n int64
	for range markers {
		tag, err := results.Exec()
		if err != nil {
			return n, fmt.Errorf("repository: failed to insert marker batch: %w", err)
		}
		n += tag.RowsAffected()
	}
	return n, nil
}

// ListMarkers returns the markers of a map in the order they were placed
func (r *Repository) ListMarkers(ctx context.Context, mapID string) ([]*marker.Marker, error) {
	sql := `
		SELECT
			id::text,
			color,
			draggable,
			ST_X(geom::geometry) as longitude,
			ST_Y(geom::geometry) as latitude,
			created_at
		FROM markers
		WHERE map_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(ctx, sql, mapID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute marker query: %w", err)
	}

	markers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*marker.Marker, error) {
		var m marker.Marker
		err := row.Scan(
			&m.ID,
			&m.Color,
			&m.Draggable,
			&m.LngLat.Lon,
			&m.LngLat.Lat,
			&m.CreatedAt,
		)
		return &m, err
	})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to scan markers: %w", err)
	}

	return markers, nil
}

// Map returns the map instance identified by mapID, backed by this repository.
func (r *Repository) Map(mapID string) *MapLayer {
	return &MapLayer{repo: r, mapID: mapID}
}

// MapLayer is a marker.Map whose attached markers are persisted
type MapLayer struct {
	repo  *Repository
	mapID string
}

// AddMarker implements marker.Map.
func (l *MapLayer) AddMarker(ctx context.Context, m *marker.Marker) error {
	return l.repo.InsertMarker(ctx, l.mapID, m)
}

// Markers lists the markers attached to this map.
func (l *MapLayer) Markers(ctx context.Context) ([]*marker.Marker, error) {
	return l.repo.ListMarkers(ctx, l.mapID)
}
