// Package marker creates draggable map markers and attaches them to maps.
package marker

import (
	"context"
	"fmt"
	"time"

	"mapkit-api/internal/models"

	"github.com/google/uuid"
)

// ThemeColor is the fill color every marker is created with.
const ThemeColor = "#e5732f"

// Marker is a handle to a visual marker placed on a map.
type Marker struct {
	ID        string            `json:"id"`
	Color     string            `json:"color"`
	Draggable bool              `json:"draggable"`
	LngLat    models.Coordinate `json:"lnglat"`
	CreatedAt time.Time         `json:"created_at"`
}

// Map is a map instance markers can be attached to.
type Map interface {
	AddMarker(ctx context.Context, m *Marker) error
}

// New creates a themed, draggable marker at coord and attaches it to m.
// A nil m is valid: the marker is returned detached.
func New(ctx context.Context, coord models.Coordinate, m Map) (*Marker, error) {
	mk := &Marker{
		ID:        uuid.NewString(),
		Color:     ThemeColor,
		Draggable: true,
		LngLat:    coord,
		CreatedAt: time.Now().UTC(),
	}

	if m == nil {
		return mk, nil
	}
	if err := m.AddMarker(ctx, mk); err != nil {
		return nil, fmt.Errorf("marker: attach to map: %w", err)
	}
	return mk, nil
}
