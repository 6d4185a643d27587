package nominatim

import (
	"bytes"
	"encoding/json"
	"fmt"

	"mapkit-api/internal/models"
)

// FeatureCollection is the GeoJSON document Nominatim returns for format=geojson.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single raw Nominatim result. Properties are kept raw so they
// can be passed through untouched and decoded into typed fields on demand.
type Feature struct {
	Type       string          `json:"type"`
	Properties json.RawMessage `json:"properties"`
	Bbox       []float64       `json:"bbox,omitempty"`
	Geometry   json.RawMessage `json:"geometry,omitempty"`
}

// Properties are the typed fields read from a feature's properties object.
type Properties struct {
	PlaceID     json.Number    `json:"place_id"`
	DisplayName string         `json:"display_name"`
	Address     models.Address `json:"address"`
}

// Decode returns the typed view of the feature's properties.
func (f Feature) Decode() (Properties, error) {
	var p Properties
	if len(f.Properties) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(f.Properties, &p); err != nil {
		return Properties{}, fmt.Errorf("nominatim: decode properties: %w", err)
	}
	return p, nil
}

// PropertyMap returns the feature's properties as a generic map.
// Numbers are kept as json.Number so place ids survive re-encoding intact.
func (f Feature) PropertyMap() (map[string]any, error) {
	props := map[string]any{}
	if len(f.Properties) == 0 {
		return props, nil
	}

	dec := json.NewDecoder(bytes.NewReader(f.Properties))
	dec.UseNumber()
	if err := dec.Decode(&props); err != nil {
		return nil, fmt.Errorf("nominatim: decode property map: %w", err)
	}
	return props, nil
}

// Corner returns the first corner of the feature's bounding box.
func (f Feature) Corner() (models.Coordinate, error) {
	if len(f.Bbox) < 2 {
		return models.Coordinate{}, fmt.Errorf("nominatim: feature has no bounding box")
	}
	return models.Coordinate{Lon: f.Bbox[0], Lat: f.Bbox[1]}, nil
}
