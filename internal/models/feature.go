package models

import "encoding/json"

const (
	TypeFeatureCollection = "FeatureCollection"
	TypeFeature           = "Feature"
	TypePoint             = "Point"

	// PlaceTypePlace is the only place type the geocoder adapter emits.
	PlaceTypePlace = "place"
)

// Geometry is a GeoJSON point geometry.
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [Lon, Lat]
}

// Feature is a geocoding result in the shape map search widgets consume.
type Feature struct {
	ID         json.Number    `json:"id" swaggertype:"number"`
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	PlaceName  string         `json:"place_name"`
	Properties map[string]any `json:"properties"`
	PlaceType  []string       `json:"place_type"`
	Text       string         `json:"text"`
}

// FeatureCollection is an ordered group of features.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// EmptyFeatureCollection returns a well-formed collection with no features.
// Features is a non-nil slice so it encodes as [] rather than null.
func EmptyFeatureCollection() FeatureCollection {
	return FeatureCollection{
		Type:     TypeFeatureCollection,
		Features: []Feature{},
	}
}

// NewPlaceFeature builds a point feature tagged with the "place" place type.
func NewPlaceFeature(id json.Number, displayName string, at Coordinate, properties map[string]any) Feature {
	return Feature{
		ID:   id,
		Type: TypeFeature,
		Geometry: Geometry{
			Type:        TypePoint,
			Coordinates: at.List(),
		},
		PlaceName:  displayName,
		Properties: properties,
		PlaceType:  []string{PlaceTypePlace},
		Text:       displayName,
	}
}
