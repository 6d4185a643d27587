package service

import (
	"context"
	"fmt"

	"mapkit-api/internal/models"
	"mapkit-api/internal/nominatim"

	"github.com/rs/zerolog"
)

// ForwardConfig is the request a map search widget sends for text search.
type ForwardConfig struct {
	Query string `json:"query"`
}

// ReverseConfig is the request a map search widget sends for point search.
// Query holds [lon, lat].
type ReverseConfig struct {
	Query []float64 `json:"query"`
}

// Geocoder interface for dependency injection
type Geocoder interface {
	Search(ctx context.Context, query string) (*nominatim.FeatureCollection, error)
	Reverse(ctx context.Context, lat, lon float64) (*nominatim.FeatureCollection, error)
}

// GeocoderAdapter exposes forward and reverse geocoding to map search widgets.
// The widget contract has no error channel, so both operations log failures
// and answer with an empty collection.
type GeocoderAdapter struct {
	client Geocoder
	logger zerolog.Logger
}

// NewGeocoderAdapter creates a new geocoder adapter
func NewGeocoderAdapter(client Geocoder, logger zerolog.Logger) *GeocoderAdapter {
	return &GeocoderAdapter{
		client: client,
		logger: logger.With().Str("component", "geocoder_adapter").Logger(),
	}
}

// ForwardGeocode searches for places matching cfg.Query.
func (a *GeocoderAdapter) ForwardGeocode(ctx context.Context, cfg ForwardConfig) models.FeatureCollection {
	fc, err := a.forward(ctx, cfg.Query)
	if err != nil {
		a.logger.Error().Err(err).Str("query", cfg.Query).Msg("forward geocode failed")
		return models.EmptyFeatureCollection()
	}
	return fc
}

// ReverseGeocode searches for places at the [lon, lat] point in cfg.Query.
func (a *GeocoderAdapter) ReverseGeocode(ctx context.Context, cfg ReverseConfig) models.FeatureCollection {
	if len(cfg.Query) != 2 {
		return models.EmptyFeatureCollection()
	}

	fc, err := a.reverse(ctx, models.Coordinate{Lon: cfg.Query[0], Lat: cfg.Query[1]})
	if err != nil {
		a.logger.Error().Err(err).Floats64("query", cfg.Query).Msg("reverse geocode failed")
		return models.EmptyFeatureCollection()
	}
	return fc
}

// forward places each result at the first corner of its bounding box.
func (a *GeocoderAdapter) forward(ctx context.Context, query string) (models.FeatureCollection, error) {
	raw, err := a.client.Search(ctx, query)
	if err != nil {
		return models.FeatureCollection{}, fmt.Errorf("service: search %q: %w", query, err)
	}

	return mapFeatures(raw, func(f nominatim.Feature) (models.Coordinate, error) {
		return f.Corner()
	})
}

// reverse places each result at the requested point, not the one Nominatim reports.
func (a *GeocoderAdapter) reverse(ctx context.Context, at models.Coordinate) (models.FeatureCollection, error) {
	raw, err := a.client.Reverse(ctx, at.Lat, at.Lon)
	if err != nil {
		return models.FeatureCollection{}, fmt.Errorf("service: reverse %v: %w", at.List(), err)
	}

	return mapFeatures(raw, func(nominatim.Feature) (models.Coordinate, error) {
		return at, nil
	})
}

func mapFeatures(
	raw *nominatim.FeatureCollection,
	position func(nominatim.Feature) (models.Coordinate, error),
) (models.FeatureCollection, error) {
	out := models.EmptyFeatureCollection()
	if raw == nil {
		return out, nil
	}

	for i, f := range raw.Features {
		props, err := f.Decode()
		if err != nil {
			return models.FeatureCollection{}, fmt.Errorf("service: feature %d: %w", i, err)
		}
		passthrough, err := f.PropertyMap()
		if err != nil {
			return models.FeatureCollection{}, fmt.Errorf("service: feature %d: %w", i, err)
		}
		at, err := position(f)
		if err != nil {
			return models.FeatureCollection{}, fmt.Errorf("service: feature %d: %w", i, err)
		}

		out.Features = append(out.Features, models.NewPlaceFeature(props.PlaceID, props.DisplayName, at, passthrough))
	}

	return out, nil
}
