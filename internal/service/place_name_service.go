package service

import (
	"context"
	"errors"
	"fmt"

	"mapkit-api/internal/geofmt"
	"mapkit-api/internal/nominatim"
)

// ErrPlaceNotResolved is returned when a point cannot be turned into a place name.
var ErrPlaceNotResolved = errors.New("could not resolve place name")

// ReverseGeocoder interface for dependency injection
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (*nominatim.FeatureCollection, error)
}

// PlaceNameService resolves coordinates to a human-readable place name
type PlaceNameService struct {
	client ReverseGeocoder
}

// NewPlaceNameService creates a new place name service
func NewPlaceNameService(client ReverseGeocoder) *PlaceNameService {
	return &PlaceNameService{client: client}
}

// ReverseSearch returns the formatted address of the first feature found at the point.
// Every failure wraps ErrPlaceNotResolved.
func (s *PlaceNameService) ReverseSearch(ctx context.Context, lat, lon float64) (string, error) {
	fc, err := s.client.Reverse(ctx, lat, lon)
	if err != nil {
		return "", fmt.Errorf("service: %w: %w", ErrPlaceNotResolved, err)
	}
	if fc == nil || len(fc.Features) == 0 {
		return "", fmt.Errorf("service: %w: no features at %f,%f", ErrPlaceNotResolved, lat, lon)
	}

	props, err := fc.Features[0].Decode()
	if err != nil {
		return "", fmt.Errorf("service: %w: %w", ErrPlaceNotResolved, err)
	}

	return geofmt.FormatAddress(props.Address), nil
}
