package service

import (
	"context"

	"mapkit-api/internal/nominatim"

	"github.com/stretchr/testify/mock"
)

// MockGeocoder is a mock implementation of the Geocoder and ReverseGeocoder interfaces
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Search(ctx context.Context, query string) (*nominatim.FeatureCollection, error) {
	args := m.Called(ctx, query)
	fc, _ := args.Get(0).(*nominatim.FeatureCollection)
	return fc, args.Error(1)
}

func (m *MockGeocoder) Reverse(ctx context.Context, lat, lon float64) (*nominatim.FeatureCollection, error) {
	args := m.Called(ctx, lat, lon)
	fc, _ := args.Get(0).(*nominatim.FeatureCollection)
	return fc, args.Error(1)
}

func rawFeature(properties string, bbox ...float64) nominatim.Feature {
	return nominatim.Feature{
		Type:       "Feature",
		Properties: []byte(properties),
		Bbox:       bbox,
	}
}
