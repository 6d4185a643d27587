package marker

import (
	"context"
	"testing"

	"mapkit-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMap is a mock implementation of the Map interface
type MockMap struct {
	mock.Mock
}

func (m *MockMap) AddMarker(ctx context.Context, mk *Marker) error {
	args := m.Called(ctx, mk)
	return args.Error(0)
}

func TestNew_NilMap(t *testing.T) {
	at := models.Coordinate{Lon: 139.767125, Lat: 35.681236}

	mk, err := New(context.Background(), at, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, mk.ID)
	assert.Equal(t, ThemeColor, mk.Color)
	assert.True(t, mk.Draggable)
	assert.Equal(t, at, mk.LngLat)
}

func TestNew_AttachesToMap(t *testing.T) {
	at := models.Coordinate{Lon: -0.1276, Lat: 51.5072}
	m := NewMemoryMap()

	mk, err := New(context.Background(), at, m)
	require.NoError(t, err)

	attached, err := m.Markers(context.Background())
	require.NoError(t, err)
	require.Len(t, attached, 1)
	assert.Same(t, mk, attached[0])
	assert.Equal(t, at, attached[0].LngLat)
}

func TestNew_FreshMarkerEachCall(t *testing.T) {
	at := models.Coordinate{Lon: 2.3522, Lat: 48.8566}

	first, err := New(context.Background(), at, nil)
	require.NoError(t, err)
	second, err := New(context.Background(), at, nil)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestNew_AttachError(t *testing.T) {
	m := new(MockMap)
	m.On("AddMarker", mock.Anything, mock.AnythingOfType("*marker.Marker")).Return(assert.AnError)

	mk, err := New(context.Background(), models.Coordinate{}, m)
	assert.Nil(t, mk)
	assert.ErrorIs(t, err, assert.AnError)
	m.AssertExpectations(t)
}

func TestMemoryStore_Map(t *testing.T) {
	s := NewMemoryStore()

	assert.Same(t, s.Map("a"), s.Map("a"))
	assert.NotSame(t, s.Map("a"), s.Map("b"))
}

func TestMemoryMap_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMemoryMap()
	_, err := New(ctx, models.Coordinate{}, m)
	assert.ErrorIs(t, err, context.Canceled)
	attached, err := m.Markers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, attached)
}
