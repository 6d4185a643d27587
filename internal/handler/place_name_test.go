package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"mapkit-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPlaceNameService is a mock implementation of the PlaceNameService interface
type MockPlaceNameService struct {
	mock.Mock
}

func (m *MockPlaceNameService) ReverseSearch(ctx context.Context, lat float64, lon float64) (string, error) {
	args := m.Called(ctx, lat, lon)
	return args.String(0), args.Error(1)
}

func TestPlaceNameHandler_PlaceName(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		lat            float64
		lon            float64
		mockName       string
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing query parameters",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "missing required query parameters 'lat' and 'lon'"},
		},
		{
			name:           "resolved place",
			lat:            35.681236,
			lon:            139.767125,
			mockName:       "Chiyoda, Tokyo, Japan",
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"place_name": "Chiyoda, Tokyo, Japan"},
		},
		{
			name:           "unresolved place",
			lat:            35.681236,
			lon:            139.767125,
			mockError:      fmt.Errorf("service: %w: boom", service.ErrPlaceNotResolved),
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]interface{}{"error": "could not resolve place name"},
		},
		{
			name:           "unexpected error",
			lat:            35.681236,
			lon:            139.767125,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockPlaceNameService)
			handler := NewPlaceNameHandler(mockSvc)

			if tt.lat != 0 && tt.lon != 0 {
				mockSvc.On("ReverseSearch", mock.Anything, tt.lat, tt.lon).Return(tt.mockName, tt.mockError)
			}

			// Create request
			req := httptest.NewRequest(http.MethodGet, "/place-name", nil)
			if tt.lat != 0 && tt.lon != 0 {
				q := req.URL.Query()
				q.Add("lat", strconv.FormatFloat(tt.lat, 'f', -1, 64))
				q.Add("lon", strconv.FormatFloat(tt.lon, 'f', -1, 64))
				req.URL.RawQuery = q.Encode()
			}
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.PlaceName(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestPlaceNameHandler_InvalidLatitude(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/place-name?lat=north&lon=1", nil)

	NewPlaceNameHandler(new(MockPlaceNameService)).PlaceName(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid latitude format"}`, w.Body.String())
}
