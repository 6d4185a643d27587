package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRoundCoord(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		rawQuery       string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "rounds long value",
			rawQuery:       "value=1.23456&precision=2",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"value":1.23}`,
		},
		{
			name:           "short value unchanged",
			rawQuery:       "value=1.2&precision=5",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"value":1.2}`,
		},
		{
			name:           "missing value",
			rawQuery:       "precision=2",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid or missing 'value'"}`,
		},
		{
			name:           "missing precision",
			rawQuery:       "value=5",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid or missing 'precision'"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/round?"+tt.rawQuery, nil)

			RoundCoord(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestFormatAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "full record",
			body:           `{"city":"X","state":"Y","country":"Z","postcode":"100-0005"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"formatted":"X, Y, Z"}`,
		},
		{
			name:           "empty record",
			body:           `{}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"formatted":""}`,
		},
		{
			name:           "not json",
			body:           `city=X`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid address record"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/address/format", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			FormatAddress(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
