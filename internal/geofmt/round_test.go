package geofmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCoord(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
		expected  float64
	}{
		{
			name:      "more decimals than precision",
			value:     1.23456,
			precision: 2,
			expected:  1.23,
		},
		{
			name:      "rounds up above the midpoint",
			value:     139.7671259,
			precision: 6,
			expected:  139.767126,
		},
		{
			name:      "tie rounds up to integer",
			value:     2.5,
			precision: 0,
			expected:  3,
		},
		{
			name:      "tie rounds up at two decimals",
			value:     0.125,
			precision: 2,
			expected:  0.13,
		},
		{
			name:      "negative tie rounds away from zero",
			value:     -73.5,
			precision: 0,
			expected:  -74,
		},
		{
			name:      "fewer decimals than precision",
			value:     1.2,
			precision: 5,
			expected:  1.2,
		},
		{
			name:      "exactly precision decimals",
			value:     35.68,
			precision: 2,
			expected:  35.68,
		},
		{
			name:      "integer unchanged",
			value:     5,
			precision: 2,
			expected:  5,
		},
		{
			name:      "negative coordinate",
			value:     -73.985656,
			precision: 3,
			expected:  -73.986,
		},
		{
			name:      "zero precision",
			value:     12.7,
			precision: 0,
			expected:  13,
		},
		{
			name:      "negative precision unchanged",
			value:     12.345,
			precision: -1,
			expected:  12.345,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundCoord(tt.value, tt.precision))
		})
	}
}

func TestRoundCoord_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(RoundCoord(math.NaN(), 2)))
	assert.True(t, math.IsInf(RoundCoord(math.Inf(1), 2), 1))
}
