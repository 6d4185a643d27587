// Package geofmt formats coordinates and address records for display.
package geofmt

import (
	"math"
	"strconv"
	"strings"
)

// RoundCoord rounds value to precision decimal places, but only when value
// carries more decimals than that. Values that are already short enough are
// returned unchanged so no false precision is introduced.
func RoundCoord(value float64, precision int) float64 {
	if precision < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	if decimals(value) <= precision {
		return value
	}

	// Half away from zero, so 2.5 becomes 3 and 0.125 becomes 0.13.
	shift := math.Pow(10, float64(precision))
	rounded := math.Round(value*shift) / shift
	if math.IsNaN(rounded) || math.IsInf(rounded, 0) {
		return value
	}
	return rounded
}

// decimals counts the fractional digits in the shortest decimal form of v.
func decimals(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}
