package geofmt

import (
	"strings"

	"mapkit-api/internal/models"
)

// FormatAddress renders an address as "settlement, region, country".
// Each part takes the first non-empty field of its tier; missing tiers are skipped.
func FormatAddress(a models.Address) string {
	parts := make([]string, 0, 3)

	tiers := [][]string{
		{a.Municipality, a.City, a.Town, a.Village},
		{a.Region, a.State, a.County},
		{a.Country},
	}
	for _, tier := range tiers {
		if v := firstPresent(tier...); v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, ", ")
}

func firstPresent(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
