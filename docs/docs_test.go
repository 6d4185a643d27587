package docs

import (
	"encoding/json"
	"testing"

	"mapkit-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestFeatureIDIsDocumentedAsNumber(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Definitions map[string]struct {
			Properties map[string]struct {
				Type string `json:"type"`
			} `json:"properties"`
		} `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "number", doc.Definitions["models.Feature"].Properties["id"].Type)

	// The wire format agrees with the published schema.
	b, err := json.Marshal(models.NewPlaceFeature("240109189", "Tokyo", models.Coordinate{}, nil))
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(b, &wire))
	assert.IsType(t, float64(0), wire["id"])
}
