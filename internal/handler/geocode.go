package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"mapkit-api/internal/models"
	"mapkit-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GeocoderService interface for dependency injection
type GeocoderService interface {
	ForwardGeocode(context.Context, service.ForwardConfig) models.FeatureCollection
	ReverseGeocode(context.Context, service.ReverseConfig) models.FeatureCollection
}

// GeoCodeHandler serves the map search widget endpoints
type GeoCodeHandler struct {
	service GeocoderService
}

// NewGeoCodeHandler creates a new geocode handler
func NewGeoCodeHandler(svc GeocoderService) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode handles GET /geocode requests
//
//	@Summary	Forward geocoding
//	@Tags		geocoding
//	@Produce	json
//	@Param		q	query		string	true	"Free-text place query"
//	@Success	200	{object}	models.FeatureCollection
//	@Failure	400	{object}	map[string]string
//	@Router		/geocode [get]
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	c.JSON(http.StatusOK, h.service.ForwardGeocode(c.Request.Context(), service.ForwardConfig{Query: query}))
}

// ReverseGeocode handles GET /reverse-geocode requests.
// The query parameter is "lon,lat"; any other arity yields an empty collection.
//
//	@Summary	Reverse geocoding
//	@Tags		geocoding
//	@Produce	json
//	@Param		query	query		string	false	"Point as lon,lat"
//	@Success	200		{object}	models.FeatureCollection
//	@Failure	400		{object}	map[string]string
//	@Router		/reverse-geocode [get]
func (h *GeoCodeHandler) ReverseGeocode(c *gin.Context) {
	point, err := parseFloatList(c.Query("query"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinate in 'query'"})
		return
	}

	c.JSON(http.StatusOK, h.service.ReverseGeocode(c.Request.Context(), service.ReverseConfig{Query: point}))
}

func parseFloatList(raw string) ([]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
