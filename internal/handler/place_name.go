package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"mapkit-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PlaceNameService interface for dependency injection
type PlaceNameService interface {
	ReverseSearch(context.Context, float64, float64) (string, error)
}

// PlaceNameHandler resolves points to display names
type PlaceNameHandler struct {
	service PlaceNameService
}

// NewPlaceNameHandler creates a new place name handler
func NewPlaceNameHandler(svc PlaceNameService) *PlaceNameHandler {
	return &PlaceNameHandler{service: svc}
}

// PlaceName handles GET /place-name requests
//
//	@Summary	Place name for a point
//	@Tags		geocoding
//	@Produce	json
//	@Param		lat	query		number	true	"Latitude"
//	@Param		lon	query		number	true	"Longitude"
//	@Success	200	{object}	map[string]string
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/place-name [get]
func (h *PlaceNameHandler) PlaceName(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	name, err := h.service.ReverseSearch(c.Request.Context(), lat, lon)
	if err != nil {
		log.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("place name lookup failed")
		if errors.Is(err, service.ErrPlaceNotResolved) {
			c.JSON(http.StatusNotFound, gin.H{"error": service.ErrPlaceNotResolved.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"place_name": name})
}
