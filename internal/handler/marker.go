package handler

import (
	"context"
	"net/http"

	"mapkit-api/internal/marker"
	"mapkit-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// MapLayer is a map instance whose markers can be listed
type MapLayer interface {
	marker.Map
	Markers(ctx context.Context) ([]*marker.Marker, error)
}

// MapStore interface for dependency injection
type MapStore interface {
	Map(id string) MapLayer
}

// MapStoreFunc adapts a lookup function to MapStore.
type MapStoreFunc func(id string) MapLayer

// Map implements MapStore.
func (f MapStoreFunc) Map(id string) MapLayer { return f(id) }

// MarkerHandler places markers on maps
type MarkerHandler struct {
	store MapStore
}

// NewMarkerHandler creates a new marker handler
func NewMarkerHandler(store MapStore) *MarkerHandler {
	return &MarkerHandler{store: store}
}

type placeMarkerRequest struct {
	Lon *float64 `json:"lon" binding:"required"`
	Lat *float64 `json:"lat" binding:"required"`
}

// PlaceMarker handles POST /maps/:id/markers requests
//
//	@Summary	Place a marker on a map
//	@Tags		markers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Map id"
//	@Param		point	body		placeMarkerRequest	true	"Marker position"
//	@Success	201		{object}	marker.Marker
//	@Failure	400		{object}	map[string]string
//	@Router		/maps/{id}/markers [post]
func (h *MarkerHandler) PlaceMarker(c *gin.Context) {
	at, ok := bindPoint(c)
	if !ok {
		return
	}

	mk, err := marker.New(c.Request.Context(), at, h.store.Map(c.Param("id")))
	if err != nil {
		log.Error().Err(err).Str("map_id", c.Param("id")).Msg("failed to place marker")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, mk)
}

// ListMarkers handles GET /maps/:id/markers requests
//
//	@Summary	List the markers of a map
//	@Tags		markers
//	@Produce	json
//	@Param		id	path		string	true	"Map id"
//	@Success	200	{array}		marker.Marker
//	@Router		/maps/{id}/markers [get]
func (h *MarkerHandler) ListMarkers(c *gin.Context) {
	markers, err := h.store.Map(c.Param("id")).Markers(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Str("map_id", c.Param("id")).Msg("failed to list markers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, markers)
}

// NewMarker handles POST /markers requests, returning a marker not attached to any map
//
//	@Summary	Create a detached marker
//	@Tags		markers
//	@Accept		json
//	@Produce	json
//	@Param		point	body		placeMarkerRequest	true	"Marker position"
//	@Success	201		{object}	marker.Marker
//	@Failure	400		{object}	map[string]string
//	@Router		/markers [post]
func (h *MarkerHandler) NewMarker(c *gin.Context) {
	at, ok := bindPoint(c)
	if !ok {
		return
	}

	mk, err := marker.New(c.Request.Context(), at, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, mk)
}

func bindPoint(c *gin.Context) (models.Coordinate, bool) {
	var req placeMarkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must contain numeric 'lon' and 'lat'"})
		return models.Coordinate{}, false
	}
	return models.Coordinate{Lon: *req.Lon, Lat: *req.Lat}, true
}
