package handler

import (
	"net/http"
	"strconv"

	"mapkit-api/internal/geofmt"
	"mapkit-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RoundCoord handles GET /round requests
//
//	@Summary	Round a coordinate
//	@Tags		format
//	@Produce	json
//	@Param		value		query		number	true	"Coordinate value"
//	@Param		precision	query		int		true	"Decimal places"
//	@Success	200			{object}	map[string]number
//	@Failure	400			{object}	map[string]string
//	@Router		/round [get]
func RoundCoord(c *gin.Context) {
	value, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing 'value'"})
		return
	}

	precision, err := strconv.Atoi(c.Query("precision"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing 'precision'"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"value": geofmt.RoundCoord(value, precision)})
}

// FormatAddress handles POST /address/format requests
//
//	@Summary	Format an address record
//	@Tags		format
//	@Accept		json
//	@Produce	json
//	@Param		address	body		models.Address	true	"Address record"
//	@Success	200		{object}	map[string]string
//	@Failure	400		{object}	map[string]string
//	@Router		/address/format [post]
func FormatAddress(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"formatted": geofmt.FormatAddress(addr)})
}
