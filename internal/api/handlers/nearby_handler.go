// internal/api/handlers/nearby_handler.go
package handlers

import (
	"math"
	"net/http"

	"sports-health-centers-api/internal/dataset"
	"sports-health-centers-api/internal/geo"
	"sports-health-centers-api/internal/models"

	"github.com/gin-gonic/gin"
)

type NearbyHandler struct {
	Store *dataset.Store
}

// NearbyQuery: lat and lng are pointers so that 0 is a valid coordinate
// while a missing one still fails "required".
type NearbyQuery struct {
	Lat      *float64 `form:"lat" binding:"required"`
	Lng      *float64 `form:"lng" binding:"required"`
	RadiusKm float64  `form:"radius_km,default=50" binding:"gte=1,lte=500"`
}

// Nearby lists centers within radius_km of (lat, lng), closest first.
func (h *NearbyHandler) Nearby(c *gin.Context) {
	var q NearbyQuery
	if !rejectBlank(c, requiredMsg, "lat", "lng") || !rejectBlank(c, numberMsg, "radius_km") || !bindQuery(c, &q) {
		return
	}
	lat, lng := *q.Lat, *q.Lng
	if !isFinite(lat) || !isFinite(lng) {
		rejectInvalid(c, "lat and lng must be finite numbers")
		return
	}

	results := geo.Nearby(h.Store, lat, lng, q.RadiusKm)
	observeResults(c, len(results))
	respond(c, http.StatusOK, models.NearbyResult{
		Location: models.Location{Lat: lat, Lng: lng},
		RadiusKm: q.RadiusKm,
		Count:    len(results),
		Data:     results,
	})
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
