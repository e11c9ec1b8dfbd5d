// internal/api/handlers/info_handler.go
package handlers

import (
	"net/http"

	"sports-health-centers-api/internal/dataset"
	"sports-health-centers-api/internal/models"

	"github.com/gin-gonic/gin"
)

const ServiceName = "Sports Health Centers API"

// Endpoints is the directory advertised at the root.
var Endpoints = map[string]string{
	"all_centers":      "/centers",
	"center_by_id":     "/centers/{id}",
	"search":           "/search?q=keyword",
	"by_discipline":    "/discipline?name=Tennis",
	"list_disciplines": "/disciplines",
	"by_pathology":     "/pathology?name=Cancer",
	"list_pathologies": "/pathologies",
	"nearby":           "/nearby?lat=47.0&lng=2.0&radius_km=50",
}

type InfoHandler struct {
	Store *dataset.Store
}

// Root describes the service.
func (h *InfoHandler) Root(c *gin.Context) {
	respond(c, http.StatusOK, models.ServiceInfo{
		Message:      ServiceName,
		TotalCenters: h.Store.Count(),
		Endpoints:    Endpoints,
	})
}

// Health is a liveness probe.
func (h *InfoHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"centers": h.Store.Count(),
	})
}
