// internal/api/handlers/center_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"sports-health-centers-api/internal/dataset"
	"sports-health-centers-api/internal/models"
	"sports-health-centers-api/internal/query"

	"github.com/gin-gonic/gin"
)

type CenterHandler struct {
	Store *dataset.Store
}

type ListCentersQuery struct {
	Limit  int `form:"limit,default=100" binding:"gte=1,lte=500"`
	Offset int `form:"offset,default=0" binding:"gte=0"`
}

type SearchQuery struct {
	Q string `form:"q" binding:"required,min=2"`
}

type NameQuery struct {
	Name string `form:"name" binding:"required"`
}

// ListCenters returns one page of the collection.
func (h *CenterHandler) ListCenters(c *gin.Context) {
	var q ListCentersQuery
	if !rejectBlank(c, integerMsg, "limit", "offset") || !bindQuery(c, &q) {
		return
	}

	page := h.Store.Page(q.Limit, q.Offset)
	observeResults(c, len(page))
	respond(c, http.StatusOK, models.CenterPage{
		Total:  h.Store.Count(),
		Limit:  q.Limit,
		Offset: q.Offset,
		Data:   page,
	})
}

// GetCenterByID returns a single center by its id.
func (h *CenterHandler) GetCenterByID(c *gin.Context) {
	id := c.Param("id")

	center, err := h.Store.GetByID(id)
	if err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Center with id %s not found", id))
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to retrieve center")
		}
		return
	}

	respond(c, http.StatusOK, center)
}

// Search matches q against name, description and disciplines.
func (h *CenterHandler) Search(c *gin.Context) {
	var q SearchQuery
	if !bindQuery(c, &q) {
		return
	}

	results, err := query.Search(h.Store.All(), q.Q)
	if err != nil {
		rejectInvalid(c, err.Error())
		return
	}

	observeResults(c, len(results))
	respond(c, http.StatusOK, models.SearchResult{Query: q.Q, Count: len(results), Data: results})
}

func (h *CenterHandler) ByDiscipline(c *gin.Context) {
	var q NameQuery
	if !bindQuery(c, &q) {
		return
	}

	results := query.ByDiscipline(h.Store.All(), q.Name)
	observeResults(c, len(results))
	respond(c, http.StatusOK, models.DisciplineResult{Discipline: q.Name, Count: len(results), Data: results})
}

func (h *CenterHandler) ByPathology(c *gin.Context) {
	var q NameQuery
	if !bindQuery(c, &q) {
		return
	}

	results := query.ByPathology(h.Store.All(), q.Name)
	observeResults(c, len(results))
	respond(c, http.StatusOK, models.PathologyResult{Pathology: q.Name, Count: len(results), Data: results})
}

func (h *CenterHandler) ListDisciplines(c *gin.Context) {
	list := query.ListDisciplines(h.Store.All())
	observeResults(c, len(list))
	respond(c, http.StatusOK, models.DisciplineList{Count: len(list), Disciplines: list})
}

func (h *CenterHandler) ListPathologies(c *gin.Context) {
	list := query.ListPathologies(h.Store.All())
	observeResults(c, len(list))
	respond(c, http.StatusOK, models.PathologyList{Count: len(list), Pathologies: list})
}
