package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-suraksha/datasets"
	"go-suraksha/filter"
)

// GetEvacuationCenters lists shelters, optionally filtered by shelter type
// and operational status.
func (e *Env) GetEvacuationCenters(c *gin.Context) {
	data, ok := e.loadList(c, datasets.EvacuationCenters, "evacuation centers")
	if !ok {
		return
	}
	data = filter.ByField(data, "type", c.Query("shelter_type"))
	data = filter.ByField(data, "status", c.Query("status"))
	c.JSON(http.StatusOK, data)
}

func (e *Env) GetEvacuationCenterByID(c *gin.Context) {
	data, ok := e.loadList(c, datasets.EvacuationCenters, "evacuation centers")
	if !ok {
		return
	}
	center, found := filter.FindByID(data, c.Param("id"))
	if !found {
		notFound(c, "Evacuation center not found")
		return
	}
	c.JSON(http.StatusOK, center)
}
