package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-suraksha/datasets"
	"go-suraksha/filter"
)

// GetFloodZones lists flood zones, optionally filtered by risk level.
func (e *Env) GetFloodZones(c *gin.Context) {
	data, ok := e.loadList(c, datasets.FloodZones, "flood zones")
	if !ok {
		return
	}
	data = filter.ByField(data, "risk_level", c.Query("risk_level"))
	c.JSON(http.StatusOK, data)
}
