package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-suraksha/datasets"
	"go-suraksha/filter"
	"go-suraksha/types"
)

// GetDisasters lists historical disasters, optionally filtered by type and
// truncated to the (clamped) limit.
func (e *Env) GetDisasters(c *gin.Context) {
	data, ok := e.loadList(c, datasets.Disasters, "disasters")
	if !ok {
		return
	}

	data = filter.ByField(data, "type", c.Query("disaster_type"))

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	data = filter.Truncate(data, filter.ClampLimit(limit))

	c.JSON(http.StatusOK, data)
}

func (e *Env) GetDisasterByID(c *gin.Context) {
	data, ok := e.loadList(c, datasets.Disasters, "disasters")
	if !ok {
		return
	}
	disaster, found := filter.FindByID(data, c.Param("id"))
	if !found {
		notFound(c, "Disaster not found")
		return
	}
	c.JSON(http.StatusOK, disaster)
}

// GetDisasterStats aggregates totals and a by-type breakdown over the
// whole disasters dataset.
func (e *Env) GetDisasterStats(c *gin.Context) {
	data, ok := e.loadList(c, datasets.Disasters, "disasters")
	if !ok {
		return
	}

	stats := types.DisasterStats{
		TotalDisasters: len(data),
		ByType:         map[string]types.DisasterTypeStats{},
	}
	for _, d := range data {
		casualties := intField(d, "casualties")
		affected := intField(d, "affected_population")
		stats.TotalCasualties += casualties
		stats.TotalAffectedPopulation += affected

		dType, _ := d["type"].(string)
		if dType == "" {
			dType = "Unknown"
		}
		byType := stats.ByType[dType]
		byType.Count++
		byType.Casualties += casualties
		byType.Affected += affected
		stats.ByType[dType] = byType
	}

	c.JSON(http.StatusOK, stats)
}

func intField(r map[string]any, field string) int {
	if v, ok := r[field].(float64); ok {
		return int(v)
	}
	return 0
}
