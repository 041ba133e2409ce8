package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-suraksha/datasets"
	"go-suraksha/filter"
)

// GetEarthquakes lists earthquakes at or above the requested magnitude,
// most recent first. Records without a time field sort as earliest.
func (e *Env) GetEarthquakes(c *gin.Context) {
	data, ok := e.loadList(c, datasets.Earthquakes, "earthquake")
	if !ok {
		return
	}

	if raw := c.Query("min_magnitude"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			data = filter.ByMinNumber(data, "magnitude", min)
		}
	}

	filter.SortByStringDesc(data, "time")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	data = filter.Truncate(data, filter.ClampLimit(limit))

	c.JSON(http.StatusOK, data)
}
