package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-suraksha/datasets"
)

func (e *Env) GetCyclone(c *gin.Context) {
	data, ok := e.loadObject(c, datasets.Cyclone, "cyclone")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, data)
}

func (e *Env) GetActiveCyclone(c *gin.Context) {
	data, ok := e.loadObject(c, datasets.Cyclone, "cyclone")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, datasets.Section(data, "active_cyclone"))
}

func (e *Env) GetCycloneTrack(c *gin.Context) {
	data, ok := e.loadObject(c, datasets.Cyclone, "cyclone")
	if !ok {
		return
	}
	active := datasets.Section(data, "active_cyclone")
	c.JSON(http.StatusOK, datasets.SectionList(active, "forecast_track"))
}

func (e *Env) GetHistoricalCyclones(c *gin.Context) {
	data, ok := e.loadObject(c, datasets.Cyclone, "cyclone")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, datasets.SectionList(data, "historical_cyclones"))
}
