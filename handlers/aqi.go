package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-suraksha/datasets"
)

// GetAQI serves the full air quality dataset: current, stations,
// historical, and forecast.
func (e *Env) GetAQI(c *gin.Context) {
	data, ok := e.loadObject(c, datasets.AQI, "AQI")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, data)
}

func (e *Env) GetCurrentAQI(c *gin.Context) {
	data, ok := e.loadObject(c, datasets.AQI, "AQI")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, datasets.Section(data, "current"))
}

func (e *Env) GetAQIStations(c *gin.Context) {
	data, ok := e.loadObject(c, datasets.AQI, "AQI")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, datasets.SectionList(data, "stations"))
}

func (e *Env) GetAQIHistorical(c *gin.Context) {
	data, ok := e.loadObject(c, datasets.AQI, "AQI")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, datasets.SectionList(data, "historical"))
}

func (e *Env) GetAQIForecast(c *gin.Context) {
	data, ok := e.loadObject(c, datasets.AQI, "AQI")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, datasets.SectionList(data, "forecast"))
}
