package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-suraksha/datasets"
)

// GetWeather serves the full weather dataset.
func (e *Env) GetWeather(c *gin.Context) {
	data, ok := e.loadObject(c, datasets.Weather, "weather")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, data)
}

func (e *Env) GetCurrentWeather(c *gin.Context) {
	data, ok := e.loadObject(c, datasets.Weather, "weather")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, datasets.Section(data, "current"))
}

func (e *Env) GetHourlyForecast(c *gin.Context) {
	data, ok := e.loadObject(c, datasets.Weather, "weather")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, datasets.SectionList(data, "hourly"))
}

func (e *Env) GetDailyForecast(c *gin.Context) {
	data, ok := e.loadObject(c, datasets.Weather, "weather")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, datasets.SectionList(data, "daily"))
}
