package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-suraksha/datasets"
)

func (e *Env) GetAgriculture(c *gin.Context) {
	data, ok := e.loadObject(c, datasets.Agriculture, "agriculture")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, data)
}

func (e *Env) GetCropAdvisory(c *gin.Context) {
	data, ok := e.loadObject(c, datasets.Agriculture, "agriculture")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, datasets.SectionList(data, "crop_advisory"))
}

func (e *Env) GetMarketPrices(c *gin.Context) {
	data, ok := e.loadObject(c, datasets.Agriculture, "agriculture")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, datasets.SectionList(data, "market_prices"))
}
