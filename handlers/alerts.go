package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-suraksha/datasets"
	"go-suraksha/filter"
)

// GetAlerts lists active alerts, optionally filtered by severity.
func (e *Env) GetAlerts(c *gin.Context) {
	data, ok := e.loadList(c, datasets.Alerts, "alerts")
	if !ok {
		return
	}
	data = filter.ByField(data, "severity", c.Query("severity"))
	c.JSON(http.StatusOK, data)
}

func (e *Env) GetAlertByID(c *gin.Context) {
	data, ok := e.loadList(c, datasets.Alerts, "alerts")
	if !ok {
		return
	}
	alert, found := filter.FindByID(data, c.Param("id"))
	if !found {
		notFound(c, "Alert not found")
		return
	}
	c.JSON(http.StatusOK, alert)
}
