package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-suraksha/dashboard"
)

// GetDashboardSummary serves the aggregated dashboard envelope with the
// Suraksha score. Fails wholly when any underlying dataset is unreadable.
func (e *Env) GetDashboardSummary(c *gin.Context) {
	summary, err := dashboard.Summary(e.Loader, e.Clock)
	if err != nil {
		logError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error generating dashboard summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
