package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-suraksha/types"
)

// CreateStatusCheck records a client heartbeat and returns the stored record.
func (e *Env) CreateStatusCheck(c *gin.Context) {
	var input types.StatusCheckCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	check, err := e.Store.CreateStatusCheck(c.Request.Context(), input.ClientName)
	if err != nil {
		logError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to save status check"})
		return
	}
	c.JSON(http.StatusOK, check)
}

// GetStatusChecks lists every recorded status check. Order unspecified.
func (e *Env) GetStatusChecks(c *gin.Context) {
	checks, err := e.Store.ListStatusChecks(c.Request.Context())
	if err != nil {
		logError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to load status checks"})
		return
	}
	c.JSON(http.StatusOK, checks)
}
