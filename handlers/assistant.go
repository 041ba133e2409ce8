package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-suraksha/assistant"
	"go-suraksha/types"
)

// AIAssistant answers a free-form query through the model. 503 when no
// credential is configured, generic 500 when the model call fails.
func (e *Env) AIAssistant(c *gin.Context) {
	var req types.AIQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	resp, err := e.Assistant.Query(c.Request.Context(), req.Query, req.Context)
	if err != nil {
		if errors.Is(err, assistant.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "AI service is not available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error processing AI request"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AIRecommendations always answers with a recommendation list; the
// assistant handles every failure mode with a static fallback.
func (e *Env) AIRecommendations(c *gin.Context) {
	recs := e.Assistant.Recommendations(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
