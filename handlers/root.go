package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func logError(err error) {
	log.Printf("handler error: %v", err)
}

// Root serves the service descriptor with the endpoint map.
func (e *Env) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Suraksha Setu API v1.0",
		"status":  "operational",
		"endpoints": gin.H{
			"weather":            "/api/weather",
			"alerts":             "/api/alerts",
			"disasters":          "/api/disasters",
			"cyclone":            "/api/cyclone",
			"aqi":                "/api/aqi",
			"flood-zones":        "/api/flood-zones",
			"earthquakes":        "/api/earthquakes",
			"agriculture":        "/api/agriculture",
			"knowledge-cards":    "/api/knowledge-cards",
			"evacuation-centers": "/api/evacuation-centers",
			"ai-assistant":       "/api/ai-assistant",
			"community-reports":  "/api/community-reports",
		},
	})
}
