package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-suraksha/handlers"
	"go-suraksha/metrics"
)

// SetupRouter wires the full API surface under /api, plus /metrics.
func SetupRouter(env *handlers.Env, m *metrics.Metrics, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = corsOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	if m != nil {
		r.Use(m.Middleware())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := r.Group("/api")
	{
		api.GET("/", env.Root)

		api.POST("/status", env.CreateStatusCheck)
		api.GET("/status", env.GetStatusChecks)

		api.GET("/weather", env.GetWeather)
		api.GET("/weather/current", env.GetCurrentWeather)
		api.GET("/weather/hourly", env.GetHourlyForecast)
		api.GET("/weather/daily", env.GetDailyForecast)

		api.GET("/alerts", env.GetAlerts)
		api.GET("/alerts/:id", env.GetAlertByID)

		api.GET("/aqi", env.GetAQI)
		api.GET("/aqi/current", env.GetCurrentAQI)
		api.GET("/aqi/stations", env.GetAQIStations)
		api.GET("/aqi/historical", env.GetAQIHistorical)
		api.GET("/aqi/forecast", env.GetAQIForecast)

		api.GET("/disasters", env.GetDisasters)
		api.GET("/disasters/stats/summary", env.GetDisasterStats)
		api.GET("/disasters/:id", env.GetDisasterByID)

		api.GET("/cyclone", env.GetCyclone)
		api.GET("/cyclone/active", env.GetActiveCyclone)
		api.GET("/cyclone/track", env.GetCycloneTrack)
		api.GET("/cyclone/historical", env.GetHistoricalCyclones)

		api.GET("/flood-zones", env.GetFloodZones)
		api.GET("/earthquakes", env.GetEarthquakes)

		api.GET("/agriculture", env.GetAgriculture)
		api.GET("/agriculture/advisory", env.GetCropAdvisory)
		api.GET("/agriculture/prices", env.GetMarketPrices)

		api.GET("/knowledge-cards", env.GetKnowledgeCards)
		api.GET("/knowledge-cards/:id", env.GetKnowledgeCardByID)

		api.GET("/evacuation-centers", env.GetEvacuationCenters)
		api.GET("/evacuation-centers/:id", env.GetEvacuationCenterByID)

		api.POST("/ai-assistant", env.AIAssistant)
		api.GET("/ai-assistant/recommendations", env.AIRecommendations)

		api.POST("/community-reports", env.CreateCommunityReport)
		api.GET("/community-reports", env.GetCommunityReports)
		api.GET("/community-reports/:id", env.GetCommunityReportByID)

		api.GET("/dashboard/summary", env.GetDashboardSummary)
	}

	return r
}
