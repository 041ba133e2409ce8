package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-suraksha/db"
	"go-suraksha/filter"
	"go-suraksha/types"
)

// CreateCommunityReport stores a user-submitted incident report. Reports
// without coordinates get a best-effort geocode of the location when a
// geocoder is configured; geocoding failure never blocks the save.
func (e *Env) CreateCommunityReport(c *gin.Context) {
	var input types.CommunityReportCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if input.Coordinates == nil && e.Geocoder != nil {
		coords, err := e.Geocoder.Geocode(c.Request.Context(), input.Location)
		if err != nil {
			log.Printf("Failed to geocode %q: %v", input.Location, err)
		} else {
			input.Coordinates = coords
		}
	}

	report, err := e.Store.CreateCommunityReport(c.Request.Context(), input)
	if err != nil {
		logError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to save community report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetCommunityReports lists reports newest first, with optional
// exact-match status and report_type filters.
func (e *Env) GetCommunityReports(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	reports, err := e.Store.ListCommunityReports(
		c.Request.Context(),
		c.Query("status"),
		c.Query("report_type"),
		filter.ClampLimit(limit),
	)
	if err != nil {
		logError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to load community reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (e *Env) GetCommunityReportByID(c *gin.Context) {
	report, err := e.Store.GetCommunityReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			notFound(c, "Report not found")
			return
		}
		logError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to load community report"})
		return
	}
	c.JSON(http.StatusOK, report)
}
