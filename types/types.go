package types

import "time"

type Severity string

const (
	Red    Severity = "red"
	Orange Severity = "orange"
	Yellow Severity = "yellow"
)

// StatusCheck is a client heartbeat record. Append-only, never mutated.
type StatusCheck struct {
	ID         string    `json:"id" firestore:"id"`
	ClientName string    `json:"client_name" firestore:"client_name"`
	Timestamp  time.Time `json:"timestamp" firestore:"-"`
}

type StatusCheckCreate struct {
	ClientName string `json:"client_name" binding:"required"`
}

// Coordinates is a lat/lng pair attached to a community report.
type Coordinates struct {
	Lat float64 `json:"lat" firestore:"lat"`
	Lng float64 `json:"lng" firestore:"lng"`
}

// CommunityReportCreate is the request body for submitting a report.
// Coordinates is optional; when nil the service may geocode the location.
type CommunityReportCreate struct {
	ReporterName string       `json:"reporter_name" binding:"required"`
	Location     string       `json:"location" binding:"required"`
	ReportType   string       `json:"report_type" binding:"required"`
	Description  string       `json:"description" binding:"required"`
	Severity     string       `json:"severity" binding:"required"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

// CommunityReport is a user-submitted incident report. Status defaults to
// "pending" on creation; reports are never deleted.
type CommunityReport struct {
	ID           string       `json:"id" firestore:"id"`
	ReporterName string       `json:"reporter_name" firestore:"reporter_name"`
	Location     string       `json:"location" firestore:"location"`
	ReportType   string       `json:"report_type" firestore:"report_type"`
	Description  string       `json:"description" firestore:"description"`
	Severity     string       `json:"severity" firestore:"severity"`
	Coordinates  *Coordinates `json:"coordinates,omitempty" firestore:"coordinates,omitempty"`
	Timestamp    time.Time    `json:"timestamp" firestore:"-"`
	Status       string       `json:"status" firestore:"status"`
}

// AIQueryRequest is the body for the free-form assistant endpoint.
// Context defaults to general disaster-management framing when omitted.
type AIQueryRequest struct {
	Query   string `json:"query" binding:"required"`
	Context string `json:"context,omitempty"`
}

type AIQueryResponse struct {
	Query     string    `json:"query"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// Recommendation is one actionable safety item from the assistant.
type Recommendation struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// AlertCounts breaks active alerts down by the three weighted severities.
type AlertCounts struct {
	Red    int `json:"red"`
	Orange int `json:"orange"`
	Yellow int `json:"yellow"`
}

// DashboardSummary is the derived dashboard envelope. SurakshaScore is
// always clamped to [0,100]. ActiveAlertsCount is the raw dataset total and
// includes severities outside the three weighted buckets.
type DashboardSummary struct {
	SurakshaScore            int            `json:"suraksha_score"`
	Weather                  map[string]any `json:"weather"`
	AQI                      map[string]any `json:"aqi"`
	ActiveAlertsCount        int            `json:"active_alerts_count"`
	AlertsBySeverity         AlertCounts    `json:"alerts_by_severity"`
	TotalHistoricalDisasters int            `json:"total_historical_disasters"`
	ActiveCyclone            bool           `json:"active_cyclone"`
	LastUpdated              time.Time      `json:"last_updated"`
}

// DisasterStats is the /disasters/stats/summary payload.
type DisasterStats struct {
	TotalDisasters          int                          `json:"total_disasters"`
	TotalCasualties         int                          `json:"total_casualties"`
	TotalAffectedPopulation int                          `json:"total_affected_population"`
	ByType                  map[string]DisasterTypeStats `json:"by_type"`
}

type DisasterTypeStats struct {
	Count      int `json:"count"`
	Casualties int `json:"casualties"`
	Affected   int `json:"affected"`
}
