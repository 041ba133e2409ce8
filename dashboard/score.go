// Package dashboard computes the Suraksha score and the dashboard summary
// envelope from the static datasets.
package dashboard

import (
	"fmt"

	"github.com/jonboulle/clockwork"

	"go-suraksha/datasets"
	"go-suraksha/types"
)

// Per-alert penalties by severity.
const (
	redPenalty    = 15
	orangePenalty = 10
	yellowPenalty = 5

	cyclonePenalty = 25
)

// CountAlerts tallies alerts into the three weighted severity buckets.
// Alerts with any other severity are ignored here; they still count toward
// the raw active-alert total.
func CountAlerts(alerts []map[string]any) types.AlertCounts {
	var counts types.AlertCounts
	for _, a := range alerts {
		severity, _ := a["severity"].(string)
		switch types.Severity(severity) {
		case types.Red:
			counts.Red++
		case types.Orange:
			counts.Orange++
		case types.Yellow:
			counts.Yellow++
		}
	}
	return counts
}

// aqiPenalty returns the penalty for the current AQI value. Brackets are
// exclusive and evaluated highest-first; exactly one applies.
func aqiPenalty(aqi float64) int {
	switch {
	case aqi > 300:
		return 20
	case aqi > 200:
		return 15
	case aqi > 100:
		return 10
	default:
		return 0
	}
}

// Score computes the Suraksha score from alert counts, the current AQI
// value, and cyclone activity. The result is clamped to [0,100].
func Score(counts types.AlertCounts, aqi float64, cycloneActive bool) int {
	score := 100
	score -= counts.Red*redPenalty + counts.Orange*orangePenalty + counts.Yellow*yellowPenalty
	score -= aqiPenalty(aqi)
	if cycloneActive {
		score -= cyclonePenalty
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// cycloneActive reports whether the cyclone dataset carries a non-empty
// active_cyclone record.
func cycloneActive(cyclone map[string]any) bool {
	active, ok := cyclone["active_cyclone"]
	if !ok || active == nil {
		return false
	}
	if m, isMap := active.(map[string]any); isMap {
		return len(m) > 0
	}
	return true
}

// Summary assembles the dashboard envelope. All five datasets are loaded
// fresh; if any load fails the whole operation fails with no partial
// summary.
func Summary(loader *datasets.Loader, clock clockwork.Clock) (*types.DashboardSummary, error) {
	weather, err := loader.LoadObject(datasets.Weather)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	aqi, err := loader.LoadObject(datasets.AQI)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	alerts, err := loader.LoadList(datasets.Alerts)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	disasters, err := loader.LoadList(datasets.Disasters)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	cyclone, err := loader.LoadObject(datasets.Cyclone)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}

	counts := CountAlerts(alerts)
	aqiCurrent := datasets.Section(aqi, "current")
	aqiValue, _ := aqiCurrent["aqi"].(float64)
	active := cycloneActive(cyclone)

	return &types.DashboardSummary{
		SurakshaScore:            Score(counts, aqiValue, active),
		Weather:                  datasets.Section(weather, "current"),
		AQI:                      aqiCurrent,
		ActiveAlertsCount:        len(alerts),
		AlertsBySeverity:         counts,
		TotalHistoricalDisasters: len(disasters),
		ActiveCyclone:            active,
		LastUpdated:              clock.Now().UTC(),
	}, nil
}
