package dashboard

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-suraksha/datasets"
	"go-suraksha/types"
)

func TestScore(t *testing.T) {
	t.Run("exact formula", func(t *testing.T) {
		// 100 - (2*15 + 1*10 + 3*5) - 15 (AQI 250) - 25 (cyclone) = 15
		counts := types.AlertCounts{Red: 2, Orange: 1, Yellow: 3}
		assert.Equal(t, 15, Score(counts, 250, true))
	})

	t.Run("clamped at zero with pathological inputs", func(t *testing.T) {
		counts := types.AlertCounts{Red: 10}
		assert.Equal(t, 0, Score(counts, 500, true))
	})

	t.Run("no penalties", func(t *testing.T) {
		assert.Equal(t, 100, Score(types.AlertCounts{}, 50, false))
	})

	t.Run("AQI bracket boundaries", func(t *testing.T) {
		assert.Equal(t, 100, Score(types.AlertCounts{}, 100, false))
		assert.Equal(t, 90, Score(types.AlertCounts{}, 101, false))
		assert.Equal(t, 85, Score(types.AlertCounts{}, 300, false))
		assert.Equal(t, 80, Score(types.AlertCounts{}, 301, false))
	})

	t.Run("brackets do not stack", func(t *testing.T) {
		// AQI 350 pays 20, not 20+15+10
		assert.Equal(t, 80, Score(types.AlertCounts{}, 350, false))
	})

	t.Run("cyclone penalty alone", func(t *testing.T) {
		assert.Equal(t, 75, Score(types.AlertCounts{}, 0, true))
	})
}

func TestCountAlerts(t *testing.T) {
	alerts := []map[string]any{
		{"severity": "red"},
		{"severity": "red"},
		{"severity": "orange"},
		{"severity": "yellow"},
		{"severity": "blue"},
		{"note": "no severity"},
	}

	counts := CountAlerts(alerts)
	assert.Equal(t, 2, counts.Red)
	assert.Equal(t, 1, counts.Orange)
	assert.Equal(t, 1, counts.Yellow)
}

func writeDataset(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), data, 0o644))
}

func testLoader(t *testing.T, activeCyclone any) *datasets.Loader {
	t.Helper()
	dir := t.TempDir()

	writeDataset(t, dir, datasets.Weather, map[string]any{
		"current": map[string]any{"temperature": 31.5, "condition": "Cloudy", "rain_probability": 65},
	})
	writeDataset(t, dir, datasets.AQI, map[string]any{
		"current": map[string]any{"aqi": 250.0, "category": "Very Unhealthy"},
	})
	writeDataset(t, dir, datasets.Alerts, []map[string]any{
		{"id": "a1", "severity": "red"},
		{"id": "a2", "severity": "red"},
		{"id": "a3", "severity": "orange"},
		{"id": "a4", "severity": "yellow"},
		{"id": "a5", "severity": "yellow"},
		{"id": "a6", "severity": "yellow"},
		{"id": "a7", "severity": "blue"},
	})
	writeDataset(t, dir, datasets.Disasters, []map[string]any{
		{"id": "d1"}, {"id": "d2"}, {"id": "d3"},
	})
	writeDataset(t, dir, datasets.Cyclone, map[string]any{
		"active_cyclone": activeCyclone,
	})

	return datasets.NewLoader(dir)
}

func TestSummary(t *testing.T) {
	frozen := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(frozen)

	t.Run("full envelope", func(t *testing.T) {
		loader := testLoader(t, map[string]any{"name": "Remal"})

		summary, err := Summary(loader, clock)
		require.NoError(t, err)

		// 100 - (2*15+1*10+3*5) - 15 - 25 = 15
		assert.Equal(t, 15, summary.SurakshaScore)
		assert.Equal(t, types.AlertCounts{Red: 2, Orange: 1, Yellow: 3}, summary.AlertsBySeverity)
		// raw count includes the "blue" alert outside the weighted buckets
		assert.Equal(t, 7, summary.ActiveAlertsCount)
		assert.Equal(t, 3, summary.TotalHistoricalDisasters)
		assert.True(t, summary.ActiveCyclone)
		assert.Equal(t, frozen, summary.LastUpdated)
		assert.Equal(t, "Cloudy", summary.Weather["condition"])
		assert.Equal(t, 250.0, summary.AQI["aqi"])
	})

	t.Run("no active cyclone", func(t *testing.T) {
		loader := testLoader(t, nil)

		summary, err := Summary(loader, clock)
		require.NoError(t, err)
		assert.False(t, summary.ActiveCyclone)
		assert.Equal(t, 40, summary.SurakshaScore)
	})

	t.Run("empty cyclone record counts as inactive", func(t *testing.T) {
		loader := testLoader(t, map[string]any{})

		summary, err := Summary(loader, clock)
		require.NoError(t, err)
		assert.False(t, summary.ActiveCyclone)
	})

	t.Run("missing dataset fails wholly", func(t *testing.T) {
		loader := testLoader(t, nil)
		require.NoError(t, os.Remove(filepath.Join(loader.Dir, datasets.Alerts+".json")))

		_, err := Summary(loader, clock)
		assert.Error(t, err)
	})
}
