package datasets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "weather_data.json"),
		[]byte(`{"current":{"temperature":31.5},"hourly":[{"time":"t1"}]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alerts.json"),
		[]byte(`[{"id":"a1","severity":"red"}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"),
		[]byte(`{"current":`), 0o644))

	t.Run("object dataset", func(t *testing.T) {
		data, err := loader.LoadObject("weather_data")
		require.NoError(t, err)
		assert.Equal(t, 31.5, Section(data, "current")["temperature"])
	})

	t.Run("list dataset", func(t *testing.T) {
		data, err := loader.LoadList("alerts")
		require.NoError(t, err)
		require.Len(t, data, 1)
		assert.Equal(t, "a1", data[0]["id"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.LoadObject("no_such_dataset")
		assert.Error(t, err)
	})

	t.Run("corrupt file", func(t *testing.T) {
		_, err := loader.LoadObject("broken")
		assert.Error(t, err)
	})

	t.Run("fresh read picks up changes", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "alerts.json"),
			[]byte(`[{"id":"a1"},{"id":"a2"}]`), 0o644))
		data, err := loader.LoadList("alerts")
		require.NoError(t, err)
		assert.Len(t, data, 2)
	})
}

func TestSectionHelpers(t *testing.T) {
	data := map[string]any{
		"current": map[string]any{"aqi": 178.0},
		"hourly":  []any{map[string]any{"time": "t1"}},
		"scalar":  42.0,
	}

	assert.Equal(t, 178.0, Section(data, "current")["aqi"])
	assert.Empty(t, Section(data, "missing"))
	assert.Empty(t, Section(data, "scalar"))

	assert.Len(t, SectionList(data, "hourly"), 1)
	assert.Empty(t, SectionList(data, "missing"))
	assert.Empty(t, SectionList(data, "scalar"))
}
