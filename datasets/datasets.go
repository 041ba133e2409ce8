package datasets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Dataset names as bundled under the data directory, without extension.
const (
	Weather           = "weather_data"
	Alerts            = "alerts"
	AQI               = "aqi_data"
	Disasters         = "disasters"
	Cyclone           = "cyclone_data"
	FloodZones        = "flood_zones"
	Earthquakes       = "earthquake_data"
	Agriculture       = "agriculture_data"
	KnowledgeCards    = "knowledge_cards"
	EvacuationCenters = "evacuation_centers"
)

// Loader resolves named datasets from a directory of JSON files. Every call
// re-reads the file, so responses always reflect the data on disk.
type Loader struct {
	Dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

func (l *Loader) read(name string) ([]byte, error) {
	path := filepath.Join(l.Dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", name, err)
	}
	return data, nil
}

// LoadObject loads a dataset whose root is a JSON object.
func (l *Loader) LoadObject(name string) (map[string]any, error) {
	data, err := l.read(name)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", name, err)
	}
	return out, nil
}

// LoadList loads a dataset whose root is a JSON array of objects.
func (l *Loader) LoadList(name string) ([]map[string]any, error) {
	data, err := l.read(name)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", name, err)
	}
	return out, nil
}

// Section returns a sub-object of an object dataset, or an empty map when
// the key is absent or not an object.
func Section(data map[string]any, key string) map[string]any {
	if v, ok := data[key].(map[string]any); ok {
		return v
	}
	return map[string]any{}
}

// SectionList returns a sub-array of an object dataset, or an empty slice
// when the key is absent or not an array.
func SectionList(data map[string]any, key string) []any {
	if v, ok := data[key].([]any); ok {
		return v
	}
	return []any{}
}
