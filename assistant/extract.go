package assistant

import (
	"encoding/json"
	"strings"

	"go-suraksha/types"
)

// ExtractJSONArray recovers a recommendation array from free-form model
// output. The model is not guaranteed to return pure JSON, so this scans
// from the first '[' to the last ']' and parses that slice. Returns false
// when no brackets are found, the brackets are out of order, or the slice
// does not parse as a recommendation array.
func ExtractJSONArray(text string) ([]types.Recommendation, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end < start {
		return nil, false
	}

	var recs []types.Recommendation
	if err := json.Unmarshal([]byte(text[start:end+1]), &recs); err != nil {
		return nil, false
	}
	return recs, true
}
