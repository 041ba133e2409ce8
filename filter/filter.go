// Package filter implements the query conventions shared by the list
// endpoints: case-insensitive equality filters, numeric thresholds, a
// stable descending sort, and limit clamping.
package filter

import (
	"sort"
	"strings"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// ByField keeps records whose string field equals want, ignoring case.
// Records missing the field, or holding a non-string, are excluded. An
// empty want is a no-op. Unknown values simply match nothing.
func ByField(records []map[string]any, field, want string) []map[string]any {
	if want == "" {
		return records
	}
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		v, ok := r[field].(string)
		if ok && strings.EqualFold(v, want) {
			out = append(out, r)
		}
	}
	return out
}

// ByMinNumber keeps records whose numeric field is at least min. A missing
// or non-numeric field counts as zero, so such records only survive a
// non-positive threshold.
func ByMinNumber(records []map[string]any, field string, min float64) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		if numberField(r, field) >= min {
			out = append(out, r)
		}
	}
	return out
}

func numberField(r map[string]any, field string) float64 {
	switch v := r[field].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// SortByStringDesc sorts records descending on a string field. The sort is
// stable and a missing field sorts as the empty string, i.e. last.
func SortByStringDesc(records []map[string]any, field string) {
	sort.SliceStable(records, func(i, j int) bool {
		a, _ := records[i][field].(string)
		b, _ := records[j][field].(string)
		return a > b
	})
}

// ClampLimit applies the default for non-positive requests and the hard
// ceiling for everything above it.
func ClampLimit(requested int) int {
	if requested <= 0 {
		return DefaultLimit
	}
	if requested > MaxLimit {
		return MaxLimit
	}
	return requested
}

// Truncate caps records at n entries. Applied after filtering and sorting.
func Truncate(records []map[string]any, n int) []map[string]any {
	if len(records) > n {
		return records[:n]
	}
	return records
}

// FindByID returns the first record whose id field equals id exactly.
func FindByID(records []map[string]any, id string) (map[string]any, bool) {
	for _, r := range records {
		if v, ok := r["id"].(string); ok && v == id {
			return r, true
		}
	}
	return nil, false
}
