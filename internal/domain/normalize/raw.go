package normalize

import "time"

// Upstream timestamps come in two shapes depending on the feed: full RFC3339
// or the minute-precision "2006-01-02T15:04Z" variant.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z",
}

// asMap returns v as a JSON object, or nil.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// asSlice returns v as a JSON array, or nil.
func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// str returns m[key] as a string, or fallback when absent or not a string.
func str(m map[string]any, key, fallback string) string {
	if m == nil {
		return fallback
	}
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// boolean returns m[key] as a bool, false when absent.
func boolean(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	b, _ := m[key].(bool)
	return b
}

// parseDate parses an upstream timestamp, returning the zero time when no
// layout matches.
func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
