// Package search implements read-only querying over raw scoreboard events.
package search

import (
	"strings"

	"fightgate/internal/domain/model"
	"fightgate/internal/domain/normalize"
)

// Match returns the summary projections of every event matching query.
//
// Matching is a case-insensitive substring test against the event name or any
// competitor display name in any of the event's competitions, short-circuiting
// on the first hit. Results keep upstream order.
func Match(rawEvents []map[string]any, query string) []model.EventSummary {
	needle := strings.ToLower(query)

	results := make([]model.EventSummary, 0)
	for _, rawEvent := range rawEvents {
		if eventMatches(rawEvent, needle) {
			results = append(results, normalize.ParseEventSummary(rawEvent))
		}
	}
	return results
}

func eventMatches(rawEvent map[string]any, needle string) bool {
	if name, ok := rawEvent["name"].(string); ok {
		if strings.Contains(strings.ToLower(name), needle) {
			return true
		}
	}

	competitions, _ := rawEvent["competitions"].([]any)
	for _, c := range competitions {
		rawCompetition, _ := c.(map[string]any)
		competitors, _ := rawCompetition["competitors"].([]any)
		for _, comp := range competitors {
			competitor, _ := comp.(map[string]any)
			athlete, _ := competitor["athlete"].(map[string]any)
			name, _ := athlete["displayName"].(string)
			if name != "" && strings.Contains(strings.ToLower(name), needle) {
				return true
			}
		}
	}
	return false
}
