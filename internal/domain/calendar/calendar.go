// Package calendar buckets scoreboard events into upcoming and completed.
package calendar

import (
	"time"

	"fightgate/internal/domain/model"
	"fightgate/internal/domain/normalize"
)

// Build truncates rawEvents (upstream order, unsorted) to the first limit
// entries and then classifies each into upcoming (date >= now) or completed
// (date < now).
//
// Truncation happens before classification: with a small limit the upcoming
// bucket can come back empty even when later events in the raw list are
// upcoming. That ordering is part of the contract and materially changes the
// output for small limits.
func Build(rawEvents []map[string]any, limit int, now time.Time) model.Calendar {
	if limit > 0 && len(rawEvents) > limit {
		rawEvents = rawEvents[:limit]
	}

	cal := model.Calendar{
		Upcoming:  make([]model.EventSummary, 0),
		Completed: make([]model.EventSummary, 0),
	}
	for _, rawEvent := range rawEvents {
		summary := normalize.ParseEventSummary(rawEvent)
		if summary.Date.Before(now) {
			cal.Completed = append(cal.Completed, summary)
		} else {
			cal.Upcoming = append(cal.Upcoming, summary)
		}
	}
	return cal
}
