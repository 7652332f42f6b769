// Package model contains domain records derived from upstream scoreboard data.
package model

import "time"

// Placeholder values applied when upstream omits a field. Upstream data for
// announced-but-unfinalized events is routinely incomplete, so the defaults
// are part of the contract rather than an error path.
const (
	PlaceholderName    = "TBA"
	DefaultWeightClass = "Unknown"
	DefaultFightStatus = StatusScheduled
)

// Fight status values as normalized from upstream competition status.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Location is the city/country pair attached to an event's venue.
type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// EventSummary is the projection returned by listing and search operations.
// FightCount is derived from the raw competition list length.
type EventSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	FightCount int       `json:"fightCount"`
}

// Event is the full event record. Identity is ID, unique per upstream
// snapshot; records are recomputed on every call and never persisted.
type Event struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Venue    string    `json:"venue"`
	Location Location  `json:"location"`
}

// Fight is a single bout derived from an upstream competition record.
// Fighter1 and Fighter2 mirror competitor slots 0 and 1 positionally;
// Order is the position within the event's raw competition list, where the
// last position is the main event by upstream convention.
type Fight struct {
	WeightClass string `json:"weightClass"`
	Fighter1    string `json:"fighter1"`
	Fighter2    string `json:"fighter2"`
	Winner      string `json:"winner,omitempty"`
	Status      string `json:"status"`
	Order       int    `json:"order"`
}

// FightCardEntry is a Fight enriched for card presentation. FightNumber is
// the original 1-based raw index and keeps that value even after the card is
// reordered for display.
type FightCardEntry struct {
	Fight
	FightNumber     int    `json:"fightNumber"`
	Fighter1Country string `json:"fighter1Country,omitempty"`
	Fighter2Country string `json:"fighter2Country,omitempty"`
	IsMainEvent     bool   `json:"isMainEvent"`
}

// EventDetail combines the event record with its parsed fights.
type EventDetail struct {
	Event
	Fights []Fight `json:"fights"`
}

// Calendar buckets a truncated slice of events into upcoming and completed
// relative to a reference instant.
type Calendar struct {
	Upcoming  []EventSummary `json:"upcoming"`
	Completed []EventSummary `json:"completed"`
}
