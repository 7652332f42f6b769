// Package normalize maps raw upstream scoreboard JSON onto the domain model.
//
// The upstream feed is heterogeneous and frequently incomplete, so every
// accessor applies the documented defaults instead of failing. Competitor
// slots are read positionally (slot 0 = fighter1, slot 1 = fighter2); the
// feed has always listed the red corner first, but nothing in the payload
// guarantees it. If that ordering ever changes the mapping mislabels
// fighters silently. Known fragility, kept for behavior parity.
package normalize

import (
	"fightgate/internal/domain/model"
)

// ParseFight maps a raw competition record to a Fight. The order argument is
// the competition's position within the event's raw competition list.
func ParseFight(rawCompetition map[string]any, order int) model.Fight {
	competitors := asSlice(rawCompetition["competitors"])

	var slot0, slot1 map[string]any
	if len(competitors) > 0 {
		slot0 = asMap(competitors[0])
	}
	if len(competitors) > 1 {
		slot1 = asMap(competitors[1])
	}

	f := model.Fight{
		WeightClass: str(asMap(rawCompetition["type"]), "text", model.DefaultWeightClass),
		Fighter1:    competitorName(slot0),
		Fighter2:    competitorName(slot1),
		Status:      parseStatus(asMap(rawCompetition["status"])),
		Order:       order,
	}

	// Winner flag is checked slot 0 first, then slot 1; anything else means
	// the bout is undecided.
	switch {
	case boolean(slot0, "winner"):
		f.Winner = f.Fighter1
	case boolean(slot1, "winner"):
		f.Winner = f.Fighter2
	}

	return f
}

// BuildFightCard maps every raw competition of an event to a FightCardEntry
// and returns the card main-event-first.
//
// FightNumber is the original 1-based raw index and the last raw entry is the
// main event. The returned slice is reversed for display, but FightNumber
// keeps its raw value, so numbers run backwards in the output. Callers depend
// on that exact shape.
func BuildFightCard(rawEvent map[string]any) []model.FightCardEntry {
	competitions := asSlice(rawEvent["competitions"])

	card := make([]model.FightCardEntry, 0, len(competitions))
	for i, c := range competitions {
		rawCompetition := asMap(c)
		competitors := asSlice(rawCompetition["competitors"])

		entry := model.FightCardEntry{
			Fight:       ParseFight(rawCompetition, i),
			FightNumber: i + 1,
			IsMainEvent: i == len(competitions)-1,
		}
		if len(competitors) > 0 {
			entry.Fighter1Country = competitorCountry(asMap(competitors[0]))
		}
		if len(competitors) > 1 {
			entry.Fighter2Country = competitorCountry(asMap(competitors[1]))
		}
		card = append(card, entry)
	}

	// Main event first.
	for i, j := 0, len(card)-1; i < j; i, j = i+1, j-1 {
		card[i], card[j] = card[j], card[i]
	}

	return card
}

// ParseEventSummary extracts the listing projection of a raw event.
func ParseEventSummary(rawEvent map[string]any) model.EventSummary {
	return model.EventSummary{
		ID:         str(rawEvent, "id", ""),
		Name:       str(rawEvent, "name", model.PlaceholderName),
		Date:       parseDate(str(rawEvent, "date", "")),
		FightCount: len(asSlice(rawEvent["competitions"])),
	}
}

// ParseEvent extracts the full event record. Venue details come from the
// event level when present, else from the first competition; events without
// a finalized venue fall back to the usual placeholders.
func ParseEvent(rawEvent map[string]any) model.Event {
	venue := eventVenue(rawEvent)
	address := asMap(venue["address"])

	return model.Event{
		ID:    str(rawEvent, "id", ""),
		Name:  str(rawEvent, "name", model.PlaceholderName),
		Date:  parseDate(str(rawEvent, "date", "")),
		Venue: str(venue, "fullName", model.PlaceholderName),
		Location: model.Location{
			City:    str(address, "city", model.PlaceholderName),
			Country: str(address, "country", model.PlaceholderName),
		},
	}
}

// ParseEventDetail extracts the full event record together with its fights in
// raw competition order.
func ParseEventDetail(rawEvent map[string]any) model.EventDetail {
	competitions := asSlice(rawEvent["competitions"])

	fights := make([]model.Fight, 0, len(competitions))
	for i, c := range competitions {
		fights = append(fights, ParseFight(asMap(c), i))
	}

	return model.EventDetail{
		Event:  ParseEvent(rawEvent),
		Fights: fights,
	}
}

// eventVenue resolves the venue object for an event, preferring the event
// level and falling back to the first competition.
func eventVenue(rawEvent map[string]any) map[string]any {
	if v := asMap(rawEvent["venue"]); v != nil {
		return v
	}
	competitions := asSlice(rawEvent["competitions"])
	if len(competitions) == 0 {
		return nil
	}
	return asMap(asMap(competitions[0])["venue"])
}

// competitorName resolves a competitor's display name.
func competitorName(competitor map[string]any) string {
	return str(asMap(competitor["athlete"]), "displayName", model.PlaceholderName)
}

// competitorCountry resolves a competitor's country from the athlete flag.
func competitorCountry(competitor map[string]any) string {
	return str(asMap(asMap(competitor["athlete"])["flag"]), "alt", "")
}

// parseStatus maps the upstream status object onto the domain status enum.
func parseStatus(status map[string]any) string {
	statusType := asMap(status["type"])
	if statusType == nil {
		return model.DefaultFightStatus
	}
	if boolean(statusType, "completed") {
		return model.StatusCompleted
	}
	switch str(statusType, "state", "") {
	case "in":
		return model.StatusInProgress
	case "post":
		return model.StatusCompleted
	case "pre":
		return model.StatusScheduled
	}
	return model.DefaultFightStatus
}
