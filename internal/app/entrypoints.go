package app

import (
	"context"
	"regexp"
	"time"

	"fightgate/internal/adapters/ledger"
	"fightgate/internal/adapters/upstream"
	"fightgate/internal/app/schema"
	"fightgate/internal/domain/calendar"
	"fightgate/internal/domain/model"
	"fightgate/internal/domain/normalize"
	"fightgate/internal/domain/search"
)

// Entrypoint keys. The catalog is fixed; nothing registers at runtime.
const (
	KeyOverview              = "overview"
	KeyEvent                 = "event"
	KeyEventsByDate          = "events-by-date"
	KeySearch                = "search"
	KeyFightCard             = "fight-card"
	KeyCalendar              = "calendar"
	KeyAnalytics             = "analytics"
	KeyAnalyticsTransactions = "analytics-transactions"
	KeyAnalyticsCSV          = "analytics-csv"
)

// Prices in minor currency units. Zero marks a free operation.
const (
	PriceEvent        int64 = 1000
	PriceEventsByDate int64 = 1000
	PriceSearch       int64 = 2000
	PriceFightCard    int64 = 2000
	PriceCalendar     int64 = 3000
)

// Documented defaults for optional inputs.
const (
	defaultCalendarLimit     = 10
	defaultTransactionsLimit = 50
)

var datePattern = regexp.MustCompile(`^\d{8}$`)

// eventNotFoundMessage is returned as a successful output, not an error.
// Upstream failures raise; a missing event id does not. Both propagation
// styles are part of the published behavior.
const eventNotFoundMessage = "Event not found"

// Wire shapes returned by entrypoint handlers. Data-bearing outputs always
// carry fetchedAt.
type overviewOutput struct {
	FetchedAt  time.Time            `json:"fetchedAt"`
	EventCount int                  `json:"eventCount"`
	Events     []model.EventSummary `json:"events"`
}

type eventOutput struct {
	FetchedAt time.Time         `json:"fetchedAt"`
	Event     model.EventDetail `json:"event"`
}

type eventsByDateOutput struct {
	FetchedAt  time.Time            `json:"fetchedAt"`
	Date       string               `json:"date"`
	EventCount int                  `json:"eventCount"`
	Events     []model.EventSummary `json:"events"`
}

type searchOutput struct {
	FetchedAt  time.Time            `json:"fetchedAt"`
	Query      string               `json:"query"`
	MatchCount int                  `json:"matchCount"`
	Results    []model.EventSummary `json:"results"`
}

type fightCardOutput struct {
	FetchedAt time.Time              `json:"fetchedAt"`
	EventID   string                 `json:"eventId"`
	EventName string                 `json:"eventName"`
	Fights    []model.FightCardEntry `json:"fights"`
}

type calendarOutput struct {
	FetchedAt      time.Time            `json:"fetchedAt"`
	Limit          int                  `json:"limit"`
	UpcomingCount  int                  `json:"upcomingCount"`
	CompletedCount int                  `json:"completedCount"`
	Upcoming       []model.EventSummary `json:"upcoming"`
	Completed      []model.EventSummary `json:"completed"`
}

type notFoundOutput struct {
	Error   string `json:"error"`
	EventID string `json:"eventId"`
}

type analyticsOutput struct {
	GeneratedAt      time.Time      `json:"generatedAt"`
	WindowMS         int            `json:"windowMs,omitempty"`
	TransactionCount int            `json:"transactionCount"`
	Summary          ledger.Summary `json:"summary"`
}

type transactionsOutput struct {
	GeneratedAt  time.Time            `json:"generatedAt"`
	WindowMS     int                  `json:"windowMs,omitempty"`
	Limit        int                  `json:"limit"`
	Count        int                  `json:"count"`
	Transactions []ledger.Transaction `json:"transactions"`
}

type csvOutput struct {
	GeneratedAt time.Time `json:"generatedAt"`
	WindowMS    int       `json:"windowMs,omitempty"`
	Count       int       `json:"count"`
	CSV         string    `json:"csv"`
}

// registerEntrypoints declares the full operation catalog.
func (s *Service) registerEntrypoints() error {
	descriptors := []Descriptor{
		{
			Key:         KeyOverview,
			Description: "List all events in the current scoreboard snapshot",
			Schema:      schema.New(),
			Handler:     s.handleOverview,
		},
		{
			Key:         KeyEvent,
			Description: "Full detail for a single event, fights included",
			Schema:      schema.New(schema.RequiredString("eventId")),
			Price:       PriceEvent,
			Handler:     s.handleEvent,
		},
		{
			Key:         KeyEventsByDate,
			Description: "Events on a given date (YYYYMMDD)",
			Schema:      schema.New(schema.RequiredPattern("date", datePattern)),
			Price:       PriceEventsByDate,
			Handler:     s.handleEventsByDate,
		},
		{
			Key:         KeySearch,
			Description: "Case-insensitive search over event names and fighter names",
			Schema:      schema.New(schema.RequiredString("query")),
			Price:       PriceSearch,
			Handler:     s.handleSearch,
		},
		{
			Key:         KeyFightCard,
			Description: "Ordered fight card for an event, main event first",
			Schema:      schema.New(schema.RequiredString("eventId")),
			Price:       PriceFightCard,
			Handler:     s.handleFightCard,
		},
		{
			Key:         KeyCalendar,
			Description: "Upcoming and completed events from the snapshot head",
			Schema:      schema.New(schema.OptionalInt("limit", defaultCalendarLimit)),
			Price:       PriceCalendar,
			Handler:     s.handleCalendar,
		},
		{
			Key:         KeyAnalytics,
			Description: "Payment totals over the full ledger or a trailing window",
			Schema:      schema.New(schema.OptionalIntNoDefault("windowMs")),
			Handler:     s.handleAnalytics,
		},
		{
			Key:         KeyAnalyticsTransactions,
			Description: "Windowed payment transactions, oldest first",
			Schema: schema.New(
				schema.OptionalIntNoDefault("windowMs"),
				schema.OptionalInt("limit", defaultTransactionsLimit),
			),
			Handler: s.handleAnalyticsTransactions,
		},
		{
			Key:         KeyAnalyticsCSV,
			Description: "Windowed payment transactions as CSV",
			Schema:      schema.New(schema.OptionalIntNoDefault("windowMs")),
			Handler:     s.handleAnalyticsCSV,
		},
	}

	for _, d := range descriptors {
		if err := s.registry.Register(d); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) handleOverview(ctx context.Context, _ map[string]any) (any, error) {
	events, err := s.fetchEvents(ctx, "")
	if err != nil {
		return nil, err
	}
	summaries := make([]model.EventSummary, 0, len(events))
	for _, rawEvent := range events {
		summaries = append(summaries, normalize.ParseEventSummary(rawEvent))
	}
	return overviewOutput{
		FetchedAt:  s.now().UTC(),
		EventCount: len(summaries),
		Events:     summaries,
	}, nil
}

func (s *Service) handleEvent(ctx context.Context, in map[string]any) (any, error) {
	eventID := schema.Str(in, "eventId")
	events, err := s.fetchEvents(ctx, "")
	if err != nil {
		return nil, err
	}
	rawEvent := findEvent(events, eventID)
	if rawEvent == nil {
		return notFoundOutput{Error: eventNotFoundMessage, EventID: eventID}, nil
	}
	return eventOutput{
		FetchedAt: s.now().UTC(),
		Event:     normalize.ParseEventDetail(rawEvent),
	}, nil
}

func (s *Service) handleEventsByDate(ctx context.Context, in map[string]any) (any, error) {
	date := schema.Str(in, "date")
	events, err := s.fetchEvents(ctx, date)
	if err != nil {
		return nil, err
	}
	summaries := make([]model.EventSummary, 0, len(events))
	for _, rawEvent := range events {
		summaries = append(summaries, normalize.ParseEventSummary(rawEvent))
	}
	return eventsByDateOutput{
		FetchedAt:  s.now().UTC(),
		Date:       date,
		EventCount: len(summaries),
		Events:     summaries,
	}, nil
}

func (s *Service) handleSearch(ctx context.Context, in map[string]any) (any, error) {
	query := schema.Str(in, "query")
	events, err := s.fetchEvents(ctx, "")
	if err != nil {
		return nil, err
	}
	results := search.Match(events, query)
	return searchOutput{
		FetchedAt:  s.now().UTC(),
		Query:      query,
		MatchCount: len(results),
		Results:    results,
	}, nil
}

func (s *Service) handleFightCard(ctx context.Context, in map[string]any) (any, error) {
	eventID := schema.Str(in, "eventId")
	events, err := s.fetchEvents(ctx, "")
	if err != nil {
		return nil, err
	}
	rawEvent := findEvent(events, eventID)
	if rawEvent == nil {
		return notFoundOutput{Error: eventNotFoundMessage, EventID: eventID}, nil
	}
	return fightCardOutput{
		FetchedAt: s.now().UTC(),
		EventID:   eventID,
		EventName: normalize.ParseEventSummary(rawEvent).Name,
		Fights:    normalize.BuildFightCard(rawEvent),
	}, nil
}

func (s *Service) handleCalendar(ctx context.Context, in map[string]any) (any, error) {
	limit := schema.Int(in, "limit", defaultCalendarLimit)
	events, err := s.fetchEvents(ctx, "")
	if err != nil {
		return nil, err
	}
	now := s.now()
	cal := calendar.Build(events, limit, now)
	return calendarOutput{
		FetchedAt:      now.UTC(),
		Limit:          limit,
		UpcomingCount:  len(cal.Upcoming),
		CompletedCount: len(cal.Completed),
		Upcoming:       cal.Upcoming,
		Completed:      cal.Completed,
	}, nil
}

func (s *Service) handleAnalytics(ctx context.Context, in map[string]any) (any, error) {
	windowMS := schema.Int(in, "windowMs", 0)
	window := time.Duration(windowMS) * time.Millisecond
	return analyticsOutput{
		GeneratedAt:      s.now().UTC(),
		WindowMS:         windowMS,
		TransactionCount: len(s.tracker.Transactions(ctx, window)),
		Summary:          s.tracker.Summarize(ctx, window),
	}, nil
}

func (s *Service) handleAnalyticsTransactions(ctx context.Context, in map[string]any) (any, error) {
	windowMS := schema.Int(in, "windowMs", 0)
	limit := schema.Int(in, "limit", defaultTransactionsLimit)

	// The tracker returns the full window; the limit applies afterwards,
	// keeping the newest rows.
	transactions := s.tracker.Transactions(ctx, time.Duration(windowMS)*time.Millisecond)
	if limit > 0 && len(transactions) > limit {
		transactions = transactions[len(transactions)-limit:]
	}
	return transactionsOutput{
		GeneratedAt:  s.now().UTC(),
		WindowMS:     windowMS,
		Limit:        limit,
		Count:        len(transactions),
		Transactions: transactions,
	}, nil
}

func (s *Service) handleAnalyticsCSV(ctx context.Context, in map[string]any) (any, error) {
	windowMS := schema.Int(in, "windowMs", 0)
	window := time.Duration(windowMS) * time.Millisecond
	csv, err := s.tracker.ExportCSV(ctx, window)
	if err != nil {
		return nil, err
	}
	return csvOutput{
		GeneratedAt: s.now().UTC(),
		WindowMS:    windowMS,
		Count:       len(s.tracker.Transactions(ctx, window)),
		CSV:         csv,
	}, nil
}

// fetchEvents performs the single-attempt scoreboard read and extracts the
// raw event list.
func (s *Service) fetchEvents(ctx context.Context, dateFilter string) ([]map[string]any, error) {
	scoreboard, err := s.fetcher.FetchScoreboard(ctx, dateFilter)
	if err != nil {
		return nil, err
	}
	return upstream.Events(scoreboard), nil
}

// findEvent locates a raw event by id in the current snapshot.
func findEvent(events []map[string]any, eventID string) map[string]any {
	for _, rawEvent := range events {
		if id, _ := rawEvent["id"].(string); id == eventID {
			return rawEvent
		}
	}
	return nil
}
