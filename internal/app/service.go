// Package app composes the gateway core: the entrypoint registry, the
// upstream fetch + normalize pipeline behind each handler, and the payment
// analytics ledger. The HTTP adapter talks only to this package.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fightgate/internal/adapters/ledger"
	"fightgate/internal/adapters/upstream"
	"fightgate/internal/payment"
	"fightgate/pkg/logger"
	"fightgate/pkg/metrics"
)

// Fetcher is the upstream dependency of the data-bearing entrypoints.
type Fetcher interface {
	FetchScoreboard(ctx context.Context, dateFilter string) (map[string]any, error)
}

// Service implements the gateway operations behind the HTTP API.
type Service struct {
	registry  *Registry
	fetcher   Fetcher
	tracker   *ledger.Tracker
	collector payment.Collector
	logger    logger.Logger
	now       func() time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFetcher sets the upstream scoreboard client.
func WithFetcher(f Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithTracker sets the payment analytics ledger.
func WithTracker(t *ledger.Tracker) Option {
	return func(s *Service) {
		if t != nil {
			s.tracker = t
		}
	}
}

// WithCollector sets the payment capability enforced around priced dispatch.
func WithCollector(c payment.Collector) Option {
	return func(s *Service) {
		if c != nil {
			s.collector = c
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock injects the time source used for fetchedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs the service and registers the fixed operation catalog.
// Registration failures are configuration errors and fatal to startup.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		registry: NewRegistry(),
		fetcher:  upstream.New(),
		tracker:  ledger.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.collector == nil {
		s.collector = payment.NewLedgerCollector(s.tracker)
	}

	if err := s.registerEntrypoints(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dispatch runs one entrypoint call: descriptor lookup, schema validation,
// payment collection for priced keys, then the handler. Validation failures
// reject before any payment or handler work. Handler errors propagate
// wrapped, never swallowed.
func (s *Service) Dispatch(ctx context.Context, key string, raw map[string]any) (any, error) {
	desc, err := s.registry.Describe(key)
	if err != nil {
		metrics.RecordDispatch(key, "unknown_key")
		return nil, err
	}

	in, err := desc.Schema.Validate(raw)
	if err != nil {
		metrics.RecordDispatch(key, "invalid_input")
		return nil, fmt.Errorf("entrypoint %s: %w", key, err)
	}

	if err := s.collector.Collect(ctx, key, desc.Price); err != nil {
		metrics.RecordDispatch(key, "payment_declined")
		s.logger.Warn(ctx, "payment collection failed",
			logger.String("entrypoint", key), logger.Error(err))
		if errors.Is(err, payment.ErrDeclined) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", payment.ErrDeclined, err)
	}

	out, err := desc.Handler(ctx, in)
	if err != nil {
		metrics.RecordDispatch(key, "handler_error")
		s.logger.Error(ctx, "entrypoint handler failed",
			logger.String("entrypoint", key), logger.Error(err))
		return nil, fmt.Errorf("entrypoint %s: %w", key, err)
	}

	metrics.RecordDispatch(key, "success")
	return out, nil
}

// Catalog exposes the descriptor metadata without invoking any handler.
func (s *Service) Catalog() []Descriptor {
	return s.registry.Catalog()
}

// Tracker exposes the ledger for the payment collaborator and for stats.
func (s *Service) Tracker() *ledger.Tracker {
	return s.tracker
}

// GetStats returns current service statistics.
func (s *Service) GetStats() map[string]any {
	return map[string]any{
		"entrypoints":        len(s.registry.Catalog()),
		"ledgerTransactions": s.tracker.Count(context.Background()),
	}
}
