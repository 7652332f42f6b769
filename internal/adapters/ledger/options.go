package ledger

import "time"

// Option applies a configuration option to the Tracker.
type Option func(*Tracker)

// WithClock injects the time source used for timestamps and window cutoffs.
// Tests use a fixed clock to make windows deterministic.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}
