// Package payment is the seam between the gateway and whatever mechanism
// actually moves funds. The gateway core only declares prices; a Collector
// enforces them around dispatch. Swapping the settlement protocol means
// swapping the Collector, nothing in the core changes.
package payment

import (
	"context"
	"errors"
	"math/big"

	"fightgate/internal/adapters/ledger"
	"fightgate/pkg/metrics"
)

// ErrDeclined reports that payment collection failed; the handler must not
// run and nothing is recorded.
var ErrDeclined = errors.New("payment declined")

// Collector settles the declared price for one call of an entrypoint before
// its handler runs. A price of zero marks a free operation and must be a
// no-op.
type Collector interface {
	Collect(ctx context.Context, entrypointKey string, price int64) error
}

// NopCollector approves every call without recording anything. Used when the
// gateway runs without a payment layer.
type NopCollector struct{}

// Collect implements Collector.
func (NopCollector) Collect(context.Context, string, int64) error { return nil }

// LedgerCollector appends an incoming ledger transaction for every priced
// call. It stands in for the external settlement collaborator: funds are
// assumed collected by the hosting layer and only the analytics record is
// produced here.
type LedgerCollector struct {
	tracker *ledger.Tracker
}

// NewLedgerCollector creates a collector writing to tracker.
func NewLedgerCollector(tracker *ledger.Tracker) *LedgerCollector {
	return &LedgerCollector{tracker: tracker}
}

// Collect implements Collector.
func (c *LedgerCollector) Collect(ctx context.Context, entrypointKey string, price int64) error {
	if price <= 0 {
		return nil
	}
	c.tracker.Record(ctx, ledger.DirectionIncoming, big.NewInt(price), entrypointKey)
	metrics.AddRevenue(entrypointKey, float64(price))
	return nil
}
