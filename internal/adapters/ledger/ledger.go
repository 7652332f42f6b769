// Package ledger keeps the in-process payment analytics record.
//
// The ledger is the one shared mutable resource in the gateway: the payment
// collaborator appends while analytics entrypoints read. A single RWMutex
// serializes both sides so every read observes a consistent prefix. The
// ledger lives for the process lifetime only; persistence across restarts is
// explicitly out of scope.
package ledger

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"

	"fightgate/pkg/metrics"
)

// Tracker is the append-only transaction ledger, oldest first.
type Tracker struct {
	mu      sync.RWMutex
	entries []Transaction
	now     func() time.Time
}

// New creates an empty tracker.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		entries: make([]Transaction, 0),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Record appends a transaction and returns the stored row. The amount is
// copied so later caller mutations cannot reach ledger state; a nil amount
// records zero.
func (t *Tracker) Record(_ context.Context, direction Direction, amount *big.Int, entrypointKey string) Transaction {
	entry := Transaction{
		ID:            uuid.NewString(),
		Direction:     direction,
		Amount:        big.NewInt(0),
		EntrypointKey: entrypointKey,
	}
	if amount != nil {
		entry.Amount.Set(amount)
	}

	t.mu.Lock()
	entry.Timestamp = t.now()
	t.entries = append(t.entries, entry)
	size := len(t.entries)
	t.mu.Unlock()

	metrics.UpdateLedgerSize(size)
	return entry
}

// Count returns the number of ledger rows.
func (t *Tracker) Count(_ context.Context) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Summarize totals the transactions inside the window. A window <= 0 covers
// the full ledger.
func (t *Tracker) Summarize(ctx context.Context, window time.Duration) Summary {
	s := Summary{
		IncomingTotal: big.NewInt(0),
		OutgoingTotal: big.NewInt(0),
		NetTotal:      big.NewInt(0),
	}
	for _, entry := range t.Transactions(ctx, window) {
		switch entry.Direction {
		case DirectionIncoming:
			s.IncomingTotal.Add(s.IncomingTotal, entry.Amount)
		case DirectionOutgoing:
			s.OutgoingTotal.Add(s.OutgoingTotal, entry.Amount)
		}
	}
	s.NetTotal.Sub(s.IncomingTotal, s.OutgoingTotal)
	return s
}

// Transactions returns a copy of the windowed rows, oldest first. No limit is
// applied here; limiting belongs to the caller.
func (t *Tracker) Transactions(_ context.Context, window time.Duration) []Transaction {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entries := t.entries
	if window > 0 {
		cutoff := t.now().Add(-window)
		// Entries are appended in time order, so find the first row at or
		// past the cutoff and take the suffix.
		i := len(entries)
		for idx, entry := range entries {
			if !entry.Timestamp.Before(cutoff) {
				i = idx
				break
			}
		}
		entries = entries[i:]
	}

	out := make([]Transaction, len(entries))
	for i, entry := range entries {
		out[i] = entry
		out[i].Amount = new(big.Int).Set(entry.Amount)
	}
	return out
}
