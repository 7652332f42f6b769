package ledger

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"
)

// csvHeader is the fixed export header. An empty window still yields this
// row, keeping the output parseable.
var csvHeader = []string{"id", "timestamp", "direction", "amount", "entrypointKey"}

// ExportCSV serializes the windowed transaction set as CSV, header row first,
// oldest transaction first. Timestamps use RFC3339Nano so the export
// round-trips without losing precision.
func (t *Tracker) ExportCSV(ctx context.Context, window time.Duration) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("writing csv header: %w", err)
	}
	for _, entry := range t.Transactions(ctx, window) {
		row := []string{
			entry.ID,
			entry.Timestamp.Format(time.RFC3339Nano),
			string(entry.Direction),
			amountString(entry.Amount),
			entry.EntrypointKey,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing csv: %w", err)
	}
	return sb.String(), nil
}
