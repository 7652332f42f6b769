package ledger

import (
	"encoding/json"
	"math/big"
	"time"
)

// Direction tags which way funds moved relative to the gateway.
type Direction string

// Transaction directions.
const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

// Transaction is one append-only ledger row. Amount is arbitrary precision
// and held in minor currency units.
type Transaction struct {
	ID            string
	Timestamp     time.Time
	Direction     Direction
	Amount        *big.Int
	EntrypointKey string
}

// transactionWire is the serialization shape; Amount crosses the JSON
// boundary as text to avoid precision loss.
type transactionWire struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Direction     Direction `json:"direction"`
	Amount        string    `json:"amount"`
	EntrypointKey string    `json:"entrypointKey"`
}

// MarshalJSON serializes the amount as a decimal string.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(transactionWire{
		ID:            t.ID,
		Timestamp:     t.Timestamp,
		Direction:     t.Direction,
		Amount:        amountString(t.Amount),
		EntrypointKey: t.EntrypointKey,
	})
}

// Summary aggregates a transaction window. Net follows the accounting
// identity net = incoming - outgoing.
type Summary struct {
	IncomingTotal *big.Int
	OutgoingTotal *big.Int
	NetTotal      *big.Int
}

type summaryWire struct {
	IncomingTotal string `json:"incomingTotal"`
	OutgoingTotal string `json:"outgoingTotal"`
	NetTotal      string `json:"netTotal"`
}

// MarshalJSON serializes the totals as decimal strings.
func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(summaryWire{
		IncomingTotal: amountString(s.IncomingTotal),
		OutgoingTotal: amountString(s.OutgoingTotal),
		NetTotal:      amountString(s.NetTotal),
	})
}

func amountString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
