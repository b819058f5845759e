package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an incoming submission. Once aggregated into a price level it has
// no further identity inside the book; ID and SeqID only survive in the journal.
type Order struct {
	ID        string          `json:"id"`
	SeqID     int64           `json:"seq_id"` // caller-supplied, opaque to matching
	Side      Side            `json:"side"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
}

// Trade is one append-only fill record. Price is always the passive (resting)
// level's price, Side the aggressor's.
type Trade struct {
	ID            int64           `json:"id,omitempty"`
	OrderID       string          `json:"order_id"` // aggressor submission
	AggressorSide Side            `json:"aggressor_side"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int64           `json:"quantity"`
	Message       string          `json:"message"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderRecord is a journal row: the submission plus its matching outcome.
type OrderRecord struct {
	Order
	ExecutedQty  int64  `json:"executed_quantity"`
	RemainingQty int64  `json:"remaining_quantity"`
	Status       string `json:"status"`
}
