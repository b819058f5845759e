package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PlaceOrderResponse struct {
	OrderID           string   `json:"order_id"`
	Status            string   `json:"status"` // "open", "partial", "filled", "noop"
	ExecutedQuantity  int64    `json:"executed_quantity"`
	RemainingQuantity int64    `json:"remaining_quantity"`
	Fills             []string `json:"fills,omitempty"`
	Message           string   `json:"message,omitempty"`
}

type OrderBookEntry struct {
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// OrderBookResponse is the pull-based read model: bids best-first (price
// descending), asks best-first (ascending), the full trade-message log, and
// the mid price or "unavailable" when either side is empty.
type OrderBookResponse struct {
	Symbol   string           `json:"symbol"`
	Bids     []OrderBookEntry `json:"bids"`
	Asks     []OrderBookEntry `json:"asks"`
	TradeLog []string         `json:"trade_log"`
	MidPrice string           `json:"mid_price"`
}

type OrderStatusResponse struct {
	OrderID           string          `json:"order_id"`
	SeqID             int64           `json:"seq_id"`
	Side              Side            `json:"side"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int64           `json:"quantity"`
	ExecutedQuantity  int64           `json:"executed_quantity"`
	RemainingQuantity int64           `json:"remaining_quantity"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
}
