package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantrkucb/OrderBookVisualiser/book"
	"github.com/quantrkucb/OrderBookVisualiser/models"
)

// ErrInvalidOrder is returned by Submit for malformed input: unknown side,
// non-positive price, or negative quantity. The book is never touched on
// rejection.
var ErrInvalidOrder = errors.New("invalid order")

// MatchingEngine owns one PriceLevelBook and the session trade log for a
// single instrument. Every Submit runs to completion under one mutex, and the
// read-model projections take the same lock, so no caller ever observes a
// book mid-crossing.
type MatchingEngine struct {
	mu     sync.Mutex
	book   *book.PriceLevelBook
	trades []models.Trade
}

// NewMatchingEngine builds an engine with an empty book. Seed orders, if any,
// are replayed through Submit in order, trades included.
func NewMatchingEngine(seed ...models.Order) (*MatchingEngine, error) {
	e := &MatchingEngine{book: book.New()}
	for i, o := range seed {
		if _, err := e.Submit(o); err != nil {
			return nil, fmt.Errorf("seed order %d: %w", i, err)
		}
	}
	return e, nil
}

func validateOrder(o models.Order) error {
	if !o.Side.Valid() {
		return fmt.Errorf("%w: side must be %q or %q, got %q", ErrInvalidOrder, models.SideBuy, models.SideSell, string(o.Side))
	}
	if o.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative, got %d", ErrInvalidOrder, o.Quantity)
	}
	if o.Price.Sign() <= 0 {
		return fmt.Errorf("%w: price must be positive, got %s", ErrInvalidOrder, o.Price)
	}
	return nil
}

// Submit processes one order to a quiescent stop: the order is aggregated
// into its own side first, then crossed against the opposite side in price
// priority until either the order or the eligible liquidity runs out. Each
// step trades min(remaining, level quantity) at the resting level's price.
// Returns the fills generated by this submission; a zero-quantity order is an
// accepted no-op.
func (e *MatchingEngine) Submit(order models.Order) ([]models.Trade, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if order.Quantity == 0 {
		return nil, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.book.Upsert(order.Side, order.Price, order.Quantity)

	opposite := order.Side.Opposite()
	remaining := order.Quantity
	var fills []models.Trade
	// Walk a snapshot of the opposite side so removals below cannot
	// invalidate the iteration.
	for _, lvl := range e.book.Levels(opposite) {
		if remaining == 0 || !crosses(order.Side, order.Price, lvl.Price) {
			break
		}
		traded := min(remaining, lvl.Quantity)
		remaining -= traded
		e.book.Reduce(opposite, lvl.Price, traded)
		e.book.RemoveIfEmpty(opposite, lvl.Price)

		fill := models.Trade{
			OrderID:       order.ID,
			AggressorSide: order.Side,
			Price:         lvl.Price,
			Quantity:      traded,
			Message:       tradeMessage(order.Side, traded, lvl.Price),
			CreatedAt:     time.Now(),
		}
		fills = append(fills, fill)
		e.trades = append(e.trades, fill)
	}

	// The aggressor's own resting contribution traded away too.
	if matched := order.Quantity - remaining; matched > 0 {
		e.book.Reduce(order.Side, order.Price, matched)
		e.book.RemoveIfEmpty(order.Side, order.Price)
	}
	return fills, nil
}

// crosses reports whether an aggressor at price may trade against a resting
// level. The comparison is inclusive: matching the best opposite price
// exactly always trades.
func crosses(aggressor models.Side, price, level decimal.Decimal) bool {
	if aggressor == models.SideBuy {
		return price.GreaterThanOrEqual(level)
	}
	return price.LessThanOrEqual(level)
}

func tradeMessage(aggressor models.Side, qty int64, price decimal.Decimal) string {
	return fmt.Sprintf("Trade: %s order %d at %s", aggressor.Verb(), qty, price.StringFixed(2))
}

func min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
