package service

import (
	"github.com/shopspring/decimal"

	"github.com/quantrkucb/OrderBookVisualiser/book"
	"github.com/quantrkucb/OrderBookVisualiser/models"
)

// MidPriceUnavailable is reported while either side of the book is empty.
const MidPriceUnavailable = "unavailable"

// BookSnapshot is a point-in-time projection over the book and trade log.
type BookSnapshot struct {
	Bids     []book.Level
	Asks     []book.Level
	Messages []string
	MidPrice string
}

var two = decimal.NewFromInt(2)

// Snapshot returns the current ladders (bids descending, asks ascending), the
// full trade-message log, and the mid price. It takes the same lock as Submit
// so the view is never of a book mid-crossing.
func (e *MatchingEngine) Snapshot() BookSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := BookSnapshot{
		Bids:     e.book.Levels(models.SideBuy),
		Asks:     e.book.Levels(models.SideSell),
		MidPrice: MidPriceUnavailable,
	}
	snap.Messages = make([]string, len(e.trades))
	for i, t := range e.trades {
		snap.Messages[i] = t.Message
	}

	bid, haveBid := e.book.Best(models.SideBuy)
	ask, haveAsk := e.book.Best(models.SideSell)
	if haveBid && haveAsk {
		snap.MidPrice = bid.Price.Add(ask.Price).Div(two).StringFixed(2)
	}
	return snap
}

// Trades returns a copy of the structured trade log, oldest first.
func (e *MatchingEngine) Trades() []models.Trade {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Trade, len(e.trades))
	copy(out, e.trades)
	return out
}

// Depths reports the number of resting bid and ask levels.
func (e *MatchingEngine) Depths() (bids, asks int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.Depth(models.SideBuy), e.book.Depth(models.SideSell)
}
