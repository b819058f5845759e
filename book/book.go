// Package book maintains the resting price levels for a single instrument.
// Same-price orders are aggregated into one level per side; there is no
// per-order identity or time priority inside a level.
package book

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/quantrkucb/OrderBookVisualiser/models"
)

// Level is the aggregate resting quantity at one price on one side.
type Level struct {
	Price    decimal.Decimal
	Quantity int64
}

// PriceLevelBook holds bid and ask levels as two slices kept in canonical
// order: bids by price descending, asks ascending, so index 0 is always the
// best level for its side. Prices are unique within a side.
//
// The book is not safe for concurrent use; callers serialize access.
type PriceLevelBook struct {
	bids []Level
	asks []Level
}

func New() *PriceLevelBook {
	return &PriceLevelBook{}
}

func (b *PriceLevelBook) levels(side models.Side) *[]Level {
	if side == models.SideBuy {
		return &b.bids
	}
	return &b.asks
}

// locate returns the canonical index for price on side, and whether a level
// at exactly that price already exists there.
func (b *PriceLevelBook) locate(side models.Side, price decimal.Decimal) (int, bool) {
	levels := *b.levels(side)
	var i int
	if side == models.SideBuy {
		i = sort.Search(len(levels), func(j int) bool { return levels[j].Price.LessThanOrEqual(price) })
	} else {
		i = sort.Search(len(levels), func(j int) bool { return levels[j].Price.GreaterThanOrEqual(price) })
	}
	if i < len(levels) && levels[i].Price.Equal(price) {
		return i, true
	}
	return i, false
}

// Upsert adds qty to the level at price on side, creating the level if it is
// not there yet. qty must be positive; zero-quantity submissions never reach
// the book.
func (b *PriceLevelBook) Upsert(side models.Side, price decimal.Decimal, qty int64) {
	levels := b.levels(side)
	i, found := b.locate(side, price)
	if found {
		(*levels)[i].Quantity += qty
		return
	}
	*levels = append(*levels, Level{})
	copy((*levels)[i+1:], (*levels)[i:])
	(*levels)[i] = Level{Price: price, Quantity: qty}
}

// Reduce subtracts qty from the level at price, if present. The level stays
// in place even at zero quantity; RemoveIfEmpty drops it.
func (b *PriceLevelBook) Reduce(side models.Side, price decimal.Decimal, qty int64) {
	if i, found := b.locate(side, price); found {
		(*b.levels(side))[i].Quantity -= qty
	}
}

// RemoveIfEmpty drops the level at price on side when its quantity has
// reached zero or below. Idempotent: absent or still-positive levels are
// left alone.
func (b *PriceLevelBook) RemoveIfEmpty(side models.Side, price decimal.Decimal) {
	levels := b.levels(side)
	i, found := b.locate(side, price)
	if !found || (*levels)[i].Quantity > 0 {
		return
	}
	*levels = append((*levels)[:i], (*levels)[i+1:]...)
}

// Best returns the most aggressive level for the side: highest bid or lowest
// ask. The second result is false when the side is empty.
func (b *PriceLevelBook) Best(side models.Side) (Level, bool) {
	levels := *b.levels(side)
	if len(levels) == 0 {
		return Level{}, false
	}
	return levels[0], true
}

// Levels returns a copy of the side's levels in canonical order (bids
// descending, asks ascending). Callers may walk the copy while mutating the
// book through Reduce/RemoveIfEmpty.
func (b *PriceLevelBook) Levels(side models.Side) []Level {
	levels := *b.levels(side)
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// Depth returns the number of resting levels on the side.
func (b *PriceLevelBook) Depth(side models.Side) int {
	return len(*b.levels(side))
}
