package book

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantrkucb/OrderBookVisualiser/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func prices(levels []Level) []string {
	out := make([]string, len(levels))
	for i, lvl := range levels {
		out[i] = lvl.Price.String()
	}
	return out
}

func TestUpsertKeepsCanonicalOrder(t *testing.T) {
	b := New()

	b.Upsert(models.SideBuy, d("99.50"), 20)
	b.Upsert(models.SideBuy, d("100"), 50)
	b.Upsert(models.SideBuy, d("98"), 10)

	b.Upsert(models.SideSell, d("102.50"), 15)
	b.Upsert(models.SideSell, d("101"), 30)
	b.Upsert(models.SideSell, d("104"), 5)

	assert.Equal(t, []string{"100", "99.5", "98"}, prices(b.Levels(models.SideBuy)), "bids descend")
	assert.Equal(t, []string{"101", "102.5", "104"}, prices(b.Levels(models.SideSell)), "asks ascend")
}

func TestUpsertMergesSamePrice(t *testing.T) {
	b := New()

	b.Upsert(models.SideBuy, d("99.00"), 10)
	b.Upsert(models.SideBuy, d("99"), 10)

	levels := b.Levels(models.SideBuy)
	require.Len(t, levels, 1, "same-price orders aggregate into one level")
	assert.Equal(t, int64(20), levels[0].Quantity)
}

func TestBest(t *testing.T) {
	b := New()

	_, ok := b.Best(models.SideBuy)
	assert.False(t, ok, "empty side has no best level")

	b.Upsert(models.SideBuy, d("98"), 10)
	b.Upsert(models.SideBuy, d("100"), 50)
	b.Upsert(models.SideSell, d("104"), 5)
	b.Upsert(models.SideSell, d("101"), 30)

	bid, ok := b.Best(models.SideBuy)
	require.True(t, ok)
	assert.True(t, bid.Price.Equal(d("100")), "best bid is the highest price")

	ask, ok := b.Best(models.SideSell)
	require.True(t, ok)
	assert.True(t, ask.Price.Equal(d("101")), "best ask is the lowest price")
}

func TestReduceAndRemoveIfEmpty(t *testing.T) {
	b := New()
	b.Upsert(models.SideSell, d("101"), 30)

	b.Reduce(models.SideSell, d("101"), 10)
	b.RemoveIfEmpty(models.SideSell, d("101"))
	require.Equal(t, 1, b.Depth(models.SideSell), "positive levels are kept")
	lvl, _ := b.Best(models.SideSell)
	assert.Equal(t, int64(20), lvl.Quantity)

	b.Reduce(models.SideSell, d("101"), 20)
	b.RemoveIfEmpty(models.SideSell, d("101"))
	assert.Equal(t, 0, b.Depth(models.SideSell), "exhausted level is removed")

	// Idempotent on absent prices.
	b.RemoveIfEmpty(models.SideSell, d("101"))
	b.Reduce(models.SideSell, d("101"), 5)
	assert.Equal(t, 0, b.Depth(models.SideSell))
}

func TestLevelsReturnsCopy(t *testing.T) {
	b := New()
	b.Upsert(models.SideBuy, d("100"), 50)

	levels := b.Levels(models.SideBuy)
	levels[0].Quantity = 1

	fresh := b.Levels(models.SideBuy)
	assert.Equal(t, int64(50), fresh[0].Quantity, "mutating the snapshot must not touch the book")
}
