package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantrkucb/OrderBookVisualiser/models"
)

// DemoSeedOrders returns the demo book used when SEED_DEMO_BOOK is set: eight
// resting orders spread around 100.50 that leave the book uncrossed.
func DemoSeedOrders() []models.Order {
	mk := func(seq int64, side models.Side, price string, qty int64) models.Order {
		return models.Order{
			SeqID:     seq,
			Side:      side,
			Price:     decimal.RequireFromString(price),
			Quantity:  qty,
			CreatedAt: time.Now(),
		}
	}
	return []models.Order{
		mk(1, models.SideBuy, "100.00", 50),
		mk(2, models.SideSell, "101.00", 30),
		mk(3, models.SideBuy, "99.50", 20),
		mk(4, models.SideSell, "102.50", 15),
		mk(1, models.SideBuy, "98.00", 50),
		mk(2, models.SideSell, "104.00", 30),
		mk(3, models.SideBuy, "98.50", 20),
		mk(4, models.SideSell, "103.50", 15),
	}
}
