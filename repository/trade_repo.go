package repository

import (
	"context"
	"database/sql"

	"github.com/quantrkucb/OrderBookVisualiser/db/postgres/providers"
	"github.com/quantrkucb/OrderBookVisualiser/models"
)

// TradeRepository journals fills. Like the order journal this is append-only
// audit data, never read back into the engine.
type TradeRepository struct {
	DBHelper *providers.DBHelper
}

func NewTradeRepository(db *providers.DBHelper) *TradeRepository {
	return &TradeRepository{DBHelper: db}
}

// CreateTrade saves one fill and fills in its journal id.
func (r *TradeRepository) CreateTrade(ctx context.Context, tx *sql.Tx, trade *models.Trade) error {
	query := `
		INSERT INTO trades (order_id, aggressor_side, price, quantity, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	return tx.QueryRowContext(ctx, query,
		trade.OrderID,
		string(trade.AggressorSide),
		trade.Price,
		trade.Quantity,
		trade.Message,
		trade.CreatedAt,
	).Scan(&trade.ID)
}

// ListTrades fetches all journaled fills, oldest first.
func (r *TradeRepository) ListTrades(ctx context.Context) ([]models.Trade, error) {
	query := `
		SELECT id, order_id, aggressor_side, price, quantity, message, created_at
		FROM trades
		ORDER BY id ASC`
	rows, err := r.DBHelper.PostgresClient.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		var t models.Trade
		var side string
		if err := rows.Scan(&t.ID, &t.OrderID, &side, &t.Price, &t.Quantity, &t.Message, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.AggressorSide = models.Side(side)
		trades = append(trades, t)
	}
	return trades, rows.Err()
}
