package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quantrkucb/OrderBookVisualiser/db/postgres/providers"
	"github.com/quantrkucb/OrderBookVisualiser/models"
)

// ErrOrderNotFound reports a lookup for an id the journal has never seen.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository journals accepted submissions together with their matching
// outcome. It is an audit trail only: the in-memory book is never rebuilt
// from these rows.
type OrderRepository struct {
	DBHelper *providers.DBHelper
}

func NewOrderRepository(db *providers.DBHelper) *OrderRepository {
	return &OrderRepository{DBHelper: db}
}

// CreateOrder inserts one journal row for an accepted submission.
func (r *OrderRepository) CreateOrder(ctx context.Context, tx *sql.Tx, rec *models.OrderRecord) error {
	query := `
		INSERT INTO orders (id, seq_id, side, price, quantity, executed_quantity, remaining_quantity, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := tx.ExecContext(ctx, query,
		rec.ID, rec.SeqID, string(rec.Side), rec.Price,
		rec.Quantity, rec.ExecutedQty, rec.RemainingQty, rec.Status, rec.CreatedAt,
	)
	return err
}

// GetOrderByID fetches one journaled submission by id.
func (r *OrderRepository) GetOrderByID(ctx context.Context, id string) (*models.OrderRecord, error) {
	query := `
		SELECT id, seq_id, side, price, quantity, executed_quantity, remaining_quantity, status, created_at
		FROM orders WHERE id = $1`
	var rec models.OrderRecord
	var side string
	err := r.DBHelper.PostgresClient.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.SeqID, &side, &rec.Price,
		&rec.Quantity, &rec.ExecutedQty, &rec.RemainingQty, &rec.Status, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	rec.Side = models.Side(side)
	return &rec, nil
}
