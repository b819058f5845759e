package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/quantrkucb/OrderBookVisualiser/book"
	"github.com/quantrkucb/OrderBookVisualiser/metrics"
	"github.com/quantrkucb/OrderBookVisualiser/models"
	"github.com/quantrkucb/OrderBookVisualiser/repository"
)

// ErrJournalDisabled is returned by lookups that need the Postgres journal
// when the service runs without one.
var ErrJournalDisabled = errors.New("order journal is not configured")

// OrderService wires the matching engine to the HTTP boundary and the
// optional journal. The engine is the source of truth; journal writes are
// best-effort audit records and never fail a submission.
type OrderService struct {
	Symbol    string
	Engine    *MatchingEngine
	OrderRepo *repository.OrderRepository // nil when the journal is disabled
	TradeRepo *repository.TradeRepository
	Logger    zerolog.Logger
}

func NewOrderService(symbol string, engine *MatchingEngine, orderRepo *repository.OrderRepository, tradeRepo *repository.TradeRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{
		Symbol:    symbol,
		Engine:    engine,
		OrderRepo: orderRepo,
		TradeRepo: tradeRepo,
		Logger:    logger,
	}
}

func (s *OrderService) journalEnabled() bool {
	return s.OrderRepo != nil && s.TradeRepo != nil
}

// PlaceOrder validates and submits one order, journals the outcome, and
// reports the fills generated by this submission.
func (s *OrderService) PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (*models.PlaceOrderResponse, error) {
	started := time.Now()

	side, ok := models.ParseSide(req.Side)
	if !ok {
		metrics.OrdersRejectedTotal.Inc()
		return nil, fmt.Errorf("%w: side must be %q or %q, got %q", ErrInvalidOrder, models.SideBuy, models.SideSell, req.Side)
	}

	order := models.Order{
		ID:        uuid.NewString(),
		SeqID:     req.SeqID,
		Side:      side,
		Price:     req.Price,
		Quantity:  req.Qty(),
		CreatedAt: time.Now(),
	}

	fills, err := s.Engine.Submit(order)
	if err != nil {
		metrics.OrdersRejectedTotal.Inc()
		return nil, err
	}

	var executed int64
	for _, f := range fills {
		executed += f.Quantity
	}
	remaining := order.Quantity - executed
	status := orderStatus(order.Quantity, remaining)

	s.observe(order, fills, executed, started)

	if status != "noop" {
		s.journal(ctx, &order, fills, executed, remaining, status)
	}

	messages := make([]string, len(fills))
	for i, f := range fills {
		messages[i] = f.Message
	}

	s.Logger.Info().
		Str("order_id", order.ID).
		Str("side", string(order.Side)).
		Str("price", order.Price.String()).
		Int64("quantity", order.Quantity).
		Int64("executed", executed).
		Str("status", status).
		Msg("order processed")

	return &models.PlaceOrderResponse{
		OrderID:           order.ID,
		Status:            status,
		ExecutedQuantity:  executed,
		RemainingQuantity: remaining,
		Fills:             messages,
		Message:           "Order placed successfully",
	}, nil
}

func orderStatus(quantity, remaining int64) string {
	switch {
	case quantity == 0:
		return "noop"
	case remaining == 0:
		return "filled"
	case remaining < quantity:
		return "partial"
	default:
		return "open"
	}
}

func (s *OrderService) observe(order models.Order, fills []models.Trade, executed int64, started time.Time) {
	if order.Quantity == 0 {
		metrics.OrdersNoopTotal.Inc()
	} else {
		metrics.OrdersSubmittedTotal.Inc()
	}
	metrics.TradesExecutedTotal.Add(float64(len(fills)))
	metrics.TradedVolumeTotal.Add(float64(executed))
	metrics.SubmitLatencyMs.Observe(float64(time.Since(started).Microseconds()) / 1000.0)

	bids, asks := s.Engine.Depths()
	metrics.BookDepthLevels.WithLabelValues("bid").Set(float64(bids))
	metrics.BookDepthLevels.WithLabelValues("ask").Set(float64(asks))
}

// journal persists the submission and its fills in one transaction. Failures
// are logged and counted, not surfaced: the book has already moved and the
// journal is not part of the matching contract.
func (s *OrderService) journal(ctx context.Context, order *models.Order, fills []models.Trade, executed, remaining int64, status string) {
	if !s.journalEnabled() {
		return
	}

	err := func() error {
		tx, err := s.OrderRepo.DBHelper.PostgresClient.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback()

		rec := models.OrderRecord{
			Order:        *order,
			ExecutedQty:  executed,
			RemainingQty: remaining,
			Status:       status,
		}
		if err := s.OrderRepo.CreateOrder(ctx, tx, &rec); err != nil {
			return fmt.Errorf("journal order: %w", err)
		}
		for i := range fills {
			if err := s.TradeRepo.CreateTrade(ctx, tx, &fills[i]); err != nil {
				return fmt.Errorf("journal trade: %w", err)
			}
		}
		return tx.Commit()
	}()
	if err != nil {
		metrics.JournalErrorsTotal.Inc()
		s.Logger.Warn().Err(err).Str("order_id", order.ID).Msg("journal write failed")
	}
}

// GetOrderBook projects the current ladders, trade log, and mid price.
func (s *OrderService) GetOrderBook(ctx context.Context) *models.OrderBookResponse {
	snap := s.Engine.Snapshot()
	return &models.OrderBookResponse{
		Symbol:   s.Symbol,
		Bids:     toEntries(snap.Bids),
		Asks:     toEntries(snap.Asks),
		TradeLog: snap.Messages,
		MidPrice: snap.MidPrice,
	}
}

func toEntries(levels []book.Level) []models.OrderBookEntry {
	entries := make([]models.OrderBookEntry, len(levels))
	for i, lvl := range levels {
		entries[i] = models.OrderBookEntry{Price: lvl.Price, Quantity: lvl.Quantity}
	}
	return entries
}

// ListTrades returns the journaled fills when a journal is configured, else
// the in-memory session log.
func (s *OrderService) ListTrades(ctx context.Context) ([]models.Trade, error) {
	if s.TradeRepo != nil {
		return s.TradeRepo.ListTrades(ctx)
	}
	return s.Engine.Trades(), nil
}

// GetOrderStatus looks up a journaled submission. The book itself cannot
// answer this: aggregation erases order identity on insert.
func (s *OrderService) GetOrderStatus(ctx context.Context, orderID string) (*models.OrderStatusResponse, error) {
	if s.OrderRepo == nil {
		return nil, ErrJournalDisabled
	}
	rec, err := s.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &models.OrderStatusResponse{
		OrderID:           rec.ID,
		SeqID:             rec.SeqID,
		Side:              rec.Side,
		Price:             rec.Price,
		Quantity:          rec.Quantity,
		ExecutedQuantity:  rec.ExecutedQty,
		RemainingQuantity: rec.RemainingQty,
		Status:            rec.Status,
		CreatedAt:         rec.CreatedAt,
	}, nil
}
