package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantrkucb/OrderBookVisualiser/metrics"
	"github.com/quantrkucb/OrderBookVisualiser/models"
	"github.com/quantrkucb/OrderBookVisualiser/routes"
	"github.com/quantrkucb/OrderBookVisualiser/service"
)

func newTestRouter(t *testing.T, seed ...models.Order) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine, err := service.NewMatchingEngine(seed...)
	require.NoError(t, err)
	svc := service.NewOrderService("TEST", engine, nil, nil, zerolog.Nop())

	router := gin.New()
	routes.RegisterRoutes(router, svc, metrics.Init())
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPlaceOrderEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		check      func(t *testing.T, body map[string]any)
	}{
		{
			name:       "valid buy order rests open",
			body:       `{"side": "B", "price": 100.00, "quantity": 50}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "open", body["status"])
				assert.Equal(t, float64(50), body["remaining_quantity"])
				assert.NotEmpty(t, body["order_id"])
			},
		},
		{
			name:       "zero quantity is an accepted noop",
			body:       `{"side": "S", "price": 100.00, "quantity": 0}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "noop", body["status"])
			},
		},
		{
			name:       "unknown side fails validation",
			body:       `{"side": "X", "price": 100.00, "quantity": 50}`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Contains(t, body, "validation_errors")
			},
		},
		{
			name:       "negative quantity fails validation",
			body:       `{"side": "B", "price": 100.00, "quantity": -5}`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Contains(t, body, "validation_errors")
			},
		},
		{
			name:       "missing quantity fails validation",
			body:       `{"side": "B", "price": 100.00}`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Contains(t, body, "validation_errors")
			},
		},
		{
			name:       "malformed body",
			body:       `{"side": `,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Contains(t, body, "error")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)

			w := doJSON(t, router, http.MethodPost, "/api/orders", tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			tt.check(t, body)
		})
	}
}

func TestPlaceOrderCrossExposesFills(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/orders", `{"side": "B", "price": 100.00, "quantity": 50}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/orders", `{"side": "S", "price": 100.00, "quantity": 60}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PlaceOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "partial", resp.Status)
	assert.Equal(t, int64(50), resp.ExecutedQuantity)
	assert.Equal(t, int64(10), resp.RemainingQuantity)
	require.Len(t, resp.Fills, 1)
	assert.Equal(t, "Trade: Sell order 50 at 100.00", resp.Fills[0])
}

func TestOrderBookEndpoint(t *testing.T) {
	router := newTestRouter(t, service.DemoSeedOrders()...)

	w := doJSON(t, router, http.MethodGet, "/api/orderbook", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.OrderBookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "TEST", resp.Symbol)
	assert.Len(t, resp.Bids, 4)
	assert.Len(t, resp.Asks, 4)
	assert.Equal(t, "100.50", resp.MidPrice)
	assert.Empty(t, resp.TradeLog)
}

func TestOrderBookEndpointEmptyBook(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/orderbook", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.OrderBookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unavailable", resp.MidPrice)
}

func TestTradesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/orders", `{"side": "S", "price": 100.00, "quantity": 10}`)
	doJSON(t, router, http.MethodPost, "/api/orders", `{"side": "B", "price": 100.00, "quantity": 10}`)

	w := doJSON(t, router, http.MethodGet, "/api/trades", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Trades []models.Trade `json:"trades"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Trades, 1)
	assert.Equal(t, "Trade: Buy order 10 at 100.00", resp.Trades[0].Message)
}

func TestOrderStatusEndpointWithoutJournal(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/orders/%s", "some-id"), "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthzEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/orders", `{"side": "B", "price": 100.00, "quantity": 50}`)

	w := doJSON(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "orders_submitted_total"))
}
