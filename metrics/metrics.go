package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	OrdersSubmittedTotal = prometheus.NewCounter(prometheus.CounterOpts{Name: "orders_submitted_total", Help: "Orders accepted by the engine"})
	OrdersRejectedTotal  = prometheus.NewCounter(prometheus.CounterOpts{Name: "orders_rejected_total", Help: "Orders rejected as invalid"})
	OrdersNoopTotal      = prometheus.NewCounter(prometheus.CounterOpts{Name: "orders_noop_total", Help: "Zero-quantity submissions accepted as no-ops"})
	TradesExecutedTotal  = prometheus.NewCounter(prometheus.CounterOpts{Name: "trades_executed_total", Help: "Fills generated by crossing"})
	TradedVolumeTotal    = prometheus.NewCounter(prometheus.CounterOpts{Name: "traded_volume_total", Help: "Total quantity transferred into the trade log"})
	JournalErrorsTotal   = prometheus.NewCounter(prometheus.CounterOpts{Name: "journal_errors_total", Help: "Failed journal writes"})

	SubmitLatencyMs = prometheus.NewHistogram(prometheus.HistogramOpts{Name: "submit_latency_ms", Help: "PlaceOrder latency", Buckets: prometheus.ExponentialBuckets(0.01, 4, 10)})

	BookDepthLevels = prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: "book_depth_levels", Help: "Resting price levels by side"}, []string{"side"})
)

// Init builds a dedicated registry with the engine metrics plus the standard
// Go and process collectors.
func Init() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		OrdersSubmittedTotal, OrdersRejectedTotal, OrdersNoopTotal,
		TradesExecutedTotal, TradedVolumeTotal, JournalErrorsTotal,
		SubmitLatencyMs, BookDepthLevels,
		collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
