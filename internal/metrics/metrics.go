// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	TransactionsTotal  *prometheus.CounterVec
	TransactionLines   *prometheus.CounterVec
	ShortagesTotal     prometheus.Counter
	NotificationsTotal *prometheus.CounterVec
	CountsPostedTotal  prometheus.Counter
	CountAdjustments   *prometheus.CounterVec
	CountLinesFlagged  prometheus.Counter
}

func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method", "path"}),
		TransactionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_transactions_total",
			Help:      "Committed ledger transactions",
		}, []string{"type"}),
		TransactionLines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_transaction_lines_total",
			Help:      "Committed ledger transaction lines",
		}, []string{"type"}),
		ShortagesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_shortages_total",
			Help:      "Issue requests rejected or backordered for insufficient stock",
		}),
		NotificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_notifications_total",
			Help:      "Post-commit notifications by outcome",
		}, []string{"status"}),
		CountsPostedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_counts_posted_total",
			Help:      "Stock counts posted to the ledger",
		}),
		CountAdjustments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_count_adjustments_total",
			Help:      "Adjustments created from stock count lines",
		}, []string{"mode"}),
		CountLinesFlagged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_count_lines_flagged_total",
			Help:      "Count lines held for review because the variance exceeded the threshold",
		}),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.TransactionsTotal,
		m.TransactionLines,
		m.ShortagesTotal,
		m.NotificationsTotal,
		m.CountsPostedTotal,
		m.CountAdjustments,
		m.CountLinesFlagged,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveTransaction(txType string, lines int) {
	m.TransactionsTotal.WithLabelValues(txType).Inc()
	m.TransactionLines.WithLabelValues(txType).Add(float64(lines))
}

func (m *Metrics) ObserveShortage() {
	m.ShortagesTotal.Inc()
}

func (m *Metrics) ObserveNotification(err error) {
	status := "sent"
	if err != nil {
		status = "failed"
	}

	m.NotificationsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) ObservePosting(automatic, flagged int) {
	m.CountsPostedTotal.Inc()
	m.CountAdjustments.WithLabelValues("automatic").Add(float64(automatic))
	m.CountLinesFlagged.Add(float64(flagged))
}

func (m *Metrics) ObserveResolution() {
	m.CountAdjustments.WithLabelValues("manual").Inc()
}

// Middleware records request count and latency labelled by chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
