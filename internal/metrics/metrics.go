package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Order outcomes.
const (
	OutcomeAccepted     = "accepted"
	OutcomeInvalid      = "invalid"
	OutcomeBelowMinimum = "below_minimum"
	OutcomeRenderFailed = "render_failed"
)

type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
	Orders    *prometheus.CounterVec
	OrderSize prometheus.Histogram

	registry *prometheus.Registry
}

// NewServerMetrics registers on a private registry so several instances can
// coexist in one process.
func NewServerMetrics(service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"handler"})
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "orders_total",
		Help:      "Orders received, by outcome.",
	}, []string{"outcome"})
	size := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "order_total_with_tax_dollars",
		Help:      "Tax-inclusive total of accepted orders.",
		Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000},
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		requests, latency, orders, size,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &ServerMetrics{Requests: requests, LatencyMS: latency, Orders: orders, OrderSize: size, registry: reg}
}

// ObserveOrder counts an order outcome. total is only recorded for accepted orders.
func (m *ServerMetrics) ObserveOrder(outcome string, total decimal.Decimal) {
	m.Orders.WithLabelValues(outcome).Inc()
	if outcome == OutcomeAccepted {
		m.OrderSize.Observe(total.InexactFloat64())
	}
}

func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
