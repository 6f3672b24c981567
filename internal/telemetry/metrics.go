package telemetry

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the gateway.
type Metrics struct {
	RemoteCallsTotal     *prometheus.CounterVec
	RemoteCallDurationMs *prometheus.HistogramVec
	GatewayRequestsTotal *prometheus.CounterVec
	BulkItemsTotal       *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// uses the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	gatherer := prometheus.DefaultGatherer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	} else if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}
	factory := promauto.With(reg)

	return &Metrics{
		RemoteCallsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "zidadmin_remote_calls_total",
			Help: "Total calls issued to the commerce API.",
		}, []string{"operation", "status"}),

		RemoteCallDurationMs: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "zidadmin_remote_call_duration_ms",
			Help:    "Commerce API call latency in milliseconds.",
			Buckets: []float64{25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}, []string{"operation"}),

		GatewayRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "zidadmin_gateway_requests_total",
			Help: "Total inbound gateway requests by route and status.",
		}, []string{"method", "route", "status"}),

		BulkItemsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "zidadmin_bulk_items_total",
			Help: "Units processed by bulk operations.",
		}, []string{"operation", "outcome"}),

		gatherer: gatherer,
	}
}

// ObserveRemoteCall records one commerce API call. A zero status means the
// call failed before a response arrived.
func (m *Metrics) ObserveRemoteCall(operation string, statusCode int, duration time.Duration) {
	status := "network_error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	m.RemoteCallsTotal.WithLabelValues(operation, status).Inc()
	m.RemoteCallDurationMs.WithLabelValues(operation).Observe(float64(duration.Microseconds()) / 1000)
}

// RecordBulkItems adds the outcome counts of one bulk operation
func (m *Metrics) RecordBulkItems(operation string, successful, failed int) {
	if successful > 0 {
		m.BulkItemsTotal.WithLabelValues(operation, "success").Add(float64(successful))
	}
	if failed > 0 {
		m.BulkItemsTotal.WithLabelValues(operation, "failure").Add(float64(failed))
	}
}

// Middleware counts inbound requests by matched route
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.GatewayRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
