// Package metrics holds the Prometheus collectors for outgoing API calls and
// dashboard activity.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tourbook_web"

// Metrics holds custom Prometheus metrics.
type Metrics struct {
	Registry *prometheus.Registry

	APIRequests       *prometheus.CounterVec
	APILatency        *prometheus.HistogramVec
	DashboardLoads    *prometheus.CounterVec
	DashboardMutation *prometheus.CounterVec
	ActiveSessions    prometheus.Gauge
}

// New initializes and registers the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Requests made to the marketplace API by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		APILatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Latency of marketplace API requests by endpoint.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		DashboardLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_loads_total",
			Help:      "Dashboard collection loads by board and outcome.",
		}, []string{"board", "outcome"}),
		DashboardMutation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_mutations_total",
			Help:      "Dashboard mutation actions by board, action and outcome.",
		}, []string{"board", "action", "outcome"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dashboard_sessions_active",
			Help:      "Dashboard sessions currently held in memory.",
		}),
	}

	m.Registry.MustRegister(
		m.APIRequests,
		m.APILatency,
		m.DashboardLoads,
		m.DashboardMutation,
		m.ActiveSessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// ObserveAPI records one outgoing API call. A nil receiver is a no-op so
// tests can pass nil.
func (m *Metrics) ObserveAPI(endpoint string, err error, started time.Time) {
	if m == nil {
		return
	}
	m.APIRequests.WithLabelValues(endpoint, outcome(err)).Inc()
	m.APILatency.WithLabelValues(endpoint).Observe(time.Since(started).Seconds())
}

// ObserveLoad records one dashboard load.
func (m *Metrics) ObserveLoad(board string, err error) {
	if m == nil {
		return
	}
	m.DashboardLoads.WithLabelValues(board, outcome(err)).Inc()
}

// ObserveMutation records one dashboard mutation.
func (m *Metrics) ObserveMutation(board, action string, err error) {
	if m == nil {
		return
	}
	m.DashboardMutation.WithLabelValues(board, action, outcome(err)).Inc()
}

// SessionOpened increments the active session gauge.
func (m *Metrics) SessionOpened() {
	if m != nil {
		m.ActiveSessions.Inc()
	}
}

// SessionClosed decrements the active session gauge.
func (m *Metrics) SessionClosed() {
	if m != nil {
		m.ActiveSessions.Dec()
	}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
