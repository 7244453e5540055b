package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the service. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	UpstreamRequests *prometheus.CounterVec
	UpstreamLatency  *prometheus.HistogramVec
	BrandFailures    *prometheus.CounterVec
	RequestLatency   *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		UpstreamRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_upstream_requests_total",
			Help: "Helpdesk report requests by metric and outcome",
		}, []string{"metric", "outcome"}),
		UpstreamLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashboard_upstream_latency_seconds",
			Help:    "Latency of helpdesk report requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"metric"}),
		BrandFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_brand_failures_total",
			Help: "Brands excluded from an aggregate because their fetch failed",
		}, []string{"metric"}),
		RequestLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "Latency of inbound HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) ObserveUpstream(metric, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(metric, outcome).Inc()
	m.UpstreamLatency.WithLabelValues(metric).Observe(took.Seconds())
}

func (m *Metrics) BrandFailed(metric string) {
	if m == nil {
		return
	}
	m.BrandFailures.WithLabelValues(metric).Inc()
}

func (m *Metrics) ObserveRequest(method, route, status string, took time.Duration) {
	if m == nil {
		return
	}
	m.RequestLatency.WithLabelValues(method, route, status).Observe(took.Seconds())
}
