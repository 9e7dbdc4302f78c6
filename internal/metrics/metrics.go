// Package metrics provides Prometheus metrics for the risk engine, routing provider and alert delivery.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics contains Prometheus metrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	areaQueriesTotal  *prometheus.CounterVec
	routeQueriesTotal *prometheus.CounterVec
	routeRiskScore    prometheus.Histogram
	routeSamplesTotal prometheus.Counter

	routingRequestDuration *prometheus.HistogramVec

	alertsTotal *prometheus.CounterVec
}

// New creates and registers metrics in the given registry
func New(registry *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{registry: registry}

	m.areaQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risk_area_queries_total",
			Help: "Total number of area risk computations",
		},
		[]string{"status"},
	)
	m.routeQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risk_route_queries_total",
			Help: "Total number of safe route requests",
		},
		[]string{"status"}, // success, bad_request, routing_error, no_route, error
	)
	m.routeRiskScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "risk_route_selected_score",
			Help:    "Risk score of the selected route",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
	m.routeSamplesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "risk_route_samples_total",
			Help: "Total number of sampled route points scored",
		},
	)
	m.routingRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "routing_provider_request_duration_seconds",
			Help:    "Time taken by the routing provider",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"status"},
	)
	m.alertsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alerts_delivered_total",
			Help: "Total number of alert delivery attempts by channel",
		},
		[]string{"channel", "status"},
	)

	for _, c := range []prometheus.Collector{
		m.areaQueriesTotal,
		m.routeQueriesTotal,
		m.routeRiskScore,
		m.routeSamplesTotal,
		m.routingRequestDuration,
		m.alertsTotal,
	} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler exposes the registry over HTTP
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) AreaQuery(status string) {
	if m == nil {
		return
	}
	m.areaQueriesTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) RouteQuery(status string) {
	if m == nil {
		return
	}
	m.routeQueriesTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) RouteSelected(score int, samples int) {
	if m == nil {
		return
	}
	m.routeRiskScore.Observe(float64(score))
	m.routeSamplesTotal.Add(float64(samples))
}

func (m *Metrics) RoutingRequest(status string, d time.Duration) {
	if m == nil {
		return
	}
	m.routingRequestDuration.WithLabelValues(status).Observe(d.Seconds())
}

func (m *Metrics) AlertDelivery(channel, status string) {
	if m == nil {
		return
	}
	m.alertsTotal.WithLabelValues(channel, status).Inc()
}
