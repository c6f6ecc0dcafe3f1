// Package metrics exposes the console's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/codearena/arena-admin/sdk/platform"
)

const namespace = "arena_admin"

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	platformRequests *prometheus.CounterVec
	platformLatency  *prometheus.HistogramVec
	rollbacks        *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		platformRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "platform",
			Name:      "requests_total",
			Help:      "Requests sent to the platform API by operation and status code.",
		}, []string{"op", "code"}),
		platformLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "platform",
			Name:      "request_duration_seconds",
			Help:      "Platform API latency by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		rollbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "optimistic_rollbacks_total",
			Help:      "Optimistic updates reverted after the platform rejected them.",
		}, []string{"resource"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Console API requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Console API latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.platformRequests,
		m.platformLatency,
		m.rollbacks,
		m.httpRequests,
		m.httpLatency,
	)
	return m
}

// ObservePlatform is a platform.WithObserver callback.
func (m *Metrics) ObservePlatform(info platform.RequestInfo) {
	code := "error"
	if info.StatusCode > 0 {
		code = strconv.Itoa(info.StatusCode)
	}
	m.platformRequests.WithLabelValues(info.Op, code).Inc()
	m.platformLatency.WithLabelValues(info.Op).Observe(info.Duration.Seconds())
}

// RollbackHook returns a callback counting rollbacks for resource.
func (m *Metrics) RollbackHook(resource string) func(key string) {
	return func(string) {
		m.rollbacks.WithLabelValues(resource).Inc()
	}
}

func (m *Metrics) ObserveHTTP(route, method string, status int, seconds float64) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(route).Observe(seconds)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
