// Package metrics exposes Prometheus collectors for HTTP traffic and for
// moderation events. Collectors live on a private registry so tests can build
// as many instances as they like.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"family-site-go/internal/domain/recipes"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "family_site"

type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	httpInflight prometheus.Gauge

	submissions *prometheus.CounterVec
	transitions *prometheus.CounterVec
	deletions   prometheus.Counter
	logins      *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		httpInflight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_inflight",
				Help:      "Current number of in-flight HTTP requests.",
			},
		),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "recipe_submissions_total",
				Help:      "Recipes submitted for review, by category.",
			},
			[]string{"category"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "recipe_status_transitions_total",
				Help:      "Recipe moderation status changes.",
			},
			[]string{"from", "to"},
		),
		deletions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "recipe_deletions_total",
				Help:      "Recipes removed by an admin.",
			},
		),
		logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "admin_logins_total",
				Help:      "Admin login attempts, by outcome.",
			},
			[]string{"outcome"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.httpInflight,
		m.submissions,
		m.transitions,
		m.deletions,
		m.logins,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// TrackInflight increments the in-flight gauge and returns the matching
// decrement.
func (m *Metrics) TrackInflight() func() {
	m.httpInflight.Inc()
	return m.httpInflight.Dec
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RecipeSubmitted(category recipes.Category) {
	m.submissions.WithLabelValues(string(category)).Inc()
}

func (m *Metrics) RecipeStatusChanged(from, to recipes.Status) {
	m.transitions.WithLabelValues(string(from), string(to)).Inc()
}

func (m *Metrics) RecipeDeleted() {
	m.deletions.Inc()
}

func (m *Metrics) LoginAttempt(outcome string) {
	m.logins.WithLabelValues(outcome).Inc()
}
