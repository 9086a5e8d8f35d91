// Package metrics exposes storefront counters in Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "luxemarket"

// Metrics owns its registry so several instances can coexist in tests.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry       *prometheus.Registry
	searchJobs     *prometheus.CounterVec
	searchDuration prometheus.Histogram
	searchResults  prometheus.Histogram
	notices        *prometheus.CounterVec
	favorites      *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		searchJobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "jobs_total",
			Help:      "Marketplace search jobs by terminal outcome.",
		}, []string{"outcome"}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Time from trigger to terminal outcome.",
			Buckets:   []float64{.01, .1, .5, 1, 2, 3, 5, 10},
		}),
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "results",
			Help:      "Number of products returned by successful searches.",
			Buckets:   prometheus.LinearBuckets(0, 1, 8),
		}),
		notices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notices_total",
			Help:      "Toast notifications published to users.",
		}, []string{"kind"}),
		favorites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "favorites_total",
			Help:      "Favorite list changes.",
		}, []string{"action"}),
	}
	m.registry.MustRegister(
		m.searchJobs, m.searchDuration, m.searchResults, m.notices, m.favorites,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) SearchFinished(outcome string, took time.Duration, results int) {
	if m == nil {
		return
	}
	m.searchJobs.WithLabelValues(outcome).Inc()
	m.searchDuration.Observe(took.Seconds())
	if outcome == "succeeded" {
		m.searchResults.Observe(float64(results))
	}
}

func (m *Metrics) Notice(kind string) {
	if m == nil {
		return
	}
	m.notices.WithLabelValues(kind).Inc()
}

func (m *Metrics) Favorite(action string) {
	if m == nil {
		return
	}
	m.favorites.WithLabelValues(action).Inc()
}
