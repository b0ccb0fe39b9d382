// Package metrics exposes Prometheus counters for the analysis engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is nil-safe: every method on a nil *Metrics is a no-op, so components can
// be built without instrumentation in tests.
type Metrics struct {
	cacheLookups     *prometheus.CounterVec
	providerFailures *prometheus.CounterVec
	rateLimited      *prometheus.CounterVec
	analyses         *prometheus.CounterVec
	duration         *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kwinsight_cache_lookups_total",
			Help: "Result cache lookups by cache kind and outcome",
		}, []string{"cache", "outcome"}),
		providerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kwinsight_provider_failures_total",
			Help: "Upstream provider calls that were absorbed into an empty or neutral result",
		}, []string{"provider"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kwinsight_rate_limited_total",
			Help: "Requests rejected by the analysis rate limiter",
		}, []string{"operation"}),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kwinsight_analyses_total",
			Help: "Analysis operations by kind and outcome",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kwinsight_upstream_round_seconds",
			Help:    "Duration of one upstream fan-out round",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(m.cacheLookups, m.providerFailures, m.rateLimited, m.analyses, m.duration)
	return m
}

func (m *Metrics) ObserveCacheLookup(cache string, hit bool) {
	if m == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.cacheLookups.WithLabelValues(cache, outcome).Inc()
}

func (m *Metrics) ObserveProviderFailure(provider string) {
	if m == nil {
		return
	}
	m.providerFailures.WithLabelValues(provider).Inc()
}

func (m *Metrics) ObserveRateLimited(operation string) {
	if m == nil {
		return
	}
	m.rateLimited.WithLabelValues(operation).Inc()
}

func (m *Metrics) ObserveAnalysis(operation string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.analyses.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveUpstreamRound(operation string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
