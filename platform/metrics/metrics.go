// Package metrics provides Prometheus metrics for the lead scoring service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "leadscore"

// Outcome labels for AI calls.
const (
	OutcomeOK         = "ok"
	OutcomeOverloaded = "overloaded"
	OutcomeBadPayload = "bad_payload"
	OutcomeError      = "error"
)

// Manager owns a dedicated registry and every collector the service exports.
type Manager struct {
	registry *prometheus.Registry

	scoresCreated prometheus.Counter
	scoresSkipped prometheus.Counter
	scoresFailed  prometheus.Counter
	scoringRuns   *prometheus.CounterVec

	aiCalls   *prometheus.CounterVec
	aiLatency *prometheus.HistogramVec

	leadsIngested *prometheus.CounterVec

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New creates a Manager with Go runtime and process collectors registered.
func New() *Manager {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Manager{
		registry: reg,
		scoresCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scores_created_total",
			Help:      "Scores persisted by the orchestrator.",
		}),
		scoresSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scores_skipped_total",
			Help:      "Leads skipped because a score already existed for the offer.",
		}),
		scoresFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scores_failed_total",
			Help:      "Leads whose scoring failed.",
		}),
		scoringRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scoring_runs_total",
			Help:      "Orchestrator runs by result.",
		}, []string{"result"}),
		aiCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_calls_total",
			Help:      "Intent classification calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		aiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ai_call_duration_seconds",
			Help:      "Intent classification latency.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}, []string{"provider"}),
		leadsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leads_ingested_total",
			Help:      "Uploaded lead rows by result.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.scoresCreated, m.scoresSkipped, m.scoresFailed, m.scoringRuns,
		m.aiCalls, m.aiLatency, m.leadsIngested,
		m.httpRequests, m.httpRequestDuration,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveScoringRun records the outcome of one orchestrator run.
func (m *Manager) ObserveScoringRun(result string, created, skipped, failed int) {
	m.scoresCreated.Add(float64(created))
	m.scoresSkipped.Add(float64(skipped))
	m.scoresFailed.Add(float64(failed))
	m.scoringRuns.WithLabelValues(result).Inc()
}

// ObserveAICall records one classification round trip.
func (m *Manager) ObserveAICall(provider, outcome string, elapsed time.Duration) {
	m.aiCalls.WithLabelValues(provider, outcome).Inc()
	m.aiLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// ObserveIngest records the result of one upload.
func (m *Manager) ObserveIngest(inserted, skipped int) {
	m.leadsIngested.WithLabelValues("inserted").Add(float64(inserted))
	m.leadsIngested.WithLabelValues("skipped").Add(float64(skipped))
}

// ObserveHTTPRequest implements httpkit.RequestObserver.
func (m *Manager) ObserveHTTPRequest(method, route, status string, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
