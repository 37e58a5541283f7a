// Package metrics defines the Prometheus collectors exported by the service.
//
// All recording methods are safe to call on a nil *Metrics, so components can
// be constructed without metrics in tests.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "recipe"

// Metrics holds the service's collectors.
type Metrics struct {
	// GateDecisions counts authorization gate outcomes by policy decision and outcome
	// (allowed, denied).
	GateDecisions *prometheus.CounterVec

	// AuthFailures counts identity resolution failures by reason.
	AuthFailures *prometheus.CounterVec

	// AccountOperations counts account lifecycle operations by operation and outcome.
	AccountOperations *prometheus.CounterVec

	// BookmarkToggles counts bookmark toggles by resulting state.
	BookmarkToggles *prometheus.CounterVec

	// AccountDeleteDuration observes how long the ordered account delete takes.
	AccountDeleteDuration prometheus.Histogram

	registry *prometheus.Registry
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		GateDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gate",
			Name:      "decisions_total",
			Help:      "Authorization gate decisions by policy decision and outcome.",
		}, []string{"decision", "outcome"}),
		AuthFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "failures_total",
			Help:      "Bearer token resolution failures by reason.",
		}, []string{"reason"}),
		AccountOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "account",
			Name:      "operations_total",
			Help:      "Account lifecycle operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		BookmarkToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bookmark",
			Name:      "toggles_total",
			Help:      "Bookmark toggles by resulting state.",
		}, []string{"state"}),
		AccountDeleteDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "account",
			Name:      "delete_duration_seconds",
			Help:      "Duration of the transactional account delete.",
			Buckets:   prometheus.DefBuckets,
		}),
		registry: reg,
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.GateDecisions,
		m.AuthFailures,
		m.AccountOperations,
		m.BookmarkToggles,
		m.AccountDeleteDuration,
	)
	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveGate records one gate decision.
func (m *Metrics) ObserveGate(decision string, allowed bool) {
	if m == nil {
		return
	}
	outcome := "allowed"
	if !allowed {
		outcome = "denied"
	}
	m.GateDecisions.WithLabelValues(decision, outcome).Inc()
}

// ObserveAuthFailure records a token resolution failure.
func (m *Metrics) ObserveAuthFailure(reason string) {
	if m == nil {
		return
	}
	m.AuthFailures.WithLabelValues(reason).Inc()
}

// ObserveAccountOperation records an account lifecycle operation.
// A nil err is recorded as "success"; anything else as "failure".
func (m *Metrics) ObserveAccountOperation(operation string, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.AccountOperations.WithLabelValues(operation, outcome).Inc()
}

// ObserveAccountDelete records the duration of an account delete in seconds.
func (m *Metrics) ObserveAccountDelete(seconds float64) {
	if m == nil {
		return
	}
	m.AccountDeleteDuration.Observe(seconds)
}

// ObserveBookmarkToggle records the state a toggle left the bookmark in.
func (m *Metrics) ObserveBookmarkToggle(bookmarked bool) {
	if m == nil {
		return
	}
	state := "removed"
	if bookmarked {
		state = "added"
	}
	m.BookmarkToggles.WithLabelValues(state).Inc()
}
