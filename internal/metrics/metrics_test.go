package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveGate("PUBLIC", true)
		m.ObserveAuthFailure("expired_token")
		m.ObserveAccountOperation("delete", nil)
		m.ObserveAccountDelete(0.1)
		m.ObserveBookmarkToggle(true)
	})
}

func TestObserve(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveGate("AUTHENTICATED", false)
	m.ObserveGate("AUTHENTICATED", false)
	m.ObserveGate("PUBLIC", true)
	m.ObserveAuthFailure("bad_signature")
	m.ObserveAccountOperation("delete", errors.New("boom"))
	m.ObserveAccountOperation("delete", nil)
	m.ObserveBookmarkToggle(true)
	m.ObserveBookmarkToggle(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GateDecisions.WithLabelValues("AUTHENTICATED", "denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GateDecisions.WithLabelValues("PUBLIC", "allowed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthFailures.WithLabelValues("bad_signature")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AccountOperations.WithLabelValues("delete", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AccountOperations.WithLabelValues("delete", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookmarkToggles.WithLabelValues("added")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookmarkToggles.WithLabelValues("removed")))
}

func TestHandler(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveGate("PUBLIC", true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `recipe_gate_decisions_total{decision="PUBLIC",outcome="allowed"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
