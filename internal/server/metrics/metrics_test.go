package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordWalks(t *testing.T) {
	m := New()

	m.RecordWalks(WalkCreated, 1)
	m.RecordWalks(WalkSyncAdded, 3)
	m.RecordWalks(WalkSyncSkipped, 0)

	assert.InDelta(t, 1.0, testutil.ToFloat64(m.walks.WithLabelValues(WalkCreated)), 1e-9)
	assert.InDelta(t, 3.0, testutil.ToFloat64(m.walks.WithLabelValues(WalkSyncAdded)), 1e-9)
	assert.InDelta(t, 0.0, testutil.ToFloat64(m.walks.WithLabelValues(WalkSyncSkipped)), 1e-9)
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest("GET /api/walks", http.MethodGet, http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest("GET /api/walks", http.MethodGet, http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest("GET /api/walks", http.MethodGet, http.StatusUnauthorized, time.Millisecond)

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET /api/walks", "GET", "200")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET /api/walks", "GET", "401")), 1e-9)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordWalks(WalkCreated, 1)
		m.RecordRegistration()
		m.ObserveRequest("/", http.MethodGet, http.StatusOK, time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordRegistration()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "walklog_users_registered_total 1")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
