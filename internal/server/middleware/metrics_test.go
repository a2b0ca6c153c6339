package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/walklog/internal/server/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/walks/{date}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := MetricsMiddleware(m)(mux)

	for _, date := range []string{"2024-01-01", "2024-01-02"} {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/walks/"+date, nil))
		require.Equal(t, http.StatusNotFound, w.Code)
	}
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/unknown", nil))

	body := scrape(t, m)
	assert.Contains(t, body, `walklog_http_requests_total{method="DELETE",route="DELETE /api/walks/{date}",status="404"} 2`)
	assert.Contains(t, body, `route="unmatched"`)
	assert.NotContains(t, body, "2024-01-01", "path values must not become labels")

	count, err := testutil.GatherAndCount(m.Registry(), "walklog_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}
