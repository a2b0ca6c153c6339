package middleware

import (
	"net/http"
	"time"

	"github.com/iudanet/walklog/internal/server/metrics"
)

// MetricsMiddleware учитывает запросы в метриках Prometheus.
// Маршрут берется из шаблона ServeMux, чтобы {date} не размножал метки.
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrapResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.ObserveRequest(route, r.Method, wrapped.statusCode, time.Since(start))
		})
	}
}
