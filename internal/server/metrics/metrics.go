// Package metrics собирает метрики сервера в формате Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "walklog"

// События изменения прогулок
const (
	WalkCreated     = "created"
	WalkSyncAdded   = "sync_added"
	WalkSyncSkipped = "sync_skipped"
	WalkDeleted     = "deleted"
)

// Metrics держит собственный реестр, чтобы тесты не конфликтовали
// с глобальным prometheus.DefaultRegisterer
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	walks    *prometheus.CounterVec
	users    prometheus.Counter
}

// New создает и регистрирует метрики сервера
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Number of HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		walks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "walks",
			Name:      "changes_total",
			Help:      "Number of walk changes by event.",
		}, []string{"event"}),
		users: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "users",
			Name:      "registered_total",
			Help:      "Number of registered users.",
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.walks,
		m.users,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler отдает метрики для GET /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry реестр метрик
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// RecordWalks учитывает изменение n прогулок
func (m *Metrics) RecordWalks(event string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.walks.WithLabelValues(event).Add(float64(n))
}

// RecordRegistration учитывает регистрацию пользователя
func (m *Metrics) RecordRegistration() {
	if m == nil {
		return
	}
	m.users.Inc()
}
