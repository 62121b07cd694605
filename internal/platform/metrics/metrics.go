package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"pet-store/internal/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pet_store"

// HTTPMetrics agrupa las métricas del servidor HTTP.
// Cada router tiene su propio registry (evita registros duplicados en tests).
type HTTPMetrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func New() *HTTPMetrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	f := promauto.With(reg)
	return &HTTPMetrics{
		registry: reg,
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de requests HTTP por método, ruta y status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latencia de requests HTTP por método y ruta.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// WatchDB registra las estadísticas del pool de conexiones.
func (m *HTTPMetrics) WatchDB(db *sql.DB, name string) {
	if db == nil {
		return
	}
	m.registry.MustRegister(collectors.NewDBStatsCollector(db, name))
}

// Handler expone /metrics.
func (m *HTTPMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware mide cada request usando el patrón de ruta (cardinalidad acotada).
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := middleware.NewStatusRecorder(w)
		next.ServeHTTP(rw, r)

		route := middleware.RoutePattern(r)
		m.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rw.Status)).Inc()
		m.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
