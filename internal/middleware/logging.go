package middleware

import (
	"net/http"
	"time"

	"pet-store/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// StatusRecorder captura el status de la respuesta (logging y métricas).
type StatusRecorder struct {
	http.ResponseWriter
	Status int
}

func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{ResponseWriter: w, Status: http.StatusOK}
}

func (rw *StatusRecorder) WriteHeader(code int) {
	rw.Status = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logging loguea cada request con el patrón de ruta de chi (no el path crudo).
func Logging(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := NewStatusRecorder(w)
			next.ServeHTTP(rw, r)

			log.Info("handled request", map[string]any{
				"request_id":  chimw.GetReqID(r.Context()),
				"method":      r.Method,
				"route":       RoutePattern(r),
				"path":        r.URL.Path,
				"remote_addr": r.RemoteAddr,
				"status":      rw.Status,
				"duration_ms": time.Since(start).Milliseconds(),
			})
		})
	}
}

// RoutePattern devuelve el patrón chi que matcheó (p.ej. /pet_store/{petStoreID}).
// Solo está completo después de que el router despachó el request.
func RoutePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
