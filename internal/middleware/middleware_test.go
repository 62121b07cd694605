package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-store/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func requestIDChain(seen *string) http.Handler {
	return chimw.RequestID(EchoRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = chimw.GetReqID(r.Context())
	})))
}

func TestEchoRequestID_GeneratedIDInResponse(t *testing.T) {
	var seen string
	h := requestIDChain(&seen)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if seen == "" {
		t.Fatalf("expected generated request id in context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("expected response header %q, got %q", seen, got)
	}
}

func TestEchoRequestID_HonoursIncomingHeader(t *testing.T) {
	var seen string
	h := requestIDChain(&seen)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if seen != "abc-123" {
		t.Fatalf("expected incoming id, got %q", seen)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected incoming id echoed, got %q", got)
	}
}

func TestEchoRequestID_NoopWithoutChiRequestID(t *testing.T) {
	h := EchoRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if got := rec.Header().Get("X-Request-ID"); got != "" {
		t.Fatalf("expected no header, got %q", got)
	}
}

func TestRecover_WritesJSON500(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Writer: &buf, Format: logger.FormatJSON})

	h := chimw.RequestID(Recover(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	})))

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("X-Request-ID", "req-panic")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"message":"internal error"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if !strings.Contains(buf.String(), "kaboom") || !strings.Contains(buf.String(), `"request_id":"req-panic"`) {
		t.Fatalf("expected panic and request id in log, got %s", buf.String())
	}
}

func TestLogging_UsesRoutePattern(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Writer: &buf, Format: logger.FormatJSON})

	r := chi.NewRouter()
	r.Use(Logging(log))
	r.Get("/pet_store/{petStoreID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/pet_store/12", nil))

	out := buf.String()
	if !strings.Contains(out, `"route":"/pet_store/{petStoreID}"`) {
		t.Fatalf("expected route pattern in log, got %s", out)
	}
	if !strings.Contains(out, `"status":418`) {
		t.Fatalf("expected status in log, got %s", out)
	}
}
