package http

import (
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sportsdesk/internal/metrics"
)

func TestLoggingMiddlewareAttachesRequestID(t *testing.T) {
	var seen string
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(nethttp.StatusNoContent)
	})

	h := LoggingMiddleware(slog.Default(), metrics.NewRecorder(), inner)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

	if seen == "" {
		t.Fatal("expected a request ID in the handler context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("response header %q does not match context ID %q", got, seen)
	}
}

func TestLoggingMiddlewarePreservesInboundRequestID(t *testing.T) {
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {})

	h := LoggingMiddleware(nil, nil, inner)
	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc123" {
		t.Fatalf("expected the inbound ID to be kept, got %q", got)
	}
}

func TestLoggingMiddlewareRecordsRequestMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		time.Sleep(time.Millisecond)
		w.WriteHeader(nethttp.StatusTeapot)
	})

	h := LoggingMiddleware(slog.Default(), rec, inner)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(nethttp.MethodGet, "/games", nil))

	if got := rec.HTTPRequests(nethttp.MethodGet, "/games"); got != 1 {
		t.Fatalf("expected one recorded request, got %d", got)
	}
}
