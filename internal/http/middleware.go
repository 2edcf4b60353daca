package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"sportsdesk/internal/logging"
	"sportsdesk/internal/metrics"
)

// LoggingMiddleware wraps the handler with request logging, request IDs,
// and per-request metrics.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next nethttp.Handler) nethttp.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		start := time.Now()
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = generateRequestID()
		}
		w.Header().Set("X-Request-ID", reqID)

		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
		)

		ctx := logging.WithLogger(r.Context(), logger)
		ctx = withRequestID(ctx, reqID)
		r = r.WithContext(ctx)
		ww := &statusWriter{ResponseWriter: w, status: nethttp.StatusOK}

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		recorder.RecordHTTPRequest(r.Method, r.URL.Path, ww.status, duration)
		logger.Info("request complete",
			slog.Int(logging.FieldStatusCode, ww.status),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	})
}

type statusWriter struct {
	nethttp.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
