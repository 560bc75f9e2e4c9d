package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/leasehold/pkg/idx"
	"go.opentelemetry.io/otel/trace"
)

// RequestIDHeader carries the request correlation ID in both directions.
const RequestIDHeader = "X-Request-ID"

// MiddlewareOption tunes HTTPMiddleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	redactPath func(string) string
}

// WithPathRedactor rewrites request paths before they are logged, for
// routes that carry secrets in the URL.
func WithPathRedactor(fn func(string) string) MiddlewareOption {
	return func(c *middlewareConfig) { c.redactPath = fn }
}

// HTTPMiddleware gives every request a correlated logger and writes one
// access line when the handler returns. Server errors log at error level,
// client errors at warn, and probe traffic at debug.
func HTTPMiddleware(base *slog.Logger, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{redactPath: func(p string) string { return p }}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			began := time.Now()

			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > 128 {
				id = idx.New().String()
			}
			w.Header().Set(RequestIDHeader, id)

			attrs := []any{"req_id", id, "method", r.Method, "path", cfg.redactPath(r.URL.Path)}
			if sc := trace.SpanContextFromContext(r.Context()); sc.IsValid() {
				attrs = append(attrs, "trace_id", sc.TraceID().String())
			}
			logger := base.With(attrs...)

			// The mux records the matched pattern on the request it is given.
			req := r.WithContext(WithContext(r.Context(), logger))
			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, req)

			logger.Log(r.Context(), accessLevel(r, sw.code()), "http_request",
				"route", req.Pattern,
				"status", sw.code(),
				"bytes", sw.written,
				"duration_ms", time.Since(began).Milliseconds(),
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		})
	}
}

func accessLevel(r *http.Request, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	case r.URL.Path == "/livez" || r.URL.Path == "/readyz" || r.URL.Path == "/metrics":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// statusWriter records the status and body size a handler produced.
type statusWriter struct {
	http.ResponseWriter

	status  int
	written int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

func (w *statusWriter) code() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
