package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"go.opentelemetry.io/otel/trace"
)

// RequestLogger writes one log line per request with the response status,
// duration and the OpenTelemetry trace/span ids of the surrounding span.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		metrics := httpsnoop.CaptureMetrics(next, w, r)
		duration := metrics.Duration
		if duration == 0 {
			duration = time.Since(start)
		}

		spanContext := trace.SpanFromContext(r.Context()).SpanContext()

		log.Printf(
			"request method=%s path=%s status=%d duration=%s trace_id=%s span_id=%s",
			r.Method,
			r.URL.Path,
			metrics.Code,
			duration,
			spanContext.TraceID().String(),
			spanContext.SpanID().String(),
		)
	})
}
