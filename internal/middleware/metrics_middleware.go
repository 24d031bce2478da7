package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"ewaste-tracker/internal/metrics"
)

// MetricsMiddleware records request counts and latency per method and path.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		path := metricPath(r.URL.Path)
		metrics.HTTPRequestsTotal.WithLabelValues(
			r.Method, path, strconv.Itoa(sw.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// metricPath collapses numeric id segments so individual assets do not each
// mint their own label value.
func metricPath(p string) string {
	parts := strings.Split(p, "/")
	changed := false
	for i, part := range parts {
		if part == "" {
			continue
		}
		if _, err := strconv.Atoi(part); err == nil {
			parts[i] = ":id"
			changed = true
		}
	}
	if !changed {
		return p
	}
	return strings.Join(parts, "/")
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
