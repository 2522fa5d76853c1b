package controller

import (
	"net/http"
	"personcheck/pkg/metrics"
	"time"
)

// WithMetrics records the duration and final status of every request.
func WithMetrics(m *metrics.HTTP, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		m.Observe(r.Method, rec.status, time.Since(start).Seconds())
	})
}
