package middleware

import (
	"net/http"
	"time"
)

// RequestLogger logs method, path, status and latency of every request
func RequestLogger(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			if rec.status >= http.StatusInternalServerError {
				logger.Error("request method=%s path=%s status=%d duration=%s", r.Method, r.URL.Path, rec.status, time.Since(start))
				return
			}
			logger.Info("request method=%s path=%s status=%d duration=%s", r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
