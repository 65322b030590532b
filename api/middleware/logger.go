// Package middleware provides HTTP middleware for the SiScan API
// server.
package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Logger logs one line per completed request with method, path,
// status, response size, and duration. The chi request ID is included
// when present.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			entry := logrus.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   ww.Status(),
				"bytes":    ww.BytesWritten(),
				"duration": time.Since(start).String(),
			})
			if reqID := chimiddleware.GetReqID(r.Context()); reqID != "" {
				entry = entry.WithField("request_id", reqID)
			}
			entry.Info("request completed")
		}()

		next.ServeHTTP(ww, r)
	})
}
