// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package http

import (
	"net/http"
	"time"

	"github.com/jessleroux/pigeon-raiders/internal/logger"
)

// withLogging emits one access-log line per request: method, uri, status,
// bytes written, and wall time. Long-lived change-feed connections log when
// they finally close, not when they open.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		started := time.Now()

		recorder := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(recorder, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", recorder.status).
			Int("size", recorder.size).
			Dur("duration", time.Since(started)).
			Send()
	})
}
