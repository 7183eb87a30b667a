// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

// Package middleware provides the HTTP middleware shared by all routes:
// request identification and Prometheus instrumentation. Rate limiting
// and CORS come from go-chi and are wired in the router.
package middleware

import (
	"net/http"

	"github.com/tomtom215/convene/internal/logging"
)

// RequestID assigns each request a unique ID, honoring an upstream
// X-Request-ID when present. The ID is echoed in the response header and
// carried in the request context for logging.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set("X-Request-ID", requestID)
		ctx := logging.ContextWithRequestID(r.Context(), requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
