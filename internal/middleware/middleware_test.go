// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/convene/internal/logging"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates an ID when none supplied", func(t *testing.T) {
		t.Parallel()

		var ctxID string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxID = logging.RequestIDFromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		headerID := rec.Header().Get("X-Request-ID")
		if headerID == "" {
			t.Fatal("X-Request-ID header not set")
		}
		if _, err := uuid.Parse(headerID); err != nil {
			t.Errorf("generated ID %q is not a UUID: %v", headerID, err)
		}
		if ctxID != headerID {
			t.Errorf("context ID %q != header ID %q", ctxID, headerID)
		}
	})

	t.Run("honors an upstream ID", func(t *testing.T) {
		t.Parallel()

		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "upstream-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Request-ID"); got != "upstream-123" {
			t.Errorf("X-Request-ID = %q, want upstream-123", got)
		}
	})
}

func TestPrometheusMetrics(t *testing.T) {
	t.Parallel()

	handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
}

func TestStatusWriterDefaultsTo200(t *testing.T) {
	t.Parallel()

	handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Implicit 200 via Write.
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
