// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

// Package api provides the HTTP surface of Convene: a chi router, the
// standard response envelope and the handlers for users, events,
// connections, feedback, preferences, recommendations and dashboards.
package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/convene/internal/config"
	"github.com/tomtom215/convene/internal/dashboard"
	"github.com/tomtom215/convene/internal/recommend"
	"github.com/tomtom215/convene/internal/store"
)

// Handler carries the dependencies shared by all endpoint handlers.
type Handler struct {
	store     *store.Store
	events    *recommend.EventEngine
	conns     *recommend.ConnectionEngine
	dashboard *dashboard.Aggregator
	api       config.APIConfig
}

// NewHandler builds the handler set over the store and engines.
func NewHandler(s *store.Store, events *recommend.EventEngine, conns *recommend.ConnectionEngine, dash *dashboard.Aggregator, apiCfg config.APIConfig) *Handler {
	return &Handler{
		store:     s,
		events:    events,
		conns:     conns,
		dashboard: dash,
		api:       apiCfg,
	}
}

// limitParam reads a limit query parameter clamped to the configured
// page-size bounds.
func (h *Handler) limitParam(r *http.Request) int {
	limit := getIntParam(r, "limit", h.api.DefaultPageSize)
	if limit < 1 {
		limit = h.api.DefaultPageSize
	}
	if limit > h.api.MaxPageSize {
		limit = h.api.MaxPageSize
	}
	return limit
}

// Health reports overall service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "healthy"
	code := http.StatusOK
	if err := h.store.Ping(); err != nil {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}
	respondSuccess(w, code, map[string]string{"status": status}, start)
}

// HealthLive is the liveness probe: the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "alive"}, time.Now())
}

// HealthReady is the readiness probe: the store is usable.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if err := h.store.Ping(); err != nil {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "store not ready", err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]string{"status": "ready"}, start)
}
