// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/convene/internal/metrics"
	"github.com/tomtom215/convene/internal/models"
	"github.com/tomtom215/convene/internal/recommend"
)

// RecommendEvents handles GET /events/recommendations/{user_id} with
// optional latitude, longitude, distance and limit parameters. Query
// coordinates override the user's stored location.
func (h *Handler) RecommendEvents(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID := chi.URLParam(r, "user_id")

	lat, err := getFloatParam(r, "latitude")
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}
	lon, err := getFloatParam(r, "longitude")
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}
	if (lat == nil) != (lon == nil) {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput,
			"latitude and longitude must be provided together", nil)
		return
	}
	maxKm, err := getFloatParam(r, "distance")
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}
	if maxKm != nil && *maxKm < 0 {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput,
			"distance must not be negative", nil)
		return
	}

	q := recommend.EventQuery{
		MaxDistanceKm: maxKm,
		Limit:         getIntParam(r, "limit", 0),
	}
	if lat != nil {
		q.Origin = &models.Location{Latitude: *lat, Longitude: *lon}
	}

	recs, err := h.events.Recommend(r.Context(), userID, q)
	if err != nil {
		respondStoreError(w, err, "User not found")
		return
	}
	metrics.RecordRecommendation("events", len(recs), time.Since(start))

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"user_id":         userID,
		"count":           len(recs),
		"recommendations": recs,
	}, start)
}

// RecommendConnections handles GET /connections/recommendations/{user_id}?limit.
func (h *Handler) RecommendConnections(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID := chi.URLParam(r, "user_id")

	recs, err := h.conns.Recommend(r.Context(), userID, getIntParam(r, "limit", 0))
	if err != nil {
		respondStoreError(w, err, "User not found")
		return
	}
	metrics.RecordRecommendation("connections", len(recs), time.Since(start))

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"user_id":         userID,
		"count":           len(recs),
		"recommendations": recs,
	}, start)
}

// RecommendEventConnections handles
// GET /connections/event/{event_id}/user/{user_id}?limit: people going
// to the same event the user might want to meet.
func (h *Handler) RecommendEventConnections(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	eventID := chi.URLParam(r, "event_id")
	userID := chi.URLParam(r, "user_id")

	recs, err := h.conns.RecommendForEvent(r.Context(), eventID, userID, getIntParam(r, "limit", 0))
	if err != nil {
		respondStoreError(w, err, "Event or user not found")
		return
	}
	metrics.RecordRecommendation("event_connections", len(recs), time.Since(start))

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"event_id":        eventID,
		"user_id":         userID,
		"count":           len(recs),
		"recommendations": recs,
	}, start)
}
