// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// GetComprehensiveDashboard handles GET /dashboard/{event_id}/comprehensive.
// One payload carrying the event, its attendees and its feedback.
func (h *Handler) GetComprehensiveDashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	out, err := h.dashboard.Comprehensive(r.Context(), chi.URLParam(r, "event_id"))
	if err != nil {
		respondStoreError(w, err, "Event not found")
		return
	}
	respondSuccess(w, http.StatusOK, out, start)
}

// GetOrganizerDashboard handles GET /dashboard/organizer/{email}.
// Returns 404 when the organizer has no events.
func (h *Handler) GetOrganizerDashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	out, err := h.dashboard.Organizer(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		respondStoreError(w, err, "No events found for this organizer")
		return
	}
	respondSuccess(w, http.StatusOK, out, start)
}

// GetDashboardAttendees handles GET /dashboard/{event_id}/attendees.
func (h *Handler) GetDashboardAttendees(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	out, err := h.dashboard.Attendees(r.Context(), chi.URLParam(r, "event_id"))
	if err != nil {
		respondStoreError(w, err, "Event not found")
		return
	}
	respondSuccess(w, http.StatusOK, out, start)
}

// GetDashboardFeedback handles GET /dashboard/{event_id}/feedback.
func (h *Handler) GetDashboardFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	out, err := h.dashboard.Feedback(r.Context(), chi.URLParam(r, "event_id"))
	if err != nil {
		respondStoreError(w, err, "Event not found")
		return
	}
	respondSuccess(w, http.StatusOK, out, start)
}

// GetEventDetails handles GET /dashboard/{event_id}/details.
// Event fields plus the display names of attending users.
func (h *Handler) GetEventDetails(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	out, err := h.dashboard.Details(r.Context(), chi.URLParam(r, "event_id"))
	if err != nil {
		respondStoreError(w, err, "Event not found")
		return
	}
	respondSuccess(w, http.StatusOK, out, start)
}
