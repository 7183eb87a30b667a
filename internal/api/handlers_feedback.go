// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/convene/internal/models"
)

// SubmitFeedback handles POST /feedback/{event_id}?user_id. One entry
// per (event, user); re-submitting replaces rating and comment.
func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	eventID := chi.URLParam(r, "event_id")

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, "user_id query parameter is required", nil)
		return
	}

	var req feedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if _, err := h.store.GetEvent(r.Context(), eventID); err != nil {
		respondStoreError(w, err, "Event not found")
		return
	}
	if _, err := h.store.GetUser(r.Context(), userID); err != nil {
		respondStoreError(w, err, "User not found")
		return
	}

	fb := &models.Feedback{
		EventID: eventID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := h.store.UpsertFeedback(r.Context(), fb); err != nil {
		respondStoreError(w, err, "Event not found")
		return
	}
	respondSuccess(w, http.StatusCreated, fb, start)
}

// GetEventFeedback handles GET /feedback/{event_id}, returning all
// feedback for the event enriched with author summaries.
func (h *Handler) GetEventFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	eventID := chi.URLParam(r, "event_id")

	out, err := h.dashboard.Feedback(r.Context(), eventID)
	if err != nil {
		respondStoreError(w, err, "Event not found")
		return
	}
	respondSuccess(w, http.StatusOK, out, start)
}

// GetUserEventFeedback handles GET /feedback/{event_id}/user/{user_id}.
func (h *Handler) GetUserEventFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	fb, err := h.store.GetFeedback(r.Context(), chi.URLParam(r, "event_id"), chi.URLParam(r, "user_id"))
	if err != nil {
		respondStoreError(w, err, "Feedback not found")
		return
	}
	respondSuccess(w, http.StatusOK, fb, start)
}

// UpdateFeedback handles PUT /feedback/{event_id}/user/{user_id}. The
// entry must already exist.
func (h *Handler) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	eventID := chi.URLParam(r, "event_id")
	userID := chi.URLParam(r, "user_id")

	var req feedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if _, err := h.store.GetFeedback(r.Context(), eventID, userID); err != nil {
		respondStoreError(w, err, "Feedback not found")
		return
	}

	fb := &models.Feedback{
		EventID: eventID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := h.store.UpsertFeedback(r.Context(), fb); err != nil {
		respondStoreError(w, err, "Feedback not found")
		return
	}
	respondSuccess(w, http.StatusOK, fb, start)
}

// DeleteFeedback handles DELETE /feedback/{event_id}/user/{user_id}.
func (h *Handler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	eventID := chi.URLParam(r, "event_id")
	userID := chi.URLParam(r, "user_id")

	if err := h.store.DeleteFeedback(r.Context(), eventID, userID); err != nil {
		respondStoreError(w, err, "Feedback not found")
		return
	}
	respondSuccess(w, http.StatusOK, map[string]string{
		"event_id": eventID,
		"user_id":  userID,
	}, start)
}

// GetUserFeedback handles GET /feedback/user/{user_id}, listing all
// feedback a user has submitted across events.
func (h *Handler) GetUserFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID := chi.URLParam(r, "user_id")

	if _, err := h.store.GetUser(r.Context(), userID); err != nil {
		respondStoreError(w, err, "User not found")
		return
	}

	items, err := h.store.ListUserFeedback(r.Context(), userID)
	if err != nil {
		respondStoreError(w, err, "User not found")
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"user_id":  userID,
		"count":    len(items),
		"feedback": items,
	}, start)
}
