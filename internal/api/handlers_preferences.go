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

// GetPreferences handles GET /preferences/{user_id}. Users without a
// stored record get the defaults.
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID := chi.URLParam(r, "user_id")

	if _, err := h.store.GetUser(r.Context(), userID); err != nil {
		respondStoreError(w, err, "User not found")
		return
	}

	p, err := h.store.GetPreferences(r.Context(), userID)
	if err != nil {
		respondStoreError(w, err, "User not found")
		return
	}
	respondSuccess(w, http.StatusOK, p, start)
}

// UpdatePreferences handles PUT /preferences/{user_id}. Omitted fields
// keep their current (or default) values.
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID := chi.URLParam(r, "user_id")

	var req preferencesUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if _, err := h.store.GetUser(r.Context(), userID); err != nil {
		respondStoreError(w, err, "User not found")
		return
	}

	p, err := h.store.UpdatePreferences(r.Context(), userID, models.PreferencesUpdate{
		NotificationEvents:      req.NotificationEvents,
		NotificationConnections: req.NotificationConnections,
		NotificationMessages:    req.NotificationMessages,
		PrivacyProfile:          req.PrivacyProfile,
		Timezone:                req.Timezone,
	})
	if err != nil {
		respondStoreError(w, err, "User not found")
		return
	}
	respondSuccess(w, http.StatusOK, p, start)
}
