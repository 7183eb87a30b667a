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

// CreateUser handles POST /users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	u := &models.User{
		ID:              req.ID,
		UID:             req.UID,
		DisplayName:     req.DisplayName,
		Email:           req.Email,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
		Interests:       req.Interests,
	}
	if req.Location != nil {
		u.Location = &models.Location{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
		}
	}

	if err := h.store.CreateUser(r.Context(), u); err != nil {
		respondStoreError(w, err, "User not found")
		return
	}
	respondSuccess(w, http.StatusCreated, u, start)
}

// GetUser handles GET /users/{user_id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	u, err := h.store.GetUser(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		respondStoreError(w, err, "User not found")
		return
	}
	respondSuccess(w, http.StatusOK, u, start)
}

// GetUserByEmail handles GET /users/by-email/{email}.
func (h *Handler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	u, err := h.store.GetUserByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		respondStoreError(w, err, "User not found")
		return
	}
	respondSuccess(w, http.StatusOK, u, start)
}

// UpdateUser handles PUT /users/{user_id}.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	u, err := h.store.UpdateUser(r.Context(), chi.URLParam(r, "user_id"), models.UserUpdate{
		DisplayName:     req.DisplayName,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		respondStoreError(w, err, "User not found")
		return
	}
	respondSuccess(w, http.StatusOK, u, start)
}

// SetUserInterests handles POST /users/{user_id}/interests.
func (h *Handler) SetUserInterests(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req interestsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	u, err := h.store.SetUserInterests(r.Context(), chi.URLParam(r, "user_id"), req.Interests)
	if err != nil {
		respondStoreError(w, err, "User not found")
		return
	}
	respondSuccess(w, http.StatusOK, u, start)
}

// SetUserLocation handles POST /users/{user_id}/location.
func (h *Handler) SetUserLocation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req locationPayload
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	u, err := h.store.SetUserLocation(r.Context(), chi.URLParam(r, "user_id"), models.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		respondStoreError(w, err, "User not found")
		return
	}
	respondSuccess(w, http.StatusOK, u, start)
}

// GetUserEvents handles GET /users/{user_id}/events?status. It returns
// the events the user has RSVPed to, optionally filtered by RSVP status.
func (h *Handler) GetUserEvents(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID := chi.URLParam(r, "user_id")

	if _, err := h.store.GetUser(r.Context(), userID); err != nil {
		respondStoreError(w, err, "User not found")
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" && status != models.RSVPAttending && status != models.RSVPInterested && status != models.RSVPDeclined {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"status must be one of: attending, interested, declined", nil)
		return
	}

	rsvps, err := h.store.ListUserRSVPs(r.Context(), userID, status)
	if err != nil {
		respondStoreError(w, err, "User not found")
		return
	}

	type userEvent struct {
		Event    *models.Event `json:"event"`
		Status   string        `json:"status"`
		RSVPDate time.Time     `json:"rsvp_date"`
	}
	out := make([]userEvent, 0, len(rsvps))
	for _, rsvp := range rsvps {
		ev, err := h.store.GetEvent(r.Context(), rsvp.EventID)
		if err != nil {
			continue
		}
		out = append(out, userEvent{Event: ev, Status: rsvp.Status, RSVPDate: rsvp.RSVPDate})
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"user_id": userID,
		"count":   len(out),
		"events":  out,
	}, start)
}
