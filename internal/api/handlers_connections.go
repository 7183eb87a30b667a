// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/convene/internal/models"
	"github.com/tomtom215/convene/internal/store"
)

// RequestConnection handles POST /connections/request. At most one live
// (pending or accepted) connection may exist per user pair; a declined
// request does not block a new one.
func (h *Handler) RequestConnection(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req connectionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if _, err := h.store.GetUser(r.Context(), req.FromUserID); err != nil {
		respondStoreError(w, err, "Requesting user not found")
		return
	}
	if _, err := h.store.GetUser(r.Context(), req.ToUserID); err != nil {
		respondStoreError(w, err, "Target user not found")
		return
	}

	_, err := h.store.FindLiveConnectionByPair(r.Context(), req.FromUserID, req.ToUserID)
	if err == nil {
		respondError(w, http.StatusConflict, models.ErrCodeConflict,
			"A connection between these users already exists", nil)
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		respondStoreError(w, err, "Connection not found")
		return
	}

	c := &models.Connection{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Status:     models.ConnectionPending,
	}
	if err := h.store.CreateConnection(r.Context(), c); err != nil {
		respondStoreError(w, err, "Connection not found")
		return
	}
	respondSuccess(w, http.StatusCreated, c, start)
}

// RespondConnection handles POST /connections/respond. Accept marks the
// connection accepted; decline marks it declined but keeps the record.
func (h *Handler) RespondConnection(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req connectionRespondRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	c, err := h.store.GetConnection(r.Context(), req.ConnectionID)
	if err != nil {
		respondStoreError(w, err, "Connection not found")
		return
	}
	if c.Status != models.ConnectionPending {
		respondError(w, http.StatusConflict, models.ErrCodeConflict,
			"Connection has already been responded to", nil)
		return
	}

	status := models.ConnectionAccepted
	if req.Action == "decline" {
		status = models.ConnectionDeclined
	}

	c, err = h.store.UpdateConnectionStatus(r.Context(), req.ConnectionID, status)
	if err != nil {
		respondStoreError(w, err, "Connection not found")
		return
	}
	respondSuccess(w, http.StatusOK, c, start)
}

// ListUserConnections handles GET /connections/user/{user_id}?status.
// Each entry is enriched with the other user's summary; connections
// whose counterpart user has been deleted are skipped.
func (h *Handler) ListUserConnections(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID := chi.URLParam(r, "user_id")

	if _, err := h.store.GetUser(r.Context(), userID); err != nil {
		respondStoreError(w, err, "User not found")
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" && status != models.ConnectionPending && status != models.ConnectionAccepted && status != models.ConnectionDeclined {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"status must be one of: pending, accepted, declined", nil)
		return
	}

	conns, err := h.store.ListUserConnections(r.Context(), userID, status)
	if err != nil {
		respondStoreError(w, err, "User not found")
		return
	}

	enriched := make([]models.EnrichedConnection, 0, len(conns))
	for _, c := range conns {
		other, err := h.store.GetUser(r.Context(), c.OtherUser(userID))
		if err != nil {
			continue
		}
		enriched = append(enriched, models.EnrichedConnection{
			ConnectionID: c.ID,
			Status:       c.Status,
			CreatedAt:    c.CreatedAt,
			UpdatedAt:    c.UpdatedAt,
			IsOutgoing:   c.FromUserID == userID,
			User: models.UserSummary{
				UserID:          other.ID,
				DisplayName:     other.DisplayName,
				ProfileImageURL: other.ProfileImageURL,
			},
		})
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"user_id":     userID,
		"count":       len(enriched),
		"connections": enriched,
	}, start)
}

// DeleteConnection handles DELETE /connections/{connection_id}.
func (h *Handler) DeleteConnection(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	connID := chi.URLParam(r, "connection_id")
	if err := h.store.DeleteConnection(r.Context(), connID); err != nil {
		respondStoreError(w, err, "Connection not found")
		return
	}
	respondSuccess(w, http.StatusOK, map[string]string{"deleted": connID}, start)
}
