// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/convene/internal/geo"
	"github.com/tomtom215/convene/internal/models"
)

// CreateEvent handles POST /events.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req createEventRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	e := &models.Event{
		ID:             req.ID,
		Title:          req.Title,
		Description:    req.Description,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Venue:          req.Venue.toVenue(),
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		Price:          req.Price,
		OrganizerName:  req.OrganizerName,
		OrganizerEmail: req.OrganizerEmail,
		OrganizerPhone: req.OrganizerPhone,
		Schedule:       toScheduleItems(req.Schedule),
	}

	if err := h.store.CreateEvent(r.Context(), e); err != nil {
		respondStoreError(w, err, "Event not found")
		return
	}
	respondSuccess(w, http.StatusCreated, e, start)
}

// GetEvent handles GET /events/{event_id}.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	e, err := h.store.GetEvent(r.Context(), chi.URLParam(r, "event_id"))
	if err != nil {
		respondStoreError(w, err, "Event not found")
		return
	}
	respondSuccess(w, http.StatusOK, e, start)
}

// ListEvents handles GET /events with optional filters: categories,
// start_date, end_date, latitude/longitude/max_distance_km, free_only
// and limit.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	startAfter, err := getTimeParam(r, "start_date")
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}
	startBefore, err := getTimeParam(r, "end_date")
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}

	filter := models.EventFilter{
		Categories:     parseCommaSeparated(q.Get("categories")),
		StartAfter:     startAfter,
		StartBefore:    startBefore,
		OrganizerEmail: q.Get("organizer_email"),
		FreeOnly:       q.Get("free_only") == "true",
	}

	events, err := h.store.ListEvents(r.Context(), filter)
	if err != nil {
		respondStoreError(w, err, "Event not found")
		return
	}

	// Optional distance filter over venue coordinates.
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
	maxKm, err := getFloatParam(r, "max_distance_km")
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}
	if maxKm != nil && (lat == nil || lon == nil) {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput,
			"max_distance_km requires latitude and longitude", nil)
		return
	}
	if lat != nil && lon != nil {
		radius := 50.0
		if maxKm != nil {
			radius = *maxKm
		}
		events = filterByDistance(events, *lat, *lon, radius)
	}

	limit := h.limitParam(r)
	if len(events) > limit {
		events = events[:limit]
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"count":  len(events),
		"events": events,
	}, start)
}

// filterByDistance keeps events whose venue lies within radius km of
// the origin, ordered nearest first.
func filterByDistance(events []*models.Event, lat, lon, radiusKm float64) []*models.Event {
	byID := make(map[string]*models.Event, len(events))
	var points []geo.Point
	for _, e := range events {
		if !e.Venue.HasCoordinates() {
			continue
		}
		byID[e.ID] = e
		points = append(points, geo.Point{ID: e.ID, Lat: *e.Venue.Latitude, Lon: *e.Venue.Longitude})
	}

	neighbors := geo.WithinRadius(lat, lon, radiusKm, points)
	out := make([]*models.Event, 0, len(neighbors))
	for _, n := range neighbors {
		out = append(out, byID[n.ID])
	}
	return out
}

// UpdateEvent handles PUT /events/{event_id}.
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req updateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	upd := models.EventUpdate{
		Title:          req.Title,
		Description:    req.Description,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Venue:          req.Venue.toVenue(),
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		Price:          req.Price,
		OrganizerName:  req.OrganizerName,
		OrganizerEmail: req.OrganizerEmail,
		OrganizerPhone: req.OrganizerPhone,
	}
	if req.Schedule != nil {
		items := toScheduleItems(*req.Schedule)
		upd.Schedule = &items
	}

	e, err := h.store.UpdateEvent(r.Context(), chi.URLParam(r, "event_id"), upd)
	if err != nil {
		respondStoreError(w, err, "Event not found")
		return
	}
	respondSuccess(w, http.StatusOK, e, start)
}

// DeleteEvent handles DELETE /events/{event_id}. RSVPs and feedback for
// the event are removed with it.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	eventID := chi.URLParam(r, "event_id")
	if err := h.store.DeleteEvent(r.Context(), eventID); err != nil {
		respondStoreError(w, err, "Event not found")
		return
	}
	respondSuccess(w, http.StatusOK, map[string]string{"deleted": eventID}, start)
}

// RSVP handles POST /events/{event_id}/rsvp. One RSVP per (event, user);
// re-submitting replaces the previous status.
func (h *Handler) RSVP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	eventID := chi.URLParam(r, "event_id")

	var req rsvpRequest
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
	if _, err := h.store.GetUser(r.Context(), req.UserID); err != nil {
		respondStoreError(w, err, "User not found")
		return
	}

	rsvp := &models.RSVP{UserID: req.UserID, EventID: eventID, Status: req.Status}
	if err := h.store.UpsertRSVP(r.Context(), rsvp); err != nil {
		respondStoreError(w, err, "Event not found")
		return
	}
	respondSuccess(w, http.StatusOK, rsvp, start)
}

// GetEventAttendees handles GET /events/{event_id}/attendees?status.
func (h *Handler) GetEventAttendees(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	eventID := chi.URLParam(r, "event_id")

	if _, err := h.store.GetEvent(r.Context(), eventID); err != nil {
		respondStoreError(w, err, "Event not found")
		return
	}

	status := r.URL.Query().Get("status")
	if status == "" {
		status = models.RSVPAttending
	}
	if status != models.RSVPAttending && status != models.RSVPInterested && status != models.RSVPDeclined {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"status must be one of: attending, interested, declined", nil)
		return
	}

	rsvps, err := h.store.ListEventRSVPs(r.Context(), eventID, status)
	if err != nil {
		respondStoreError(w, err, "Event not found")
		return
	}

	attendees := make([]models.Attendee, 0, len(rsvps))
	for _, rsvp := range rsvps {
		u, err := h.store.GetUser(r.Context(), rsvp.UserID)
		if err != nil {
			continue
		}
		attendees = append(attendees, models.Attendee{
			UserID:          u.ID,
			DisplayName:     u.DisplayName,
			ProfileImageURL: u.ProfileImageURL,
			Email:           u.Email,
			Status:          rsvp.Status,
			RSVPDate:        rsvp.RSVPDate,
		})
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"event_id":  eventID,
		"status":    status,
		"count":     len(attendees),
		"attendees": attendees,
	}, start)
}
