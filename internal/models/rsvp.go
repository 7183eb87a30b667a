// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package models

import (
	"time"
)

// RSVP status values.
const (
	RSVPAttending  = "attending"
	RSVPInterested = "interested"
	RSVPDeclined   = "declined"
)

// RSVP is a user's attendance declaration for an event. The store keeps
// at most one RSVP per (user, event) pair; a later RSVP for the same
// pair overwrites status and date.
type RSVP struct {
	UserID   string    `json:"user_id"`
	EventID  string    `json:"event_id"`
	Status   string    `json:"status"`
	RSVPDate time.Time `json:"rsvp_date"`
}

// Attendee is an RSVP joined with the user's profile, as embedded in
// attendee listings.
type Attendee struct {
	UserID          string    `json:"user_id"`
	DisplayName     string    `json:"display_name"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
	Email           string    `json:"email,omitempty"`
	Status          string    `json:"status,omitempty"`
	RSVPDate        time.Time `json:"rsvp_date"`
}
