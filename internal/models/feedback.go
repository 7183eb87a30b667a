// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package models

import (
	"time"
)

// Feedback is a user's rating and optional comment for an event. The
// store keeps at most one Feedback per (event, user) pair; a duplicate
// create resolves to an update of the existing record rather than a
// second insert, because the API addresses feedback by (event_id,
// user_id), not by feedback id.
type Feedback struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"` // 1-5 inclusive
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EnrichedFeedback is a feedback record joined with the submitting
// user's profile.
type EnrichedFeedback struct {
	Feedback
	User UserSummary `json:"user"`
}
