// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package models

import (
	"time"
)

// ComprehensiveDashboard joins an event with its attendees and feedback
// into a single read view (GET /dashboard/{event_id}/comprehensive).
type ComprehensiveDashboard struct {
	Event     *Event          `json:"event"`
	Attendees AttendeeSection `json:"attendees"`
	Feedback  FeedbackSection `json:"feedback"`
}

// AttendeeSection lists attending RSVPs enriched with user profiles,
// ordered by rsvp_date ascending.
type AttendeeSection struct {
	Count int        `json:"count"`
	List  []Attendee `json:"list"`
}

// FeedbackSection lists feedback enriched with user profiles, ordered by
// created_at ascending. AverageRating is 0 (never NaN or null) when the
// list is empty.
type FeedbackSection struct {
	Count         int                `json:"count"`
	AverageRating float64            `json:"average_rating"`
	List          []EnrichedFeedback `json:"list"`
}

// OrganizerDashboard summarizes all events run by one organizer email
// (GET /dashboard/organizer/{email}).
type OrganizerDashboard struct {
	OrganizerEmail string         `json:"organizer_email"`
	Stats          OrganizerStats `json:"stats"`
	UpcomingEvents []EventSummary `json:"upcoming_events"`
	PastEvents     []EventSummary `json:"past_events"`
}

// OrganizerStats aggregates attendance and ratings across an organizer's
// events. AverageRating is 0 when no feedback exists. AttendanceRate is
// total attendees divided by total events, floored.
type OrganizerStats struct {
	TotalEvents    int     `json:"total_events"`
	TotalAttendees int     `json:"total_attendees"`
	AverageRating  float64 `json:"average_rating"`
	AttendanceRate int     `json:"attendance_rate"`
}

// EventSummary is the compact event shape used in organizer dashboards;
// the full event payload is not repeated there.
type EventSummary struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	StartTime      time.Time `json:"start_time"`
	Venue          string    `json:"venue,omitempty"`
	AttendeesCount int       `json:"attendees_count"`
}

// EventAttendeeList is the simplified attendee view
// (GET /dashboard/{event_id}/attendees).
type EventAttendeeList struct {
	EventID        string     `json:"event_id"`
	AttendeesCount int        `json:"attendees_count"`
	Attendees      []Attendee `json:"attendees"`
}

// EventFeedbackList is the feedback view (GET /dashboard/{event_id}/feedback).
type EventFeedbackList struct {
	EventID       string             `json:"event_id"`
	FeedbackCount int                `json:"feedback_count"`
	AverageRating float64            `json:"average_rating"`
	Feedback      []EnrichedFeedback `json:"feedback"`
}

// EventDetails is an event enriched with attendee display names
// (GET /dashboard/{event_id}/details).
type EventDetails struct {
	Event
	AttendeeNames []string `json:"attendee_names"`
}
