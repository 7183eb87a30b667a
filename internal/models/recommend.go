// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package models

// EventRecommendation is one ranked entry returned by the event
// recommendation engine. DistanceKm is rounded to two decimals for
// presentation; ranking uses the unrounded value.
type EventRecommendation struct {
	Event                   *Event   `json:"event"`
	MatchScore              float64  `json:"match_score"`
	DistanceKm              float64  `json:"distance_km"`
	ConnectionsAttending    int      `json:"connections_attending"`
	ConnectionsAttendingIDs []string `json:"connections_attending_ids,omitempty"`
}

// ConnectionRecommendation is one ranked entry returned by the
// connection recommendation engine.
type ConnectionRecommendation struct {
	UserID               string   `json:"user_id"`
	DisplayName          string   `json:"display_name"`
	ProfileImageURL      string   `json:"profile_image_url,omitempty"`
	MutualInterests      []string `json:"mutual_interests"`
	MutualConnections    int      `json:"mutual_connections"`
	EventsInCommon       int      `json:"events_in_common"`
	ConversationStarters []string `json:"conversation_starters"`
}
