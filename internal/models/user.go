// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package models

import (
	"time"
)

// Location is a latitude/longitude pair in degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// User represents a platform user.
//
// Email is unique across all users (enforced by the record store's
// secondary index). Location is the user's last-known position and may be
// absent. Interests is a set of free-form tags; order is irrelevant and
// the store keeps them sorted for deterministic output.
type User struct {
	ID              string    `json:"id"`
	UID             string    `json:"uid,omitempty"` // external auth identifier
	DisplayName     string    `json:"display_name"`
	Email           string    `json:"email"`
	Bio             string    `json:"bio,omitempty"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
	Interests       []string  `json:"interests"`
	Location        *Location `json:"location,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UserSummary is the compact user shape embedded in enriched responses
// (connection lists, attendee lists, feedback items).
type UserSummary struct {
	UserID          string `json:"user_id"`
	DisplayName     string `json:"display_name"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}

// UserUpdate carries a partial profile update. Nil fields leave the
// stored value unchanged.
type UserUpdate struct {
	DisplayName     *string `json:"display_name,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}
