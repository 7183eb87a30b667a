// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package models

import (
	"time"
)

// Privacy profile values.
const (
	PrivacyPublic      = "public"
	PrivacyPrivate     = "private"
	PrivacyFriendsOnly = "friends-only"
)

// Preferences holds a user's notification and privacy settings,
// one-to-one with User. Reading preferences for a user who never saved
// any returns DefaultPreferences.
type Preferences struct {
	UserID                  string    `json:"user_id"`
	NotificationEvents      bool      `json:"notification_events"`
	NotificationConnections bool      `json:"notification_connections"`
	NotificationMessages    bool      `json:"notification_messages"`
	PrivacyProfile          string    `json:"privacy_profile"`
	Timezone                string    `json:"timezone"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// PreferencesUpdate carries a partial preferences update. Nil fields
// leave the stored value unchanged.
type PreferencesUpdate struct {
	NotificationEvents      *bool   `json:"notification_events,omitempty"`
	NotificationConnections *bool   `json:"notification_connections,omitempty"`
	NotificationMessages    *bool   `json:"notification_messages,omitempty"`
	PrivacyProfile          *string `json:"privacy_profile,omitempty"`
	Timezone                *string `json:"timezone,omitempty"`
}

// DefaultPreferences returns the preferences applied to users who have
// not saved any.
func DefaultPreferences(userID string) Preferences {
	return Preferences{
		UserID:                  userID,
		NotificationEvents:      true,
		NotificationConnections: true,
		NotificationMessages:    true,
		PrivacyProfile:          PrivacyPublic,
		Timezone:                "UTC",
	}
}
