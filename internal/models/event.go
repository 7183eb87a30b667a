// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package models

import (
	"time"
)

// Venue describes where an event takes place. Latitude/Longitude may be
// absent, in which case the event is excluded from distance-bounded
// queries.
type Venue struct {
	Name      string   `json:"name"`
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether the venue carries a usable coordinate
// pair.
func (v *Venue) HasCoordinates() bool {
	return v != nil && v.Latitude != nil && v.Longitude != nil
}

// ScheduleItem is one entry of an event's programme. Its interval should
// fall within the parent event's interval, though upstream clients do not
// strictly enforce that.
type ScheduleItem struct {
	Title       string    `json:"title"`
	SpeakerName string    `json:"speaker_name,omitempty"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

// Event represents a scheduled event. EndTime is never before StartTime
// (validated on create/update). Category is a set of tags; the store
// keeps it sorted. Price of 0 means free.
type Event struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	StartTime      time.Time      `json:"start_time"`
	EndTime        time.Time      `json:"end_time"`
	Venue          *Venue         `json:"venue,omitempty"`
	Category       []string       `json:"category"`
	ImageURL       string         `json:"image_url,omitempty"`
	Price          float64        `json:"price"`
	OrganizerName  string         `json:"organizer_name,omitempty"`
	OrganizerEmail string         `json:"organizer_email,omitempty"`
	OrganizerPhone string         `json:"organizer_phone,omitempty"`
	Schedule       []ScheduleItem `json:"schedule"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// EventUpdate carries a partial event update. Nil fields leave the
// stored value unchanged.
type EventUpdate struct {
	Title          *string         `json:"title,omitempty"`
	Description    *string         `json:"description,omitempty"`
	StartTime      *time.Time      `json:"start_time,omitempty"`
	EndTime        *time.Time      `json:"end_time,omitempty"`
	Venue          *Venue          `json:"venue,omitempty"`
	Category       *[]string       `json:"category,omitempty"`
	ImageURL       *string         `json:"image_url,omitempty"`
	Price          *float64        `json:"price,omitempty"`
	OrganizerName  *string         `json:"organizer_name,omitempty"`
	OrganizerEmail *string         `json:"organizer_email,omitempty"`
	OrganizerPhone *string         `json:"organizer_phone,omitempty"`
	Schedule       *[]ScheduleItem `json:"schedule,omitempty"`
}

// EventFilter restricts ListEvents scans. Zero values mean "no bound".
type EventFilter struct {
	Categories     []string   // match events whose category intersects this set
	StartAfter     *time.Time // start_time >= StartAfter
	StartBefore    *time.Time // start_time <= StartBefore
	OrganizerEmail string     // case-insensitive exact match
	FreeOnly       bool       // price == 0
	Limit          int        // 0 = unlimited
}
