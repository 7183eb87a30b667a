// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package api

import (
	"time"

	"github.com/tomtom215/convene/internal/models"
)

// Request payloads, validated with go-playground/validator before any
// store access.

type locationPayload struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

type createUserRequest struct {
	ID              string           `json:"id" validate:"omitempty,max=128"`
	UID             string           `json:"uid" validate:"omitempty,max=128"`
	DisplayName     string           `json:"display_name" validate:"required,max=200"`
	Email           string           `json:"email" validate:"required,email"`
	Bio             string           `json:"bio" validate:"omitempty,max=2000"`
	ProfileImageURL string           `json:"profile_image_url" validate:"omitempty,url"`
	Interests       []string         `json:"interests"`
	Location        *locationPayload `json:"location"`
}

type updateUserRequest struct {
	DisplayName     *string `json:"display_name" validate:"omitempty,max=200"`
	Bio             *string `json:"bio" validate:"omitempty,max=2000"`
	ProfileImageURL *string `json:"profile_image_url" validate:"omitempty,url"`
}

type interestsRequest struct {
	Interests []string `json:"interests" validate:"required"`
}

type venuePayload struct {
	Name      string   `json:"name" validate:"required,max=300"`
	Address   string   `json:"address" validate:"omitempty,max=500"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

type scheduleItemPayload struct {
	Title       string    `json:"title" validate:"required,max=300"`
	SpeakerName string    `json:"speaker_name" validate:"omitempty,max=200"`
	Description string    `json:"description" validate:"omitempty,max=2000"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required,gtefield=StartTime"`
}

type createEventRequest struct {
	ID             string                `json:"id" validate:"omitempty,max=128"`
	Title          string                `json:"title" validate:"required,max=300"`
	Description    string                `json:"description" validate:"omitempty,max=5000"`
	StartTime      time.Time             `json:"start_time" validate:"required"`
	EndTime        time.Time             `json:"end_time" validate:"required,gtefield=StartTime"`
	Venue          *venuePayload         `json:"venue"`
	Category       []string              `json:"category"`
	ImageURL       string                `json:"image_url" validate:"omitempty,url"`
	Price          float64               `json:"price" validate:"gte=0"`
	OrganizerName  string                `json:"organizer_name" validate:"omitempty,max=200"`
	OrganizerEmail string                `json:"organizer_email" validate:"omitempty,email"`
	OrganizerPhone string                `json:"organizer_phone" validate:"omitempty,max=50"`
	Schedule       []scheduleItemPayload `json:"schedule" validate:"omitempty,dive"`
}

type updateEventRequest struct {
	Title          *string                `json:"title" validate:"omitempty,max=300"`
	Description    *string                `json:"description" validate:"omitempty,max=5000"`
	StartTime      *time.Time             `json:"start_time"`
	EndTime        *time.Time             `json:"end_time"`
	Venue          *venuePayload          `json:"venue"`
	Category       *[]string              `json:"category"`
	ImageURL       *string                `json:"image_url" validate:"omitempty,url"`
	Price          *float64               `json:"price" validate:"omitempty,gte=0"`
	OrganizerName  *string                `json:"organizer_name" validate:"omitempty,max=200"`
	OrganizerEmail *string                `json:"organizer_email" validate:"omitempty,email"`
	OrganizerPhone *string                `json:"organizer_phone" validate:"omitempty,max=50"`
	Schedule       *[]scheduleItemPayload `json:"schedule" validate:"omitempty,dive"`
}

type rsvpRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=attending interested declined"`
}

type connectionRequest struct {
	FromUserID string `json:"from_user_id" validate:"required"`
	ToUserID   string `json:"to_user_id" validate:"required,nefield=FromUserID"`
}

type connectionRespondRequest struct {
	ConnectionID string `json:"connection_id" validate:"required"`
	Action       string `json:"action" validate:"required,oneof=accept decline"`
}

type feedbackRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

type preferencesUpdateRequest struct {
	NotificationEvents      *bool   `json:"notification_events"`
	NotificationConnections *bool   `json:"notification_connections"`
	NotificationMessages    *bool   `json:"notification_messages"`
	PrivacyProfile          *string `json:"privacy_profile" validate:"omitempty,oneof=public private friends-only"`
	Timezone                *string `json:"timezone" validate:"omitempty,max=64"`
}

// toVenue converts the payload to the storage model.
func (v *venuePayload) toVenue() *models.Venue {
	if v == nil {
		return nil
	}
	return &models.Venue{
		Name:      v.Name,
		Address:   v.Address,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
	}
}

func toScheduleItems(items []scheduleItemPayload) []models.ScheduleItem {
	out := make([]models.ScheduleItem, len(items))
	for i, it := range items {
		out[i] = models.ScheduleItem{
			Title:       it.Title,
			SpeakerName: it.SpeakerName,
			Description: it.Description,
			StartTime:   it.StartTime,
			EndTime:     it.EndTime,
		}
	}
	return out
}
