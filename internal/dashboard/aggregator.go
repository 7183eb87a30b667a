// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

// Package dashboard builds the composed read views: per-event
// comprehensive dashboards and per-organizer summaries. All views are
// assembled from store snapshots at request time; nothing is cached.
package dashboard

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/convene/internal/models"
	"github.com/tomtom215/convene/internal/store"
)

// Aggregator composes dashboard views from the record store.
type Aggregator struct {
	store *store.Store
	now   func() time.Time
}

// New builds a dashboard aggregator over the store.
func New(s *store.Store) *Aggregator {
	return &Aggregator{store: s, now: time.Now}
}

// Comprehensive joins an event with its attending RSVPs and feedback.
// Returns store.ErrNotFound when the event does not exist; an event with
// no attendees or feedback yields empty sections, not an error.
func (a *Aggregator) Comprehensive(ctx context.Context, eventID string) (*models.ComprehensiveDashboard, error) {
	event, err := a.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	attendees, err := a.attendees(ctx, eventID)
	if err != nil {
		return nil, err
	}
	feedback, avg, err := a.feedback(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return &models.ComprehensiveDashboard{
		Event: event,
		Attendees: models.AttendeeSection{
			Count: len(attendees),
			List:  attendees,
		},
		Feedback: models.FeedbackSection{
			Count:         len(feedback),
			AverageRating: avg,
			List:          feedback,
		},
	}, nil
}

// Organizer summarizes every event run by the given organizer email,
// matched case-insensitively. Returns store.ErrNotFound when no event
// carries the email.
func (a *Aggregator) Organizer(ctx context.Context, organizerEmail string) (*models.OrganizerDashboard, error) {
	events, err := a.store.ListEvents(ctx, models.EventFilter{OrganizerEmail: organizerEmail})
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, store.ErrNotFound
	}

	now := a.now().UTC()
	stats := models.OrganizerStats{TotalEvents: len(events)}
	upcoming := []models.EventSummary{}
	past := []models.EventSummary{}

	ratingSum, ratingCount := 0, 0
	for _, ev := range events {
		rsvps, err := a.store.ListEventRSVPs(ctx, ev.ID, models.RSVPAttending)
		if err != nil {
			return nil, err
		}
		stats.TotalAttendees += len(rsvps)

		feedback, err := a.store.ListEventFeedback(ctx, ev.ID)
		if err != nil {
			return nil, err
		}
		for _, f := range feedback {
			ratingSum += f.Rating
			ratingCount++
		}

		summary := models.EventSummary{
			ID:             ev.ID,
			Title:          ev.Title,
			StartTime:      ev.StartTime,
			AttendeesCount: len(rsvps),
		}
		if ev.Venue != nil {
			summary.Venue = ev.Venue.Name
		}
		if ev.StartTime.Before(now) {
			past = append(past, summary)
		} else {
			upcoming = append(upcoming, summary)
		}
	}

	if ratingCount > 0 {
		stats.AverageRating = roundRating(float64(ratingSum) / float64(ratingCount))
	}
	stats.AttendanceRate = stats.TotalAttendees / stats.TotalEvents

	sort.Slice(upcoming, func(i, j int) bool {
		if !upcoming[i].StartTime.Equal(upcoming[j].StartTime) {
			return upcoming[i].StartTime.Before(upcoming[j].StartTime)
		}
		return upcoming[i].ID < upcoming[j].ID
	})
	sort.Slice(past, func(i, j int) bool {
		if !past[i].StartTime.Equal(past[j].StartTime) {
			return past[i].StartTime.After(past[j].StartTime)
		}
		return past[i].ID < past[j].ID
	})

	return &models.OrganizerDashboard{
		OrganizerEmail: strings.ToLower(strings.TrimSpace(organizerEmail)),
		Stats:          stats,
		UpcomingEvents: upcoming,
		PastEvents:     past,
	}, nil
}

// Attendees is the simplified attendee view for one event.
func (a *Aggregator) Attendees(ctx context.Context, eventID string) (*models.EventAttendeeList, error) {
	if _, err := a.store.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	attendees, err := a.attendees(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return &models.EventAttendeeList{
		EventID:        eventID,
		AttendeesCount: len(attendees),
		Attendees:      attendees,
	}, nil
}

// Feedback is the feedback-plus-average view for one event.
func (a *Aggregator) Feedback(ctx context.Context, eventID string) (*models.EventFeedbackList, error) {
	if _, err := a.store.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	feedback, avg, err := a.feedback(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return &models.EventFeedbackList{
		EventID:       eventID,
		FeedbackCount: len(feedback),
		AverageRating: avg,
		Feedback:      feedback,
	}, nil
}

// Details returns the event enriched with its attendees' display names.
func (a *Aggregator) Details(ctx context.Context, eventID string) (*models.EventDetails, error) {
	event, err := a.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	attendees, err := a.attendees(ctx, eventID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(attendees))
	for _, at := range attendees {
		names = append(names, at.DisplayName)
	}
	return &models.EventDetails{
		Event:         *event,
		AttendeeNames: names,
	}, nil
}

// attendees loads the attending RSVPs for an event joined with user
// profiles, ordered by rsvp_date ascending with ties on user id. RSVPs
// whose user no longer exists are skipped.
func (a *Aggregator) attendees(ctx context.Context, eventID string) ([]models.Attendee, error) {
	rsvps, err := a.store.ListEventRSVPs(ctx, eventID, models.RSVPAttending)
	if err != nil {
		return nil, err
	}

	out := make([]models.Attendee, 0, len(rsvps))
	for _, r := range rsvps {
		u, err := a.store.GetUser(ctx, r.UserID)
		if err != nil {
			continue
		}
		out = append(out, models.Attendee{
			UserID:          u.ID,
			DisplayName:     u.DisplayName,
			ProfileImageURL: u.ProfileImageURL,
			Email:           u.Email,
			Status:          r.Status,
			RSVPDate:        r.RSVPDate,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].RSVPDate.Equal(out[j].RSVPDate) {
			return out[i].RSVPDate.Before(out[j].RSVPDate)
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

// feedback loads an event's feedback joined with user profiles, ordered
// by created_at ascending, plus the rounded average rating (0 when
// empty).
func (a *Aggregator) feedback(ctx context.Context, eventID string) ([]models.EnrichedFeedback, float64, error) {
	records, err := a.store.ListEventFeedback(ctx, eventID)
	if err != nil {
		return nil, 0, err
	}

	out := make([]models.EnrichedFeedback, 0, len(records))
	sum := 0
	for _, f := range records {
		sum += f.Rating

		enriched := models.EnrichedFeedback{Feedback: *f}
		if u, err := a.store.GetUser(ctx, f.UserID); err == nil {
			enriched.User = models.UserSummary{
				UserID:          u.ID,
				DisplayName:     u.DisplayName,
				ProfileImageURL: u.ProfileImageURL,
			}
		}
		out = append(out, enriched)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].UserID < out[j].UserID
	})

	avg := 0.0
	if len(out) > 0 {
		avg = roundRating(float64(sum) / float64(len(out)))
	}
	return out, avg, nil
}

// roundRating rounds an average rating to two decimal places.
func roundRating(v float64) float64 {
	return math.Round(v*100) / 100
}
