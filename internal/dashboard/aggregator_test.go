// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/convene/internal/models"
	"github.com/tomtom215/convene/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(store.Options{InMemory: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s *store.Store, id, name string) {
	t.Helper()

	u := &models.User{ID: id, DisplayName: name, Email: id + "@example.com"}
	if err := s.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("CreateUser(%s): %v", id, err)
	}
}

func seedEvent(t *testing.T, s *store.Store, id string, start time.Time, organizer string) {
	t.Helper()

	e := &models.Event{
		ID:             id,
		Title:          id,
		StartTime:      start,
		EndTime:        start.Add(2 * time.Hour),
		OrganizerEmail: organizer,
		Venue:          &models.Venue{Name: id + " hall"},
	}
	if err := s.CreateEvent(context.Background(), e); err != nil {
		t.Fatalf("CreateEvent(%s): %v", id, err)
	}
}

func TestComprehensive(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	agg := New(s)

	seedUser(t, s, "u1", "Ada")
	seedUser(t, s, "u2", "Grace")
	seedUser(t, s, "u3", "Edsger")
	seedEvent(t, s, "gig", time.Now().UTC().Add(24*time.Hour), "org@example.com")

	rsvps := []*models.RSVP{
		{UserID: "u1", EventID: "gig", Status: models.RSVPAttending},
		{UserID: "u2", EventID: "gig", Status: models.RSVPAttending},
		{UserID: "u3", EventID: "gig", Status: models.RSVPInterested},
	}
	for _, r := range rsvps {
		if err := s.UpsertRSVP(ctx, r); err != nil {
			t.Fatalf("UpsertRSVP(%s): %v", r.UserID, err)
		}
	}

	for _, f := range []*models.Feedback{
		{UserID: "u1", EventID: "gig", Rating: 4, Comment: "good"},
		{UserID: "u2", EventID: "gig", Rating: 5},
	} {
		if err := s.UpsertFeedback(ctx, f); err != nil {
			t.Fatalf("UpsertFeedback(%s): %v", f.UserID, err)
		}
	}

	d, err := agg.Comprehensive(ctx, "gig")
	if err != nil {
		t.Fatalf("Comprehensive: %v", err)
	}
	if d.Event.ID != "gig" {
		t.Errorf("event id = %q", d.Event.ID)
	}
	// Interested RSVPs do not count as attendees.
	if d.Attendees.Count != 2 {
		t.Errorf("attendees count = %d, want 2", d.Attendees.Count)
	}
	if d.Feedback.Count != 2 {
		t.Errorf("feedback count = %d, want 2", d.Feedback.Count)
	}
	if d.Feedback.AverageRating != 4.5 {
		t.Errorf("average rating = %v, want 4.5", d.Feedback.AverageRating)
	}
	if d.Feedback.List[0].User.DisplayName == "" {
		t.Error("feedback not enriched with user profile")
	}

	if _, err := agg.Comprehensive(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown event err = %v, want ErrNotFound", err)
	}
}

func TestComprehensiveEmptySections(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	agg := New(s)

	seedEvent(t, s, "quiet", time.Now().UTC().Add(24*time.Hour), "")

	d, err := agg.Comprehensive(ctx, "quiet")
	if err != nil {
		t.Fatalf("Comprehensive: %v", err)
	}
	if d.Attendees.Count != 0 || len(d.Attendees.List) != 0 {
		t.Errorf("attendees not empty: %+v", d.Attendees)
	}
	// No feedback means average 0, never NaN.
	if d.Feedback.AverageRating != 0 {
		t.Errorf("average rating = %v, want 0", d.Feedback.AverageRating)
	}
}

func TestOrganizer(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	agg := New(s)

	seedUser(t, s, "u1", "Ada")
	seedUser(t, s, "u2", "Grace")
	seedUser(t, s, "u3", "Edsger")

	now := time.Now().UTC()
	seedEvent(t, s, "past-gig", now.Add(-48*time.Hour), "Org@Example.com")
	seedEvent(t, s, "next-gig", now.Add(48*time.Hour), "org@example.com")
	seedEvent(t, s, "other", now.Add(48*time.Hour), "someone-else@example.com")

	for _, uid := range []string{"u1", "u2", "u3"} {
		if err := s.UpsertRSVP(ctx, &models.RSVP{UserID: uid, EventID: "past-gig", Status: models.RSVPAttending}); err != nil {
			t.Fatalf("UpsertRSVP: %v", err)
		}
	}
	if err := s.UpsertFeedback(ctx, &models.Feedback{UserID: "u1", EventID: "past-gig", Rating: 4}); err != nil {
		t.Fatalf("UpsertFeedback: %v", err)
	}
	if err := s.UpsertFeedback(ctx, &models.Feedback{UserID: "u2", EventID: "past-gig", Rating: 5}); err != nil {
		t.Fatalf("UpsertFeedback: %v", err)
	}

	// Lookup is case-insensitive across stored and queried emails.
	d, err := agg.Organizer(ctx, "ORG@example.com")
	if err != nil {
		t.Fatalf("Organizer: %v", err)
	}
	if d.Stats.TotalEvents != 2 {
		t.Errorf("TotalEvents = %d, want 2", d.Stats.TotalEvents)
	}
	if d.Stats.TotalAttendees != 3 {
		t.Errorf("TotalAttendees = %d, want 3", d.Stats.TotalAttendees)
	}
	if d.Stats.AverageRating != 4.5 {
		t.Errorf("AverageRating = %v, want 4.5", d.Stats.AverageRating)
	}
	// Integer division: 3 attendees / 2 events.
	if d.Stats.AttendanceRate != 1 {
		t.Errorf("AttendanceRate = %d, want 1", d.Stats.AttendanceRate)
	}
	if len(d.UpcomingEvents) != 1 || d.UpcomingEvents[0].ID != "next-gig" {
		t.Errorf("UpcomingEvents = %+v", d.UpcomingEvents)
	}
	if len(d.PastEvents) != 1 || d.PastEvents[0].ID != "past-gig" {
		t.Errorf("PastEvents = %+v", d.PastEvents)
	}
	if d.PastEvents[0].AttendeesCount != 3 {
		t.Errorf("past AttendeesCount = %d, want 3", d.PastEvents[0].AttendeesCount)
	}

	if _, err := agg.Organizer(ctx, "nobody@example.com"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown organizer err = %v, want ErrNotFound", err)
	}
}

func TestOrganizerEventOrdering(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	agg := New(s)

	now := time.Now().UTC()
	// Upcoming sorts soonest first; past sorts most recent first.
	seedEvent(t, s, "up-late", now.Add(72*time.Hour), "org@example.com")
	seedEvent(t, s, "up-soon", now.Add(24*time.Hour), "org@example.com")
	seedEvent(t, s, "past-old", now.Add(-72*time.Hour), "org@example.com")
	seedEvent(t, s, "past-recent", now.Add(-24*time.Hour), "org@example.com")

	d, err := agg.Organizer(ctx, "org@example.com")
	if err != nil {
		t.Fatalf("Organizer: %v", err)
	}
	if d.UpcomingEvents[0].ID != "up-soon" || d.UpcomingEvents[1].ID != "up-late" {
		t.Errorf("upcoming order: %+v", d.UpcomingEvents)
	}
	if d.PastEvents[0].ID != "past-recent" || d.PastEvents[1].ID != "past-old" {
		t.Errorf("past order: %+v", d.PastEvents)
	}
}

func TestAttendeesFeedbackDetails(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	agg := New(s)

	seedUser(t, s, "u1", "Ada")
	seedUser(t, s, "u2", "Grace")
	seedEvent(t, s, "gig", time.Now().UTC().Add(24*time.Hour), "org@example.com")

	for _, uid := range []string{"u1", "u2"} {
		if err := s.UpsertRSVP(ctx, &models.RSVP{UserID: uid, EventID: "gig", Status: models.RSVPAttending}); err != nil {
			t.Fatalf("UpsertRSVP: %v", err)
		}
	}
	if err := s.UpsertFeedback(ctx, &models.Feedback{UserID: "u1", EventID: "gig", Rating: 3}); err != nil {
		t.Fatalf("UpsertFeedback: %v", err)
	}

	att, err := agg.Attendees(ctx, "gig")
	if err != nil {
		t.Fatalf("Attendees: %v", err)
	}
	if att.AttendeesCount != 2 || len(att.Attendees) != 2 {
		t.Errorf("attendees = %+v", att)
	}

	fb, err := agg.Feedback(ctx, "gig")
	if err != nil {
		t.Fatalf("Feedback: %v", err)
	}
	if fb.FeedbackCount != 1 || fb.AverageRating != 3 {
		t.Errorf("feedback = %+v", fb)
	}

	det, err := agg.Details(ctx, "gig")
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if len(det.AttendeeNames) != 2 {
		t.Errorf("AttendeeNames = %v", det.AttendeeNames)
	}

	for _, call := range []func(context.Context, string) error{
		func(ctx context.Context, id string) error { _, err := agg.Attendees(ctx, id); return err },
		func(ctx context.Context, id string) error { _, err := agg.Feedback(ctx, id); return err },
		func(ctx context.Context, id string) error { _, err := agg.Details(ctx, id); return err },
	} {
		if err := call(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("unknown event err = %v, want ErrNotFound", err)
		}
	}
}
