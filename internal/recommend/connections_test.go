// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package recommend

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/convene/internal/models"
	"github.com/tomtom215/convene/internal/store"
)

func TestConnectionRecommendScoring(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	engine := NewConnectionEngine(s, DefaultConfig())

	seedUser(t, s, "me", []string{"hiking", "jazz"}, nil)
	// Two shared interests: score 2*2 = 4.
	seedUser(t, s, "twin", []string{"hiking", "jazz"}, nil)
	// One mutual accepted connection: score 3*1 = 3.
	seedUser(t, s, "acquaintance", nil, nil)
	// Nothing in common: dropped.
	seedUser(t, s, "stranger", []string{"chess"}, nil)
	// The shared hub both "me" and "acquaintance" are connected to.
	seedUser(t, s, "hub", nil, nil)

	for _, pair := range [][2]string{{"me", "hub"}, {"acquaintance", "hub"}} {
		c := &models.Connection{FromUserID: pair[0], ToUserID: pair[1], Status: models.ConnectionAccepted}
		if err := s.CreateConnection(ctx, c); err != nil {
			t.Fatalf("CreateConnection(%v): %v", pair, err)
		}
	}

	recs, err := engine.Recommend(ctx, "me", 0)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	want := []string{"twin", "acquaintance"}
	if len(recs) != len(want) {
		t.Fatalf("got %v, want ids %v", recUserIDs(recs), want)
	}
	for i, id := range want {
		if recs[i].UserID != id {
			t.Errorf("recs[%d] = %q, want %q", i, recs[i].UserID, id)
		}
	}

	if got := recs[0].MutualInterests; len(got) != 2 || got[0] != "hiking" || got[1] != "jazz" {
		t.Errorf("MutualInterests = %v, want sorted [hiking jazz]", got)
	}
	if recs[1].MutualConnections != 1 {
		t.Errorf("MutualConnections = %d, want 1", recs[1].MutualConnections)
	}
	if len(recs[0].ConversationStarters) == 0 {
		t.Error("expected conversation starters")
	}
	if recs[0].ConversationStarters[0] != "You both are interested in hiking" {
		t.Errorf("starter = %q", recs[0].ConversationStarters[0])
	}
}

func TestConnectionRecommendExcludesLivePairs(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	engine := NewConnectionEngine(s, DefaultConfig())

	seedUser(t, s, "me", []string{"jazz"}, nil)
	seedUser(t, s, "pending-peer", []string{"jazz"}, nil)
	seedUser(t, s, "accepted-peer", []string{"jazz"}, nil)
	seedUser(t, s, "declined-peer", []string{"jazz"}, nil)

	conns := []*models.Connection{
		{FromUserID: "me", ToUserID: "pending-peer", Status: models.ConnectionPending},
		{FromUserID: "accepted-peer", ToUserID: "me", Status: models.ConnectionAccepted},
		{FromUserID: "me", ToUserID: "declined-peer", Status: models.ConnectionDeclined},
	}
	for _, c := range conns {
		if err := s.CreateConnection(ctx, c); err != nil {
			t.Fatalf("CreateConnection: %v", err)
		}
	}

	recs, err := engine.Recommend(ctx, "me", 0)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	// Only the declined counterpart is eligible again.
	if len(recs) != 1 || recs[0].UserID != "declined-peer" {
		t.Errorf("got %v, want [declined-peer]", recUserIDs(recs))
	}
}

func TestConnectionRecommendSharedEventsAndLimit(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	engine := NewConnectionEngine(s, DefaultConfig())

	seedUser(t, s, "me", nil, nil)
	seedUser(t, s, "a", nil, nil)
	seedUser(t, s, "b", nil, nil)
	seedUser(t, s, "c", nil, nil)

	start := time.Now().UTC().Add(24 * time.Hour)
	seedEvent(t, s, "gig", nil, start, 0, 0)

	// Everyone attending "gig" shares one event with "me": equal scores,
	// ties broken by user id.
	for _, uid := range []string{"me", "a", "b", "c"} {
		if err := s.UpsertRSVP(ctx, &models.RSVP{UserID: uid, EventID: "gig", Status: models.RSVPAttending}); err != nil {
			t.Fatalf("UpsertRSVP(%s): %v", uid, err)
		}
	}

	recs, err := engine.Recommend(ctx, "me", 2)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 2 || recs[0].UserID != "a" || recs[1].UserID != "b" {
		t.Errorf("got %v, want [a b]", recUserIDs(recs))
	}
	if recs[0].EventsInCommon != 1 {
		t.Errorf("EventsInCommon = %d, want 1", recs[0].EventsInCommon)
	}
}

func TestConnectionRecommendRepeatable(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	engine := NewConnectionEngine(s, DefaultConfig())

	seedUser(t, s, "me", []string{"hiking", "jazz"}, nil)
	seedUser(t, s, "twin", []string{"hiking", "jazz"}, nil)
	seedUser(t, s, "half", []string{"jazz"}, nil)
	seedUser(t, s, "also-half", []string{"hiking"}, nil)

	start := time.Now().UTC().Add(24 * time.Hour)
	seedEvent(t, s, "gig", nil, start, 0, 0)
	for _, uid := range []string{"me", "half", "also-half"} {
		if err := s.UpsertRSVP(ctx, &models.RSVP{UserID: uid, EventID: "gig", Status: models.RSVPAttending}); err != nil {
			t.Fatalf("UpsertRSVP(%s): %v", uid, err)
		}
	}

	first, err := engine.Recommend(ctx, "me", 0)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	second, err := engine.Recommend(ctx, "me", 0)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls diverged:\nfirst:  %v\nsecond: %v", recUserIDs(first), recUserIDs(second))
	}

	firstEvent, err := engine.RecommendForEvent(ctx, "gig", "me", 0)
	if err != nil {
		t.Fatalf("RecommendForEvent: %v", err)
	}
	secondEvent, err := engine.RecommendForEvent(ctx, "gig", "me", 0)
	if err != nil {
		t.Fatalf("RecommendForEvent: %v", err)
	}
	if !reflect.DeepEqual(firstEvent, secondEvent) {
		t.Errorf("repeated event-scoped calls diverged:\nfirst:  %v\nsecond: %v",
			recUserIDs(firstEvent), recUserIDs(secondEvent))
	}
}

func TestConnectionRecommendForEvent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	engine := NewConnectionEngine(s, DefaultConfig())

	seedUser(t, s, "me", []string{"jazz"}, nil)
	seedUser(t, s, "going", nil, nil)
	seedUser(t, s, "curious", []string{"jazz"}, nil)
	seedUser(t, s, "not-coming", []string{"jazz"}, nil)
	seedUser(t, s, "elsewhere", []string{"jazz"}, nil)

	start := time.Now().UTC().Add(24 * time.Hour)
	seedEvent(t, s, "gig", []string{"jazz"}, start, 0, 0)

	rsvps := []*models.RSVP{
		{UserID: "me", EventID: "gig", Status: models.RSVPAttending},
		{UserID: "going", EventID: "gig", Status: models.RSVPAttending},
		{UserID: "curious", EventID: "gig", Status: models.RSVPInterested},
		{UserID: "not-coming", EventID: "gig", Status: models.RSVPDeclined},
	}
	for _, r := range rsvps {
		if err := s.UpsertRSVP(ctx, r); err != nil {
			t.Fatalf("UpsertRSVP(%s): %v", r.UserID, err)
		}
	}

	recs, err := engine.RecommendForEvent(ctx, "gig", "me", 0)
	if err != nil {
		t.Fatalf("RecommendForEvent: %v", err)
	}
	// "curious" shares an interest; "going" shares nothing but is kept
	// because the event itself is the context. Declined RSVPs and
	// non-attendees are out.
	want := []string{"curious", "going"}
	if len(recs) != len(want) {
		t.Fatalf("got %v, want %v", recUserIDs(recs), want)
	}
	for i, id := range want {
		if recs[i].UserID != id {
			t.Errorf("recs[%d] = %q, want %q", i, recs[i].UserID, id)
		}
	}

	if _, err := engine.RecommendForEvent(ctx, "no-such-event", "me", 0); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown event err = %v, want ErrNotFound", err)
	}
}

func recUserIDs(recs []*models.ConnectionRecommendation) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.UserID
	}
	return ids
}
