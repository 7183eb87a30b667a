// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package recommend

import (
	"context"
	"fmt"
	"sort"

	"github.com/tomtom215/convene/internal/models"
	"github.com/tomtom215/convene/internal/store"
)

// ConnectionEngine ranks candidate users a given user might want to
// connect with, scored on shared interests, mutual accepted connections
// and shared attending events.
type ConnectionEngine struct {
	store *store.Store
	cfg   Config
}

// NewConnectionEngine builds a connection recommendation engine over the
// store.
func NewConnectionEngine(s *store.Store, cfg Config) *ConnectionEngine {
	return &ConnectionEngine{store: s, cfg: cfg}
}

// Recommend returns up to limit candidate users ranked best first. Users
// already holding a pending or accepted connection with userID are
// excluded, as is userID itself. Candidates that share nothing with the
// user score zero and are dropped. Ties break on candidate id.
func (e *ConnectionEngine) Recommend(ctx context.Context, userID string, limit int) ([]*models.ConnectionRecommendation, error) {
	candidates, err := e.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return e.rank(ctx, userID, candidates, limit, false)
}

// RecommendForEvent restricts candidates to users with an attending or
// interested RSVP on the event, ranking them the same way. Everyone at
// the event is a candidate even with a zero score; the shared event is
// the context.
func (e *ConnectionEngine) RecommendForEvent(ctx context.Context, eventID, userID string, limit int) ([]*models.ConnectionRecommendation, error) {
	if _, err := e.store.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	rsvps, err := e.store.ListEventRSVPs(ctx, eventID, "")
	if err != nil {
		return nil, err
	}

	var candidates []*models.User
	for _, r := range rsvps {
		if r.Status == models.RSVPDeclined {
			continue
		}
		u, err := e.store.GetUser(ctx, r.UserID)
		if err != nil {
			// RSVP may outlive a deleted user; skip it.
			continue
		}
		candidates = append(candidates, u)
	}
	return e.rank(ctx, userID, candidates, limit, true)
}

// rank scores and orders the candidate set for userID.
func (e *ConnectionEngine) rank(ctx context.Context, userID string, candidates []*models.User, limit int, keepZero bool) ([]*models.ConnectionRecommendation, error) {
	user, err := e.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}

	// Users with a live connection to the requester are not candidates.
	conns, err := e.store.ListUserConnections(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	excluded := map[string]struct{}{userID: {}}
	for _, c := range conns {
		if c.IsLive() {
			excluded[c.OtherUser(userID)] = struct{}{}
		}
	}

	myPeers, err := e.store.AcceptedPeerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	myPeerSet := make(map[string]struct{}, len(myPeers))
	for _, p := range myPeers {
		myPeerSet[p] = struct{}{}
	}

	myEvents, err := e.store.AttendingEventIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	interests := make(map[string]struct{}, len(user.Interests))
	for _, i := range user.Interests {
		interests[i] = struct{}{}
	}

	type scored struct {
		rec   *models.ConnectionRecommendation
		score float64
	}
	var ranked []scored

	for _, cand := range candidates {
		if _, skip := excluded[cand.ID]; skip {
			continue
		}

		var shared []string
		for _, i := range cand.Interests {
			if _, ok := interests[i]; ok {
				shared = append(shared, i)
			}
		}
		sort.Strings(shared)

		candPeers, err := e.store.AcceptedPeerIDs(ctx, cand.ID)
		if err != nil {
			return nil, err
		}
		mutual := 0
		for _, p := range candPeers {
			if _, ok := myPeerSet[p]; ok {
				mutual++
			}
		}

		candEvents, err := e.store.AttendingEventIDs(ctx, cand.ID)
		if err != nil {
			return nil, err
		}
		sharedEvents := 0
		for id := range candEvents {
			if _, ok := myEvents[id]; ok {
				sharedEvents++
			}
		}

		score := e.cfg.SharedInterestWeight*float64(len(shared)) +
			e.cfg.MutualConnectionWeight*float64(mutual) +
			e.cfg.SharedEventWeight*float64(sharedEvents)
		if score == 0 && !keepZero {
			continue
		}

		ranked = append(ranked, scored{
			score: score,
			rec: &models.ConnectionRecommendation{
				UserID:               cand.ID,
				DisplayName:          cand.DisplayName,
				ProfileImageURL:      cand.ProfileImageURL,
				MutualInterests:      shared,
				MutualConnections:    mutual,
				EventsInCommon:       sharedEvents,
				ConversationStarters: starters(shared, mutual, sharedEvents),
			},
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].rec.UserID < ranked[j].rec.UserID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]*models.ConnectionRecommendation, len(ranked))
	for i, s := range ranked {
		out[i] = s.rec
	}
	return out, nil
}

// starters derives deterministic conversation openers from whatever the
// two users share.
func starters(sharedInterests []string, mutual, sharedEvents int) []string {
	var out []string
	if len(sharedInterests) > 0 {
		out = append(out, fmt.Sprintf("You both are interested in %s", sharedInterests[0]))
	}
	if mutual == 1 {
		out = append(out, "You have 1 mutual connection")
	} else if mutual > 1 {
		out = append(out, fmt.Sprintf("You have %d mutual connections", mutual))
	}
	if sharedEvents == 1 {
		out = append(out, "You are both attending 1 event")
	} else if sharedEvents > 1 {
		out = append(out, fmt.Sprintf("You are both attending %d events", sharedEvents))
	}
	if len(out) == 0 {
		out = append(out, "Say hello and introduce yourself")
	}
	return out
}
