// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package recommend

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/tomtom215/convene/internal/geo"
	"github.com/tomtom215/convene/internal/models"
	"github.com/tomtom215/convene/internal/store"
)

// ErrMissingLocation indicates a distance-bounded recommendation was
// requested but neither the query nor the user's profile carries an
// origin coordinate.
var ErrMissingLocation = errors.New("no origin location for distance search")

// EventEngine ranks upcoming events for a user by interest overlap and
// venue proximity.
type EventEngine struct {
	store *store.Store
	cfg   Config
	now   func() time.Time
}

// NewEventEngine builds an event recommendation engine over the store.
func NewEventEngine(s *store.Store, cfg Config) *EventEngine {
	return &EventEngine{store: s, cfg: cfg, now: time.Now}
}

// EventQuery parameterizes one recommendation call. Zero-valued fields
// fall back to configuration defaults.
type EventQuery struct {
	// Origin overrides the user's stored location when non-nil.
	Origin *models.Location

	// MaxDistanceKm bounds the search radius. Nil means the configured
	// default; an explicit 0 keeps exact coordinate matches only.
	MaxDistanceKm *float64

	// Limit caps the result list. Zero means the configured default.
	Limit int
}

// Recommend returns up to limit upcoming events ranked by
// interest-overlap and proximity score, best first. Ties break on
// earlier start time, then event id.
func (e *EventEngine) Recommend(ctx context.Context, userID string, q EventQuery) ([]*models.EventRecommendation, error) {
	user, err := e.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	origin := q.Origin
	if origin == nil {
		origin = user.Location
	}
	if origin == nil {
		return nil, ErrMissingLocation
	}

	maxKm := e.cfg.DefaultMaxDistanceKm
	if q.MaxDistanceKm != nil {
		maxKm = *q.MaxDistanceKm
	}
	limit := q.Limit
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}

	events, err := e.store.ListEvents(ctx, models.EventFilter{})
	if err != nil {
		return nil, err
	}

	// Candidates: upcoming events whose venue has coordinates.
	now := e.now().UTC()
	byID := make(map[string]*models.Event, len(events))
	var points []geo.Point
	for _, ev := range events {
		if ev.StartTime.Before(now) {
			continue
		}
		if ev.Venue == nil || !ev.Venue.HasCoordinates() {
			continue
		}
		byID[ev.ID] = ev
		points = append(points, geo.Point{
			ID:  ev.ID,
			Lat: *ev.Venue.Latitude,
			Lon: *ev.Venue.Longitude,
		})
	}

	neighbors := geo.WithinRadius(origin.Latitude, origin.Longitude, maxKm, points)
	if len(neighbors) == 0 {
		return []*models.EventRecommendation{}, nil
	}

	peers, err := e.store.AcceptedPeerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	peerSet := make(map[string]struct{}, len(peers))
	for _, p := range peers {
		peerSet[p] = struct{}{}
	}

	interests := make(map[string]struct{}, len(user.Interests))
	for _, i := range user.Interests {
		interests[i] = struct{}{}
	}

	recs := make([]*models.EventRecommendation, 0, len(neighbors))
	for _, n := range neighbors {
		ev := byID[n.ID]

		attendingPeers, err := e.connectionsAttending(ctx, ev.ID, peerSet)
		if err != nil {
			return nil, err
		}

		recs = append(recs, &models.EventRecommendation{
			Event:                   ev,
			MatchScore:              e.score(interests, ev.Category, n.DistanceKm, maxKm),
			DistanceKm:              geo.RoundKm(n.DistanceKm),
			ConnectionsAttending:    len(attendingPeers),
			ConnectionsAttendingIDs: attendingPeers,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].MatchScore != recs[j].MatchScore {
			return recs[i].MatchScore > recs[j].MatchScore
		}
		if !recs[i].Event.StartTime.Equal(recs[j].Event.StartTime) {
			return recs[i].Event.StartTime.Before(recs[j].Event.StartTime)
		}
		return recs[i].Event.ID < recs[j].Event.ID
	})

	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

// score combines interest overlap with proximity. A user with no
// interests is ranked on proximity alone.
func (e *EventEngine) score(interests map[string]struct{}, category []string, distKm, maxKm float64) float64 {
	proximity := 1.0
	if maxKm > 0 {
		proximity = clamp((maxKm-distKm)/maxKm, 0, 1)
	}
	if len(interests) == 0 {
		return proximity
	}

	matched := 0
	for _, c := range category {
		if _, ok := interests[c]; ok {
			matched++
		}
	}
	denom := len(category)
	if denom < 1 {
		denom = 1
	}
	overlap := float64(matched) / float64(denom)

	return e.cfg.InterestWeight*overlap + e.cfg.ProximityWeight*proximity
}

// connectionsAttending returns the sorted ids of the user's accepted
// peers holding an attending RSVP on the event.
func (e *EventEngine) connectionsAttending(ctx context.Context, eventID string, peers map[string]struct{}) ([]string, error) {
	if len(peers) == 0 {
		return nil, nil
	}
	rsvps, err := e.store.ListEventRSVPs(ctx, eventID, models.RSVPAttending)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, r := range rsvps {
		if _, ok := peers[r.UserID]; ok {
			ids = append(ids, r.UserID)
		}
	}
	return ids, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
