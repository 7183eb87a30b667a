// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package store

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/convene/internal/models"
)

// UpsertRSVP records or replaces the user's RSVP for an event. One RSVP
// per (event, user) pair; re-submitting overwrites the previous status.
func (s *Store) UpsertRSVP(ctx context.Context, r *models.RSVP) error {
	r.RSVPDate = time.Now().UTC()

	return s.update("upsert", "rsvp", func(txn *badger.Txn) error {
		key := rsvpKeyPrefix + r.EventID + ":" + r.UserID
		if err := setJSON(txn, key, r); err != nil {
			return err
		}
		mirror := rsvpUserKeyPrefix + r.UserID + ":" + r.EventID
		return txn.Set([]byte(mirror), []byte(r.EventID))
	})
}

// GetRSVP retrieves the user's RSVP for an event.
func (s *Store) GetRSVP(ctx context.Context, eventID, userID string) (*models.RSVP, error) {
	var r models.RSVP
	err := s.view("get", "rsvp", func(txn *badger.Txn) error {
		return getJSON(txn, rsvpKeyPrefix+eventID+":"+userID, &r)
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteRSVP removes the user's RSVP for an event.
func (s *Store) DeleteRSVP(ctx context.Context, eventID, userID string) error {
	return s.update("delete", "rsvp", func(txn *badger.Txn) error {
		key := rsvpKeyPrefix + eventID + ":" + userID
		if _, err := txn.Get([]byte(key)); err != nil {
			return ErrNotFound
		}
		if err := txn.Delete([]byte(key)); err != nil {
			return err
		}
		return txn.Delete([]byte(rsvpUserKeyPrefix + userID + ":" + eventID))
	})
}

// ListEventRSVPs returns all RSVPs for an event, optionally filtered to a
// single status, ordered by user id.
func (s *Store) ListEventRSVPs(ctx context.Context, eventID, status string) ([]*models.RSVP, error) {
	var rsvps []*models.RSVP
	err := s.scanPrefix("list", "rsvp", rsvpKeyPrefix+eventID+":", func(val []byte) error {
		var r models.RSVP
		if err := unmarshal(val, &r); err != nil {
			return err
		}
		if status != "" && r.Status != status {
			return nil
		}
		rsvps = append(rsvps, &r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rsvps, nil
}

// ListUserRSVPs returns all of the user's RSVPs, optionally filtered to a
// single status, ordered by event id.
func (s *Store) ListUserRSVPs(ctx context.Context, userID, status string) ([]*models.RSVP, error) {
	var eventIDs []string
	err := s.scanPrefix("list", "rsvp", rsvpUserKeyPrefix+userID+":", func(val []byte) error {
		eventIDs = append(eventIDs, string(val))
		return nil
	})
	if err != nil {
		return nil, err
	}

	rsvps := make([]*models.RSVP, 0, len(eventIDs))
	err = s.db.View(func(txn *badger.Txn) error {
		for _, eventID := range eventIDs {
			var r models.RSVP
			if err := getJSON(txn, rsvpKeyPrefix+eventID+":"+userID, &r); err != nil {
				return err
			}
			if status != "" && r.Status != status {
				continue
			}
			rsvps = append(rsvps, &r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rsvps, nil
}

// AttendingEventIDs returns the ids of events the user has an attending
// RSVP for, as a set.
func (s *Store) AttendingEventIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	rsvps, err := s.ListUserRSVPs(ctx, userID, models.RSVPAttending)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]struct{}, len(rsvps))
	for _, r := range rsvps {
		ids[r.EventID] = struct{}{}
	}
	return ids, nil
}
