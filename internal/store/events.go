// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package store

import (
	"context"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/tomtom215/convene/internal/models"
)

// CreateEvent stores a new event. A missing ID is assigned a UUID.
func (s *Store) CreateEvent(ctx context.Context, e *models.Event) error {
	if e.EndTime.Before(e.StartTime) {
		return ErrInvalidTimeRange
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.Category = normalizeTags(e.Category)
	if e.Schedule == nil {
		e.Schedule = []models.ScheduleItem{}
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	return s.update("create", "event", func(txn *badger.Txn) error {
		return setJSON(txn, eventKeyPrefix+e.ID, e)
	})
}

// GetEvent retrieves an event by id.
func (s *Store) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	var e models.Event
	err := s.view("get", "event", func(txn *badger.Txn) error {
		return getJSON(txn, eventKeyPrefix+id, &e)
	})
	if err != nil {
		return nil, err
	}
	if e.Schedule == nil {
		e.Schedule = []models.ScheduleItem{}
	}
	return &e, nil
}

// UpdateEvent applies a partial update and returns the updated record.
func (s *Store) UpdateEvent(ctx context.Context, id string, upd models.EventUpdate) (*models.Event, error) {
	var e models.Event
	err := s.update("update", "event", func(txn *badger.Txn) error {
		if err := getJSON(txn, eventKeyPrefix+id, &e); err != nil {
			return err
		}
		if upd.Title != nil {
			e.Title = *upd.Title
		}
		if upd.Description != nil {
			e.Description = *upd.Description
		}
		if upd.StartTime != nil {
			e.StartTime = *upd.StartTime
		}
		if upd.EndTime != nil {
			e.EndTime = *upd.EndTime
		}
		if upd.Venue != nil {
			e.Venue = upd.Venue
		}
		if upd.Category != nil {
			e.Category = normalizeTags(*upd.Category)
		}
		if upd.ImageURL != nil {
			e.ImageURL = *upd.ImageURL
		}
		if upd.Price != nil {
			e.Price = *upd.Price
		}
		if upd.OrganizerName != nil {
			e.OrganizerName = *upd.OrganizerName
		}
		if upd.OrganizerEmail != nil {
			e.OrganizerEmail = *upd.OrganizerEmail
		}
		if upd.OrganizerPhone != nil {
			e.OrganizerPhone = *upd.OrganizerPhone
		}
		if upd.Schedule != nil {
			e.Schedule = *upd.Schedule
		}
		if e.EndTime.Before(e.StartTime) {
			return ErrInvalidTimeRange
		}
		e.UpdatedAt = time.Now().UTC()
		return setJSON(txn, eventKeyPrefix+id, &e)
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteEvent removes an event together with its RSVPs and feedback so
// no dangling dependents survive the event.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	// Collect dependent keys under a snapshot first, then delete in one
	// write transaction.
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(eventKeyPrefix + id)); err != nil {
			return ErrNotFound
		}
		keys = append(keys, eventKeyPrefix+id)

		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for _, prefix := range []string{rsvpKeyPrefix + id + ":", feedbackKeyPrefix + id + ":"} {
			p := []byte(prefix)
			for it.Seek(p); it.ValidForPrefix(p); it.Next() {
				key := string(it.Item().KeyCopy(nil))
				keys = append(keys, key)

				// Mirror key: rsvp:<event>:<user> -> rsvp_user:<user>:<event>
				userID := strings.TrimPrefix(key, prefix)
				if strings.HasPrefix(prefix, rsvpKeyPrefix) {
					keys = append(keys, rsvpUserKeyPrefix+userID+":"+id)
				} else {
					keys = append(keys, feedbackUserKeyPrefix+userID+":"+id)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return s.update("delete", "event", func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
}

// intersects reports whether the two tag sets share at least one tag.
func intersects(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, t := range a {
		set[t] = struct{}{}
	}
	for _, t := range b {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

// ListEvents returns events matching the filter, ordered by id
// ascending. A zero filter returns everything.
func (s *Store) ListEvents(ctx context.Context, f models.EventFilter) ([]*models.Event, error) {
	organizer := strings.ToLower(strings.TrimSpace(f.OrganizerEmail))

	var events []*models.Event
	err := s.scanPrefix("list", "event", eventKeyPrefix, func(val []byte) error {
		var e models.Event
		if err := unmarshal(val, &e); err != nil {
			return err
		}
		if len(f.Categories) > 0 && !intersects(f.Categories, e.Category) {
			return nil
		}
		if f.StartAfter != nil && e.StartTime.Before(*f.StartAfter) {
			return nil
		}
		if f.StartBefore != nil && e.StartTime.After(*f.StartBefore) {
			return nil
		}
		if organizer != "" && strings.ToLower(e.OrganizerEmail) != organizer {
			return nil
		}
		if f.FreeOnly && e.Price != 0 {
			return nil
		}
		if e.Schedule == nil {
			e.Schedule = []models.ScheduleItem{}
		}
		events = append(events, &e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if f.Limit > 0 && len(events) > f.Limit {
		events = events[:f.Limit]
	}
	return events, nil
}
