// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package store

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/tomtom215/convene/internal/models"
)

// UpsertFeedback records or replaces the user's feedback for an event.
// One feedback record per (event, user) pair; resubmitting keeps the
// original id and creation time.
func (s *Store) UpsertFeedback(ctx context.Context, f *models.Feedback) error {
	now := time.Now().UTC()

	return s.update("upsert", "feedback", func(txn *badger.Txn) error {
		key := feedbackKeyPrefix + f.EventID + ":" + f.UserID

		var existing models.Feedback
		err := getJSON(txn, key, &existing)
		switch {
		case err == nil:
			f.ID = existing.ID
			f.CreatedAt = existing.CreatedAt
		case errors.Is(err, ErrNotFound):
			if f.ID == "" {
				f.ID = uuid.New().String()
			}
			f.CreatedAt = now
		default:
			return err
		}
		f.UpdatedAt = now

		if err := setJSON(txn, key, f); err != nil {
			return err
		}
		mirror := feedbackUserKeyPrefix + f.UserID + ":" + f.EventID
		return txn.Set([]byte(mirror), []byte(f.EventID))
	})
}

// GetFeedback retrieves the user's feedback for an event.
func (s *Store) GetFeedback(ctx context.Context, eventID, userID string) (*models.Feedback, error) {
	var f models.Feedback
	err := s.view("get", "feedback", func(txn *badger.Txn) error {
		return getJSON(txn, feedbackKeyPrefix+eventID+":"+userID, &f)
	})
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteFeedback removes the user's feedback for an event.
func (s *Store) DeleteFeedback(ctx context.Context, eventID, userID string) error {
	return s.update("delete", "feedback", func(txn *badger.Txn) error {
		key := feedbackKeyPrefix + eventID + ":" + userID
		if _, err := txn.Get([]byte(key)); err != nil {
			return ErrNotFound
		}
		if err := txn.Delete([]byte(key)); err != nil {
			return err
		}
		return txn.Delete([]byte(feedbackUserKeyPrefix + userID + ":" + eventID))
	})
}

// ListEventFeedback returns all feedback for an event, ordered by user id.
func (s *Store) ListEventFeedback(ctx context.Context, eventID string) ([]*models.Feedback, error) {
	var out []*models.Feedback
	err := s.scanPrefix("list", "feedback", feedbackKeyPrefix+eventID+":", func(val []byte) error {
		var f models.Feedback
		if err := unmarshal(val, &f); err != nil {
			return err
		}
		out = append(out, &f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListUserFeedback returns all feedback the user has submitted, ordered
// by event id.
func (s *Store) ListUserFeedback(ctx context.Context, userID string) ([]*models.Feedback, error) {
	var eventIDs []string
	err := s.scanPrefix("list", "feedback", feedbackUserKeyPrefix+userID+":", func(val []byte) error {
		eventIDs = append(eventIDs, string(val))
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]*models.Feedback, 0, len(eventIDs))
	err = s.db.View(func(txn *badger.Txn) error {
		for _, eventID := range eventIDs {
			var f models.Feedback
			if err := getJSON(txn, feedbackKeyPrefix+eventID+":"+userID, &f); err != nil {
				return err
			}
			out = append(out, &f)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
