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

	"github.com/tomtom215/convene/internal/models"
)

// GetPreferences returns the user's stored preferences, or the defaults
// when the user has never saved any.
func (s *Store) GetPreferences(ctx context.Context, userID string) (*models.Preferences, error) {
	var p models.Preferences
	err := s.view("get", "preferences", func(txn *badger.Txn) error {
		return getJSON(txn, prefsKeyPrefix+userID, &p)
	})
	if errors.Is(err, ErrNotFound) {
		p = models.DefaultPreferences(userID)
		return &p, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePreferences applies a partial preferences update over the stored
// record (or the defaults, on first write) and returns the result.
func (s *Store) UpdatePreferences(ctx context.Context, userID string, upd models.PreferencesUpdate) (*models.Preferences, error) {
	var p models.Preferences
	err := s.update("update", "preferences", func(txn *badger.Txn) error {
		key := prefsKeyPrefix + userID
		err := getJSON(txn, key, &p)
		if errors.Is(err, ErrNotFound) {
			p = models.DefaultPreferences(userID)
		} else if err != nil {
			return err
		}

		if upd.NotificationEvents != nil {
			p.NotificationEvents = *upd.NotificationEvents
		}
		if upd.NotificationConnections != nil {
			p.NotificationConnections = *upd.NotificationConnections
		}
		if upd.NotificationMessages != nil {
			p.NotificationMessages = *upd.NotificationMessages
		}
		if upd.PrivacyProfile != nil {
			p.PrivacyProfile = *upd.PrivacyProfile
		}
		if upd.Timezone != nil {
			p.Timezone = *upd.Timezone
		}
		p.UpdatedAt = time.Now().UTC()
		return setJSON(txn, key, &p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}
