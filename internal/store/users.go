// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/tomtom215/convene/internal/models"
)

// normalizeTags sorts and deduplicates a tag set so stored sets compare
// and serialize deterministically.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// CreateUser stores a new user, enforcing the unique-email invariant.
// A missing ID is assigned a UUID. Returns ErrEmailExists when another
// user already owns the email.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Interests = normalizeTags(u.Interests)
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	return s.update("create", "user", func(txn *badger.Txn) error {
		emailKey := userEmailKeyPrefix + u.Email
		_, err := txn.Get([]byte(emailKey))
		if err == nil {
			return ErrEmailExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		if err := setJSON(txn, userKeyPrefix+u.ID, u); err != nil {
			return err
		}
		return txn.Set([]byte(emailKey), []byte(u.ID))
	})
}

// GetUser retrieves a user by id.
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.view("get", "user", func(txn *badger.Txn) error {
		return getJSON(txn, userKeyPrefix+id, &u)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail retrieves a user via the email index. Matching is
// case-insensitive because emails are stored lowercased.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var u models.User
	err := s.view("get", "user", func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userEmailKeyPrefix + email))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var id string
		if err := item.Value(func(val []byte) error {
			id = string(val)
			return nil
		}); err != nil {
			return err
		}
		return getJSON(txn, userKeyPrefix+id, &u)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser applies a partial profile update and returns the updated
// record. Nil fields are left unchanged.
func (s *Store) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	var u models.User
	err := s.update("update", "user", func(txn *badger.Txn) error {
		if err := getJSON(txn, userKeyPrefix+id, &u); err != nil {
			return err
		}
		if upd.DisplayName != nil {
			u.DisplayName = *upd.DisplayName
		}
		if upd.Bio != nil {
			u.Bio = *upd.Bio
		}
		if upd.ProfileImageURL != nil {
			u.ProfileImageURL = *upd.ProfileImageURL
		}
		u.UpdatedAt = time.Now().UTC()
		return setJSON(txn, userKeyPrefix+id, &u)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SetUserInterests replaces the user's interest set.
func (s *Store) SetUserInterests(ctx context.Context, id string, interests []string) (*models.User, error) {
	var u models.User
	err := s.update("update", "user", func(txn *badger.Txn) error {
		if err := getJSON(txn, userKeyPrefix+id, &u); err != nil {
			return err
		}
		u.Interests = normalizeTags(interests)
		u.UpdatedAt = time.Now().UTC()
		return setJSON(txn, userKeyPrefix+id, &u)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SetUserLocation records the user's last-known position.
func (s *Store) SetUserLocation(ctx context.Context, id string, loc models.Location) (*models.User, error) {
	var u models.User
	err := s.update("update", "user", func(txn *badger.Txn) error {
		if err := getJSON(txn, userKeyPrefix+id, &u); err != nil {
			return err
		}
		u.Location = &loc
		u.UpdatedAt = time.Now().UTC()
		return setJSON(txn, userKeyPrefix+id, &u)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns all users ordered by id ascending.
func (s *Store) ListUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := s.scanPrefix("list", "user", userKeyPrefix, func(val []byte) error {
		var u models.User
		if err := unmarshal(val, &u); err != nil {
			return err
		}
		users = append(users, &u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
