// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package store

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/tomtom215/convene/internal/models"
)

// CreateConnection stores a new connection request between two users and
// mirrors it under both endpoints for per-user listing.
func (s *Store) CreateConnection(ctx context.Context, c *models.Connection) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = models.ConnectionPending
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	return s.update("create", "connection", func(txn *badger.Txn) error {
		if err := setJSON(txn, connKeyPrefix+c.ID, c); err != nil {
			return err
		}
		for _, uid := range []string{c.FromUserID, c.ToUserID} {
			key := connUserKeyPrefix + uid + ":" + c.ID
			if err := txn.Set([]byte(key), []byte(c.ID)); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetConnection retrieves a connection by id.
func (s *Store) GetConnection(ctx context.Context, id string) (*models.Connection, error) {
	var c models.Connection
	err := s.view("get", "connection", func(txn *badger.Txn) error {
		return getJSON(txn, connKeyPrefix+id, &c)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindLiveConnectionByPair returns the pending or accepted connection
// between the two users regardless of direction, or ErrNotFound. Used to
// reject duplicate requests while a live connection exists.
func (s *Store) FindLiveConnectionByPair(ctx context.Context, userA, userB string) (*models.Connection, error) {
	conns, err := s.ListUserConnections(ctx, userA, "")
	if err != nil {
		return nil, err
	}
	for _, c := range conns {
		if !c.IsLive() {
			continue
		}
		if c.OtherUser(userA) == userB {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateConnectionStatus transitions a connection and returns the updated
// record. Declined connections are kept, not deleted, so the request
// history survives.
func (s *Store) UpdateConnectionStatus(ctx context.Context, id, status string) (*models.Connection, error) {
	var c models.Connection
	err := s.update("update", "connection", func(txn *badger.Txn) error {
		if err := getJSON(txn, connKeyPrefix+id, &c); err != nil {
			return err
		}
		c.Status = status
		c.UpdatedAt = time.Now().UTC()
		return setJSON(txn, connKeyPrefix+id, &c)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteConnection removes a connection and its per-user mirror keys.
func (s *Store) DeleteConnection(ctx context.Context, id string) error {
	return s.update("delete", "connection", func(txn *badger.Txn) error {
		var c models.Connection
		if err := getJSON(txn, connKeyPrefix+id, &c); err != nil {
			return err
		}
		for _, uid := range []string{c.FromUserID, c.ToUserID} {
			if err := txn.Delete([]byte(connUserKeyPrefix + uid + ":" + id)); err != nil {
				return err
			}
		}
		return txn.Delete([]byte(connKeyPrefix + id))
	})
}

// ListUserConnections returns every connection the user participates in,
// optionally filtered to a single status, ordered by connection id.
func (s *Store) ListUserConnections(ctx context.Context, userID, status string) ([]*models.Connection, error) {
	// Resolve ids from the mirror index first, then load records.
	var ids []string
	err := s.scanPrefix("list", "connection", connUserKeyPrefix+userID+":", func(val []byte) error {
		ids = append(ids, string(val))
		return nil
	})
	if err != nil {
		return nil, err
	}

	conns := make([]*models.Connection, 0, len(ids))
	err = s.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			var c models.Connection
			if err := getJSON(txn, connKeyPrefix+id, &c); err != nil {
				return err
			}
			if status != "" && c.Status != status {
				continue
			}
			conns = append(conns, &c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conns, nil
}

// AcceptedPeerIDs returns the ids of users holding an accepted connection
// with the given user. The recommendation engines build their graphs on
// this set.
func (s *Store) AcceptedPeerIDs(ctx context.Context, userID string) ([]string, error) {
	conns, err := s.ListUserConnections(ctx, userID, models.ConnectionAccepted)
	if err != nil {
		return nil, err
	}
	peers := make([]string, 0, len(conns))
	for _, c := range conns {
		peers = append(peers, c.OtherUser(userID))
	}
	return peers, nil
}
