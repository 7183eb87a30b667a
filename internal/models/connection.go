// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package models

import (
	"time"
)

// Connection status values.
const (
	ConnectionPending  = "pending"
	ConnectionAccepted = "accepted"
	ConnectionDeclined = "declined"
)

// Connection is a directed connection request between two users. At most
// one live (pending or accepted) connection exists per unordered user
// pair; once accepted the connection is treated as symmetric for query
// purposes.
type Connection struct {
	ID         string    `json:"id"`
	FromUserID string    `json:"from_user_id"`
	ToUserID   string    `json:"to_user_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsLive reports whether the connection blocks a new request for the
// same user pair.
func (c *Connection) IsLive() bool {
	return c.Status == ConnectionPending || c.Status == ConnectionAccepted
}

// OtherUser returns the counterpart of userID in this connection.
func (c *Connection) OtherUser(userID string) string {
	if c.FromUserID == userID {
		return c.ToUserID
	}
	return c.FromUserID
}

// EnrichedConnection is a connection joined with the counterpart's
// profile, as returned by GET /connections/user/{user_id}.
type EnrichedConnection struct {
	ConnectionID string      `json:"connection_id"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	IsOutgoing   bool        `json:"is_outgoing"`
	User         UserSummary `json:"user"`
}
