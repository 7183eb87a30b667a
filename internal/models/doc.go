// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

// Package models defines the domain entities (users, events, connections,
// RSVPs, feedback, preferences) and the JSON shapes shared between the
// record store, the recommendation engines, the dashboard aggregator and
// the HTTP API.
package models
