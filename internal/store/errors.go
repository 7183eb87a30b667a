// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package store

import "errors"

// Sentinel errors returned by store operations. Callers match them with
// errors.Is; the API layer maps them to transport status codes.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrEmailExists indicates a user create would violate the unique
	// email constraint.
	ErrEmailExists = errors.New("email already in use")

	// ErrInvalidTimeRange indicates an event write would leave end_time
	// before start_time.
	ErrInvalidTimeRange = errors.New("end_time before start_time")
)
