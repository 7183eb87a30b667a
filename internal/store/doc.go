// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

// Package store implements the record store on BadgerDB.
//
// Every entity lives under a typed key prefix with JSON values; secondary
// lookups (user by email, connections by member, RSVPs and feedback by
// user) are maintained as mirror keys inside the same write transaction,
// so an index entry never outlives or precedes its record.
//
// Key layout:
//
//	user:<id>                      User
//	user_email:<lower(email)>      -> user id (unique index)
//	event:<id>                     Event
//	conn:<id>                      Connection
//	conn_user:<userID>:<connID>    -> conn id (both endpoints)
//	rsvp:<eventID>:<userID>        RSVP
//	rsvp_user:<userID>:<eventID>   -> event id
//	feedback:<eventID>:<userID>    Feedback
//	feedback_user:<userID>:<eventID> -> event id
//	prefs:<userID>                 Preferences
//
// Reads run in Badger view transactions, which are snapshot-isolated:
// each call observes a point-in-time state of the store. Callers issuing
// several reads (event, then its RSVPs, then its feedback) may observe
// staleness between calls.
package store
