// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/convene/internal/logging"
	"github.com/tomtom215/convene/internal/metrics"
)

// Key prefixes for BadgerDB storage.
const (
	userKeyPrefix         = "user:"
	userEmailKeyPrefix    = "user_email:"
	eventKeyPrefix        = "event:"
	connKeyPrefix         = "conn:"
	connUserKeyPrefix     = "conn_user:"
	rsvpKeyPrefix         = "rsvp:"
	rsvpUserKeyPrefix     = "rsvp_user:"
	feedbackKeyPrefix     = "feedback:"
	feedbackUserKeyPrefix = "feedback_user:"
	prefsKeyPrefix        = "prefs:"
)

// Options configures the store.
type Options struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path string

	// InMemory runs Badger without disk persistence. Used by tests.
	InMemory bool

	// GCInterval is how often the value-log garbage collector runs.
	// Default: 10m.
	GCInterval time.Duration
}

// Store is the BadgerDB-backed record store for all Convene entities.
type Store struct {
	db         *badger.DB
	gcInterval time.Duration
}

// Open opens (or creates) the store at the configured path.
func Open(opts Options) (*Store, error) {
	if opts.GCInterval <= 0 {
		opts.GCInterval = 10 * time.Minute
	}

	var bopts badger.Options
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		bopts = badger.DefaultOptions(opts.Path)
	}
	bopts = bopts.WithLogger(badgerLogger{})

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", opts.Path, err)
	}

	return &Store{db: db, gcInterval: opts.GCInterval}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping reports whether the database is usable. Used by readiness checks.
func (s *Store) Ping() error {
	if s.db.IsClosed() {
		return errors.New("store is closed")
	}
	return nil
}

// RunGC runs the Badger value-log garbage collector until the context is
// canceled. Intended to run as a supervised service.
func (s *Store) RunGC(ctx context.Context) error {
	ticker := time.NewTicker(s.gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// ErrNoRewrite is the normal "nothing to collect" result.
			err := s.db.RunValueLogGC(0.5)
			if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
				logging.Warn().Err(err).Msg("value log GC failed")
			}
		}
	}
}

// update runs fn in a read-write transaction and records the operation's
// duration and outcome under the (op, entity) metric labels.
func (s *Store) update(op, entity string, fn func(txn *badger.Txn) error) error {
	start := time.Now()
	err := s.db.Update(fn)
	metrics.RecordStoreOp(op, entity, time.Since(start), err)
	return err
}

// view is the read-only counterpart of update.
func (s *Store) view(op, entity string, fn func(txn *badger.Txn) error) error {
	start := time.Now()
	err := s.db.View(fn)
	metrics.RecordStoreOp(op, entity, time.Since(start), err)
	return err
}

// getJSON loads and unmarshals the value at key into v. Returns
// ErrNotFound when the key is absent.
func getJSON(txn *badger.Txn, key string, v interface{}) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

// setJSON marshals v and stores it at key.
func setJSON(txn *badger.Txn, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := txn.Set([]byte(key), data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// unmarshal decodes a raw stored value.
func unmarshal(val []byte, v interface{}) error {
	return json.Unmarshal(val, v)
}

// scanPrefix iterates all values under prefix in key order and calls fn
// with each raw value. Key order gives deterministic, id-ascending
// results for free.
func (s *Store) scanPrefix(op, entity, prefix string, fn func(val []byte) error) error {
	return s.view(op, entity, func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			if err := it.Item().Value(fn); err != nil {
				return err
			}
		}
		return nil
	})
}

// badgerLogger routes Badger's internal logging through zerolog.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{}) {
	logging.Error().Msgf("badger: "+strings.TrimSpace(format), args...)
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	logging.Warn().Msgf("badger: "+strings.TrimSpace(format), args...)
}

func (badgerLogger) Infof(format string, args ...interface{}) {
	logging.Debug().Msgf("badger: "+strings.TrimSpace(format), args...)
}

func (badgerLogger) Debugf(format string, args ...interface{}) {
	logging.Debug().Msgf("badger: "+strings.TrimSpace(format), args...)
}
