// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

// Package store provides BadgerDB-backed persistence for notes, travel
// preferences, and trip plans. Values are JSON-encoded; secondary lookups
// (notes by owner, plans by note) use key-prefix indexes maintained in the
// same transaction as the primary record.
package store

import (
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/robm15/vibetravels/internal/config"
	"github.com/robm15/vibetravels/internal/logging"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Key prefixes for BadgerDB storage.
const (
	noteKeyPrefix     = "note:"
	noteUserKeyPrefix = "note_user:"
	prefsKeyPrefix    = "prefs:"
	planKeyPrefix     = "plan:"
	planNoteKeyPrefix = "plan_note:"
)

// DB wraps a BadgerDB instance shared by the typed stores.
type DB struct {
	db *badger.DB
}

// Open opens (or creates) the BadgerDB database per configuration.
func Open(cfg config.StoreConfig) (*DB, error) {
	opts := badger.DefaultOptions(cfg.Path).
		WithLogger(badgerLogger{}).
		WithInMemory(cfg.InMemory)
	if cfg.InMemory {
		opts.Dir = ""
		opts.ValueDir = ""
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Notes returns the note store backed by this database.
func (d *DB) Notes() *NoteStore {
	return &NoteStore{db: d.db}
}

// Preferences returns the preference store backed by this database.
func (d *DB) Preferences() *PreferenceStore {
	return &PreferenceStore{db: d.db}
}

// Plans returns the trip plan store backed by this database.
func (d *DB) Plans() *PlanStore {
	return &PlanStore{db: d.db}
}

// badgerLogger routes badger's internal logging through zerolog.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{}) {
	logging.Error().Msgf("badger: "+format, args...)
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	logging.Warn().Msgf("badger: "+format, args...)
}

func (badgerLogger) Infof(format string, args ...interface{}) {
	logging.Debug().Msgf("badger: "+format, args...)
}

func (badgerLogger) Debugf(format string, args ...interface{}) {
	logging.Debug().Msgf("badger: "+format, args...)
}
