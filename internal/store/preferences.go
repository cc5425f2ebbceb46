// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/robm15/vibetravels/internal/models"
)

// PreferenceStore persists travel preferences, exactly one set per user.
type PreferenceStore struct {
	db *badger.DB
}

// Save upserts a user's preference set.
func (s *PreferenceStore) Save(ctx context.Context, prefs *models.TravelPreferences) error {
	if prefs.UserID == "" {
		return fmt.Errorf("preferences missing user id")
	}

	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(prefsKeyPrefix+prefs.UserID), data)
	})
}

// FindByOwner retrieves a user's preference set. Returns nil, nil when the
// user has never saved preferences.
func (s *PreferenceStore) FindByOwner(ctx context.Context, ownerID string) (*models.TravelPreferences, error) {
	var prefs models.TravelPreferences
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefsKeyPrefix + ownerID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get preferences: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &prefs)
		})
	})
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}
