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

// PlanStore persists generated trip plans keyed by id, with a note index
// for per-note listings.
type PlanStore struct {
	db *badger.DB
}

// Save stores a plan, creating or overwriting it, and maintains the note
// index in the same transaction.
func (s *PlanStore) Save(ctx context.Context, plan *models.TripPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(planKeyPrefix+plan.ID), data); err != nil {
			return fmt.Errorf("set plan: %w", err)
		}
		noteKey := []byte(planNoteKeyPrefix + plan.NoteID + ":" + plan.ID)
		if err := txn.Set(noteKey, []byte(plan.ID)); err != nil {
			return fmt.Errorf("set note index: %w", err)
		}
		return nil
	})
}

// FindByID retrieves a plan by id. Returns nil, nil when absent.
func (s *PlanStore) FindByID(ctx context.Context, id string) (*models.TripPlan, error) {
	var plan models.TripPlan
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(planKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get plan: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &plan)
		})
	})
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// FindByNote lists all plans generated from the given note.
func (s *PlanStore) FindByNote(ctx context.Context, noteID string) ([]*models.TripPlan, error) {
	var plans []*models.TripPlan

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		prefix := []byte(planNoteKeyPrefix + noteID + ":")
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var planID string
			if err := it.Item().Value(func(val []byte) error {
				planID = string(val)
				return nil
			}); err != nil {
				return err
			}

			item, err := txn.Get([]byte(planKeyPrefix + planID))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("get plan %s: %w", planID, err)
			}

			var plan models.TripPlan
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &plan)
			}); err != nil {
				return err
			}
			plans = append(plans, &plan)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// Delete removes a plan and its note index entry.
// Returns ErrNotFound when the plan does not exist.
func (s *PlanStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(planKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get plan: %w", err)
		}

		var plan models.TripPlan
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &plan)
		}); err != nil {
			return err
		}

		if err := txn.Delete([]byte(planKeyPrefix + id)); err != nil {
			return fmt.Errorf("delete plan: %w", err)
		}
		noteKey := []byte(planNoteKeyPrefix + plan.NoteID + ":" + id)
		if err := txn.Delete(noteKey); err != nil {
			return fmt.Errorf("delete note index: %w", err)
		}
		return nil
	})
}
