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

// NoteStore persists travel notes keyed by id, with an owner index for
// per-user listings.
type NoteStore struct {
	db *badger.DB
}

// Save stores a note, creating or overwriting it, and maintains the owner
// index in the same transaction.
func (s *NoteStore) Save(ctx context.Context, note *models.Note) error {
	data, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("marshal note: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(noteKeyPrefix+note.ID), data); err != nil {
			return fmt.Errorf("set note: %w", err)
		}
		userKey := []byte(noteUserKeyPrefix + note.UserID + ":" + note.ID)
		if err := txn.Set(userKey, []byte(note.ID)); err != nil {
			return fmt.Errorf("set owner index: %w", err)
		}
		return nil
	})
}

// FindByID retrieves a note by id. Returns nil, nil when absent.
func (s *NoteStore) FindByID(ctx context.Context, id string) (*models.Note, error) {
	var note models.Note
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(noteKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get note: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &note)
		})
	})
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// FindOwned retrieves a note only when it exists and belongs to ownerID.
// A note owned by someone else is indistinguishable from a missing note.
func (s *NoteStore) FindOwned(ctx context.Context, id, ownerID string) (*models.Note, error) {
	note, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil || note.UserID != ownerID {
		return nil, nil
	}
	return note, nil
}

// FindByOwner lists all notes belonging to ownerID via the owner index.
func (s *NoteStore) FindByOwner(ctx context.Context, ownerID string) ([]*models.Note, error) {
	var notes []*models.Note

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		prefix := []byte(noteUserKeyPrefix + ownerID + ":")
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var noteID string
			if err := it.Item().Value(func(val []byte) error {
				noteID = string(val)
				return nil
			}); err != nil {
				return err
			}

			item, err := txn.Get([]byte(noteKeyPrefix + noteID))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue // Index entry outlived the note; skip.
			}
			if err != nil {
				return fmt.Errorf("get note %s: %w", noteID, err)
			}

			var note models.Note
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &note)
			}); err != nil {
				return err
			}
			notes = append(notes, &note)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Delete removes a note and its owner index entry.
// Returns ErrNotFound when the note does not exist.
func (s *NoteStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(noteKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get note: %w", err)
		}

		var note models.Note
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &note)
		}); err != nil {
			return err
		}

		if err := txn.Delete([]byte(noteKeyPrefix + id)); err != nil {
			return fmt.Errorf("delete note: %w", err)
		}
		userKey := []byte(noteUserKeyPrefix + note.UserID + ":" + id)
		if err := txn.Delete(userKey); err != nil {
			return fmt.Errorf("delete owner index: %w", err)
		}
		return nil
	})
}
