// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/robm15/vibetravels/internal/auth"
	"github.com/robm15/vibetravels/internal/logging"
	"github.com/robm15/vibetravels/internal/models"
)

// noteRequest is the create/update body for travel notes.
type noteRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"max=10000"`
}

// ListNotes returns the caller's notes.
//
// GET /api/notes
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	principal := auth.PrincipalFrom(r.Context())

	notes, err := h.notes.FindByOwner(r.Context(), principal.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list notes", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"notes":   notes,
	})
}

// CreateNote stores a new travel note owned by the caller.
//
// POST /api/notes
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	principal := auth.PrincipalFrom(r.Context())

	var req noteRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	now := time.Now().UTC()
	note := &models.Note{
		ID:        uuid.New().String(),
		UserID:    principal.ID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.notes.Save(r.Context(), note); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create note", err)
		return
	}

	logging.Info().Str("user", principal.ID).Str("note", note.ID).Msg("Note created")
	respondJSON(w, http.StatusCreated, note)
}

// GetNote returns one of the caller's notes. Notes owned by other users are
// reported as not found.
//
// GET /api/notes/{id}
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	principal := auth.PrincipalFrom(r.Context())
	noteID := chi.URLParam(r, "id")

	note, err := h.notes.FindOwned(r.Context(), noteID, principal.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load note", err)
		return
	}
	if note == nil {
		respondError(w, http.StatusNotFound, "Note not found", nil)
		return
	}

	respondJSON(w, http.StatusOK, note)
}

// UpdateNote replaces the title and content of one of the caller's notes.
//
// PUT /api/notes/{id}
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	principal := auth.PrincipalFrom(r.Context())
	noteID := chi.URLParam(r, "id")

	var req noteRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	note, err := h.notes.FindOwned(r.Context(), noteID, principal.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load note", err)
		return
	}
	if note == nil {
		respondError(w, http.StatusNotFound, "Note not found", nil)
		return
	}

	note.Title = req.Title
	note.Content = req.Content
	note.UpdatedAt = time.Now().UTC()
	if err := h.notes.Save(r.Context(), note); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update note", err)
		return
	}

	respondJSON(w, http.StatusOK, note)
}

// DeleteNote removes one of the caller's notes. Plans already generated from
// the note are kept.
//
// DELETE /api/notes/{id}
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	principal := auth.PrincipalFrom(r.Context())
	noteID := chi.URLParam(r, "id")

	note, err := h.notes.FindOwned(r.Context(), noteID, principal.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load note", err)
		return
	}
	if note == nil {
		respondError(w, http.StatusNotFound, "Note not found", nil)
		return
	}

	if err := h.notes.Delete(r.Context(), noteID); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete note", err)
		return
	}

	logging.Info().Str("user", principal.ID).Str("note", sanitizeLogValue(noteID)).Msg("Note deleted")
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Note deleted successfully",
	})
}
