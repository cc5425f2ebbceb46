// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package api

import (
	"time"

	"github.com/robm15/vibetravels/internal/config"
	"github.com/robm15/vibetravels/internal/planner"
	"github.com/robm15/vibetravels/internal/store"
)

// Handler holds the dependencies the HTTP handlers need.
type Handler struct {
	planner     *planner.Service
	notes       *store.NoteStore
	preferences *store.PreferenceStore
	config      *config.Config
	startTime   time.Time
}

// NewHandler creates the API handler set.
func NewHandler(svc *planner.Service, notes *store.NoteStore, preferences *store.PreferenceStore, cfg *config.Config) *Handler {
	return &Handler{
		planner:     svc,
		notes:       notes,
		preferences: preferences,
		config:      cfg,
		startTime:   time.Now(),
	}
}
