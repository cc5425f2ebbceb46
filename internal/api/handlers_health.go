// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package api

import (
	"net/http"
	"time"
)

// Health reports liveness plus basic runtime information.
//
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"uptime":  time.Since(h.startTime).Round(time.Second).String(),
		"offline": h.config.OfflineMode(),
	})
}
