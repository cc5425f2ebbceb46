// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/robm15/vibetravels/internal/logging"
	"github.com/robm15/vibetravels/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log
// injection attacks. Newlines, carriage returns, and other control characters
// could otherwise let request data forge log entries.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends an error response in the {success, message} shape every
// failure path uses.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		logging.Error().Int("status", status).Str("error", sanitizeLogValue(err.Error())).Msg("API error")
	}

	respondJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

// decodeJSON decodes the request body into dst and rejects unknown fields.
// A false return means the 400 response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

// validateRequest runs struct validation on a decoded DTO.
// A false return means the 400 response has already been written.
func validateRequest(w http.ResponseWriter, req any) bool {
	if verr := validation.ValidateStruct(req); verr != nil {
		respondError(w, http.StatusBadRequest, verr.Error(), nil)
		return false
	}
	return true
}
