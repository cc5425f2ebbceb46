// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robm15/vibetravels/internal/auth"
	"github.com/robm15/vibetravels/internal/logging"
	"github.com/robm15/vibetravels/internal/planner"
)

// generateRequest is the POST /api/trip-plans/generate body.
type generateRequest struct {
	NoteID string `json:"noteId" validate:"required"`
}

// rateRequest is the PUT /api/trip-plans/{id}/rate body.
type rateRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// CanGenerate reports whether the caller may generate a plan for a note
// right now, without consuming quota.
//
// GET /api/trip-plans/can-generate?noteId=
func (h *Handler) CanGenerate(w http.ResponseWriter, r *http.Request) {
	principal := auth.PrincipalFrom(r.Context())
	noteID := r.URL.Query().Get("noteId")
	if noteID == "" {
		respondError(w, http.StatusBadRequest, "noteId query parameter is required", nil)
		return
	}

	eligibility, err := h.planner.CanGenerate(r.Context(), principal, noteID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to check generation eligibility", err)
		return
	}

	body := map[string]any{"can_generate": eligibility.CanGenerate}
	if eligibility.Reason != "" {
		body["reason"] = eligibility.Reason
	}
	if eligibility.MissingPreferences {
		body["missing_preferences"] = true
	}
	if eligibility.LimitExceeded {
		body["limit_exceeded"] = true
		body["daily_limit"] = eligibility.DailyLimit
	}
	if eligibility.CanGenerate {
		body["daily_limit"] = eligibility.DailyLimit
		body["remaining_usage"] = eligibility.RemainingUsage
	}

	respondJSON(w, http.StatusOK, body)
}

// Generate runs the gated plan generation flow.
//
// POST /api/trip-plans/generate
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	principal := auth.PrincipalFrom(r.Context())

	var req generateRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	plan, err := h.planner.Generate(r.Context(), principal, req.NoteID)
	if err != nil {
		h.respondGenerateError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"success":         true,
		"message":         "Trip plan generated successfully",
		"trip_plan":       plan,
		"remaining_usage": h.planner.RemainingUsage(principal.ID),
	})
}

// respondGenerateError maps generation failures onto the response contract:
// unknown note 404, unmet gates 400 with the matching flag, upstream
// failure 500.
func (h *Handler) respondGenerateError(w http.ResponseWriter, err error) {
	var quotaErr *planner.QuotaExceededError
	switch {
	case errors.Is(err, planner.ErrNoteNotFound):
		respondError(w, http.StatusNotFound, "Note not found", nil)
	case errors.Is(err, planner.ErrInsufficientPreferences):
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"success":             false,
			"message":             "You need to fill at least 3 travel preferences to generate a plan",
			"missing_preferences": true,
		})
	case errors.As(err, &quotaErr):
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"success":        false,
			"message":        quotaErr.Error(),
			"limit_exceeded": true,
			"daily_limit":    quotaErr.Limit,
		})
	default:
		respondError(w, http.StatusInternalServerError, "Failed to generate trip plan", err)
	}
}

// GetPlan returns a single plan. Plans owned by other users are reported as
// not found.
//
// GET /api/trip-plans/{id}
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	principal := auth.PrincipalFrom(r.Context())
	planID := chi.URLParam(r, "id")

	plan, err := h.planner.GetPlan(r.Context(), principal, planID)
	if err != nil {
		if errors.Is(err, planner.ErrPlanNotFound) {
			respondError(w, http.StatusNotFound, "Trip plan not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to load trip plan", err)
		return
	}

	respondJSON(w, http.StatusOK, plan)
}

// ListPlans returns the plans generated from one of the caller's notes.
//
// GET /api/trip-plans?noteId=
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	principal := auth.PrincipalFrom(r.Context())
	noteID := r.URL.Query().Get("noteId")
	if noteID == "" {
		respondError(w, http.StatusBadRequest, "noteId query parameter is required", nil)
		return
	}

	plans, err := h.planner.PlansForNote(r.Context(), principal, noteID)
	if err != nil {
		if errors.Is(err, planner.ErrNoteNotFound) {
			respondError(w, http.StatusNotFound, "Note not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to list trip plans", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"trip_plans": plans,
	})
}

// RatePlan sets a plan's rating, overwriting any earlier one.
//
// PUT /api/trip-plans/{id}/rate
func (h *Handler) RatePlan(w http.ResponseWriter, r *http.Request) {
	principal := auth.PrincipalFrom(r.Context())
	planID := chi.URLParam(r, "id")

	var req rateRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	plan, err := h.planner.Rate(r.Context(), principal, planID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrInvalidRating):
			respondError(w, http.StatusBadRequest, "Rating must be between 1 and 5", nil)
		case errors.Is(err, planner.ErrPlanNotFound):
			respondError(w, http.StatusNotFound, "Trip plan not found", nil)
		case errors.Is(err, planner.ErrNotPlanOwner):
			respondError(w, http.StatusForbidden, "You can only rate your own trip plans", nil)
		default:
			respondError(w, http.StatusInternalServerError, "Failed to rate trip plan", err)
		}
		return
	}

	logging.Info().Str("plan", sanitizeLogValue(planID)).Int("rating", req.Rating).Msg("Trip plan rated")
	respondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Trip plan rated successfully",
		"trip_plan": plan,
	})
}

// DeletePlan removes one of the caller's plans.
//
// DELETE /api/trip-plans/{id}
func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	principal := auth.PrincipalFrom(r.Context())
	planID := chi.URLParam(r, "id")

	if err := h.planner.Delete(r.Context(), principal, planID); err != nil {
		switch {
		case errors.Is(err, planner.ErrPlanNotFound):
			respondError(w, http.StatusNotFound, "Trip plan not found", nil)
		case errors.Is(err, planner.ErrNotPlanOwner):
			respondError(w, http.StatusForbidden, "You can only delete your own trip plans", nil)
		default:
			respondError(w, http.StatusInternalServerError, "Failed to delete trip plan", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Trip plan deleted successfully",
	})
}
