// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

// Package planner orchestrates the trip plan lifecycle: generation behind the
// ownership, preference completeness, and usage quota gates, plus rating,
// deletion, and the read paths.
//
// A plan moves nonexistent -> generated -> (rated)* -> deleted. Generation is
// all-or-nothing: a failed completion call leaves quota, preferences, and
// plan storage exactly as they were.
package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/robm15/vibetravels/internal/ai"
	"github.com/robm15/vibetravels/internal/logging"
	"github.com/robm15/vibetravels/internal/metrics"
	"github.com/robm15/vibetravels/internal/models"
	"github.com/robm15/vibetravels/internal/quota"
)

// MinPreferenceCategories is the minimum number of filled preference
// categories required before generation is permitted.
const MinPreferenceCategories = 3

// NoteFinder resolves a note only when it belongs to the given owner.
type NoteFinder interface {
	FindOwned(ctx context.Context, id, ownerID string) (*models.Note, error)
}

// PreferenceFinder resolves a user's stored preference set.
type PreferenceFinder interface {
	FindByOwner(ctx context.Context, ownerID string) (*models.TravelPreferences, error)
}

// PlanStore persists trip plans.
type PlanStore interface {
	Save(ctx context.Context, plan *models.TripPlan) error
	FindByID(ctx context.Context, id string) (*models.TripPlan, error)
	FindByNote(ctx context.Context, noteID string) ([]*models.TripPlan, error)
	Delete(ctx context.Context, id string) error
}

// Service is the trip plan lifecycle manager.
type Service struct {
	notes       NoteFinder
	preferences PreferenceFinder
	plans       PlanStore
	quota       *quota.Tracker
	completions ai.Client

	// now is the clock source, replaceable in tests.
	now func() time.Time
}

// NewService wires the lifecycle manager with its collaborators.
func NewService(notes NoteFinder, preferences PreferenceFinder, plans PlanStore, tracker *quota.Tracker, completions ai.Client) *Service {
	return &Service{
		notes:       notes,
		preferences: preferences,
		plans:       plans,
		quota:       tracker,
		completions: completions,
		now:         time.Now,
	}
}

// DailyLimit returns the configured generation cap.
func (s *Service) DailyLimit() int {
	return s.quota.DailyLimit()
}

// RemainingUsage returns how many generations the principal has left today.
func (s *Service) RemainingUsage(principalID string) int {
	return s.quota.Remaining(principalID)
}

// HasMinimumPreferences reports whether the user's stored preference set has
// at least MinPreferenceCategories categories filled. An absent set is never
// eligible. The check reads current state every time so preference edits
// take effect immediately.
func (s *Service) HasMinimumPreferences(ctx context.Context, userID string) (bool, error) {
	prefs, err := s.preferences.FindByOwner(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("load preferences: %w", err)
	}
	if prefs == nil {
		return false, nil
	}
	return prefs.FilledCount() >= MinPreferenceCategories, nil
}

// Eligibility describes whether a principal may generate a plan for a note
// right now, with enough structure for the caller to render a helpful
// message.
type Eligibility struct {
	CanGenerate        bool
	Reason             string
	MissingPreferences bool
	LimitExceeded      bool
	DailyLimit         int
	RemainingUsage     int
}

// CanGenerate evaluates every generation gate for the principal and note
// without consuming quota: note ownership, preference completeness, then the
// daily cap.
func (s *Service) CanGenerate(ctx context.Context, principal models.Principal, noteID string) (*Eligibility, error) {
	note, err := s.notes.FindOwned(ctx, noteID, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("load note: %w", err)
	}
	if note == nil {
		return &Eligibility{CanGenerate: false, Reason: "Note not found"}, nil
	}

	eligible, err := s.HasMinimumPreferences(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return &Eligibility{
			CanGenerate:        false,
			Reason:             "You need to fill at least 3 travel preferences to generate a plan",
			MissingPreferences: true,
		}, nil
	}

	if !s.quota.CanGenerate(principal.ID) {
		limit := s.quota.DailyLimit()
		return &Eligibility{
			CanGenerate:   false,
			Reason:        fmt.Sprintf("Daily AI usage limit exceeded (%d plans per day)", limit),
			LimitExceeded: true,
			DailyLimit:    limit,
		}, nil
	}

	return &Eligibility{
		CanGenerate:    true,
		DailyLimit:     s.quota.DailyLimit(),
		RemainingUsage: s.quota.Remaining(principal.ID),
	}, nil
}

// Generate runs the full gated generation flow for the principal and note.
//
// Gates run in order: note ownership (ErrNoteNotFound), preference
// completeness (ErrInsufficientPreferences), then quota. The quota slot is
// reserved before the completion call and released if the call fails, so a
// failed generation never consumes quota and concurrent attempts cannot
// overshoot the cap. The plan is persisted only after the completion call
// succeeds.
func (s *Service) Generate(ctx context.Context, principal models.Principal, noteID string) (*models.TripPlan, error) {
	note, err := s.notes.FindOwned(ctx, noteID, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("load note: %w", err)
	}
	if note == nil {
		metrics.GenerationsTotal.WithLabelValues("not_found").Inc()
		return nil, ErrNoteNotFound
	}

	prefs, err := s.preferences.FindByOwner(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	if prefs == nil || prefs.FilledCount() < MinPreferenceCategories {
		metrics.GenerationsTotal.WithLabelValues("insufficient_preferences").Inc()
		return nil, ErrInsufficientPreferences
	}

	reservation, ok := s.quota.TryAcquire(principal.ID)
	if !ok {
		metrics.GenerationsTotal.WithLabelValues("quota_exceeded").Inc()
		metrics.QuotaRejections.Inc()
		return nil, &QuotaExceededError{Limit: s.quota.DailyLimit()}
	}

	prompt := BuildPrompt(note, prefs)

	start := s.now()
	content, err := s.completions.Complete(ctx, prompt)
	if err != nil {
		reservation.Release()
		metrics.GenerationsTotal.WithLabelValues("failed").Inc()
		logging.Error().Err(err).Str("user", principal.ID).Str("note", noteID).Msg("Plan generation failed")
		return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, err.Error())
	}

	plan := &models.TripPlan{
		ID:          uuid.New().String(),
		UserID:      principal.ID,
		NoteID:      note.ID,
		PlanContent: content,
		CreatedAt:   s.now(),
	}
	if err := s.plans.Save(ctx, plan); err != nil {
		reservation.Release()
		metrics.GenerationsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("save plan: %w", err)
	}

	reservation.Commit()
	metrics.GenerationsTotal.WithLabelValues("success").Inc()
	metrics.GenerationDuration.Observe(s.now().Sub(start).Seconds())
	logging.Info().Str("user", principal.ID).Str("note", noteID).Str("plan", plan.ID).Msg("Trip plan generated")

	return plan, nil
}

// GetPlan retrieves a plan for the principal. A plan owned by another user
// is reported as not found so reads never disclose existence.
func (s *Service) GetPlan(ctx context.Context, principal models.Principal, planID string) (*models.TripPlan, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if plan == nil || plan.UserID != principal.ID {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

// PlansForNote lists plans generated from a note the principal owns.
func (s *Service) PlansForNote(ctx context.Context, principal models.Principal, noteID string) ([]*models.TripPlan, error) {
	note, err := s.notes.FindOwned(ctx, noteID, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("load note: %w", err)
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return s.plans.FindByNote(ctx, noteID)
}

// Rate sets the plan's rating, overwriting any prior value. The rating must
// be in [1, 5]. Rating a plan owned by another user returns ErrNotPlanOwner:
// the caller targets a known id, so existence disclosure is acceptable here,
// unlike on read paths.
func (s *Service) Rate(ctx context.Context, principal models.Principal, planID string, rating int) (*models.TripPlan, error) {
	if rating < models.MinPlanRating || rating > models.MaxPlanRating {
		return nil, ErrInvalidRating
	}

	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	if plan.UserID != principal.ID {
		return nil, ErrNotPlanOwner
	}

	plan.Rating = &rating
	if err := s.plans.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}
	return plan, nil
}

// Delete removes the principal's plan. Deleting an absent plan returns
// ErrPlanNotFound; deleting another user's plan returns ErrNotPlanOwner.
func (s *Service) Delete(ctx context.Context, principal models.Principal, planID string) error {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return fmt.Errorf("load plan: %w", err)
	}
	if plan == nil {
		return ErrPlanNotFound
	}
	if plan.UserID != principal.ID {
		return ErrNotPlanOwner
	}

	if err := s.plans.Delete(ctx, planID); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}
