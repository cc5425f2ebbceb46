// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package models

import "time"

// Rating bounds for trip plans.
const (
	MinPlanRating = 1
	MaxPlanRating = 5
)

// TripPlan is an AI-generated trip plan derived from a note. The owner is
// fixed at generation time; the rating starts unset and may be overwritten
// by the owner any number of times.
type TripPlan struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	NoteID      string    `json:"note_id"`
	PlanContent string    `json:"plan_content"`
	Rating      *int      `json:"rating,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
