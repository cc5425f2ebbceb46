// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package planner

import (
	"errors"
	"fmt"
)

// Gate and lifecycle errors. These are expected, user-facing outcomes
// returned as values; handlers map them to HTTP statuses.
var (
	// ErrNoteNotFound covers both a missing note and a note owned by
	// another user: reads never disclose the existence of someone else's
	// resources.
	ErrNoteNotFound = errors.New("note not found")

	// ErrPlanNotFound covers a missing plan and, on read paths, a plan
	// owned by another user.
	ErrPlanNotFound = errors.New("trip plan not found")

	// ErrNotPlanOwner is returned when rating or deleting a plan that
	// exists but belongs to another user. Unlike reads, these operations
	// target a known id, so disclosing existence is acceptable.
	ErrNotPlanOwner = errors.New("plan owned by another user")

	// ErrInsufficientPreferences means fewer than the minimum preference
	// categories are filled.
	ErrInsufficientPreferences = errors.New("user must have at least 3 preferences filled to generate a plan")

	// ErrInvalidRating means the rating is outside [1, 5].
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrGenerationFailed wraps any completion backend failure: timeout,
	// transport error, or malformed response. Detail is logged, not shown.
	ErrGenerationFailed = errors.New("failed to generate trip plan")
)

// QuotaExceededError is returned when the principal's trailing 24-hour
// generation count has reached the daily cap. It carries the configured
// limit so callers can render a helpful message.
type QuotaExceededError struct {
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("daily AI usage limit exceeded. Limit: %d plans per day", e.Limit)
}
