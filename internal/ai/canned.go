// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package ai

import "context"

// cannedPlan is the fixed response used when no AI backend is configured.
const cannedPlan = "Mock AI-generated plan for testing:\n\n" +
	"Day 1:\n- Morning: Arrival and hotel check-in\n- Afternoon: City tour\n- Evening: Local restaurant\n\n" +
	"Day 2:\n- Morning: Museum visit\n- Afternoon: Shopping\n- Evening: Sunset viewpoint\n\n" +
	"Day 3:\n- Morning: Nature excursion\n- Afternoon: Beach relaxation\n- Evening: Departure"

// CannedClient returns a fixed three-day plan for every prompt. Used in
// offline/local deployments and demos where no API key is configured.
type CannedClient struct{}

// NewCannedClient creates the offline completion client.
func NewCannedClient() *CannedClient {
	return &CannedClient{}
}

// Complete returns the canned plan, honoring context cancellation.
func (c *CannedClient) Complete(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
		return cannedPlan, nil
	}
}
