// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

// Package ai provides the text completion client used for trip plan
// generation: a real OpenAI-backed client guarded by a circuit breaker and
// a per-call timeout, plus a canned client for offline deployments.
package ai

import (
	"context"

	"github.com/robm15/vibetravels/internal/config"
)

// Client turns a prompt into generated text. Implementations may be slow
// and remote; callers treat any error as a single opaque generation failure.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewFromConfig selects the completion client for this deployment: the
// canned client when offline mode is forced or no API key is configured,
// otherwise the OpenAI client.
func NewFromConfig(cfg config.AIConfig) Client {
	if cfg.Offline || cfg.APIKey == "" {
		return NewCannedClient()
	}
	return NewOpenAIClient(cfg)
}
