// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/robm15/vibetravels/internal/config"
	"github.com/robm15/vibetravels/internal/logging"
	"github.com/robm15/vibetravels/internal/metrics"
)

const systemPrompt = "You are a helpful travel planning assistant."

// OpenAIClient calls an OpenAI-compatible chat completion API. Each call is
// bounded by the configured timeout and routed through a circuit breaker so
// a degraded backend sheds load quickly instead of queueing slow failures.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker[string]
	name    string
}

// NewOpenAIClient creates a completion client from config.
//
// Circuit breaker configuration:
//   - Opens after >=60% failure rate with minimum 5 requests
//   - 1 minute measurement window in the closed state
//   - 30 second timeout before attempting recovery
//   - 2 concurrent probe requests in half-open state
func NewOpenAIClient(cfg config.AIConfig) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	cbName := "completion-api"
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 2,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Completion circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &OpenAIClient{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		cb:      cb,
		name:    cbName,
	}
}

// Complete sends the prompt to the chat completion API and returns the
// generated text.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.cb.Execute(func() (string, error) {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			return "", fmt.Errorf("chat completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("chat completion returned no choices")
		}
		return resp.Choices[0].Message.Content, nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("Completion request rejected by circuit breaker")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "failure").Inc()
		}
		return "", err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()
	return result, nil
}

// stateToFloat converts circuit breaker state to a metric value.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
