// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/robm15/vibetravels/internal/config"
)

func TestCannedClientComplete(t *testing.T) {
	client := NewCannedClient()

	got, err := client.Complete(context.Background(), "any prompt")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	for _, day := range []string{"Day 1:", "Day 2:", "Day 3:"} {
		if !strings.Contains(got, day) {
			t.Errorf("canned plan missing %q", day)
		}
	}

	// Same output regardless of prompt.
	again, err := client.Complete(context.Background(), "different prompt")
	if err != nil {
		t.Fatal(err)
	}
	if again != got {
		t.Error("canned plan should not vary with the prompt")
	}
}

func TestCannedClientHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewCannedClient().Complete(ctx, "p"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.AIConfig
		wantCanned bool
	}{
		{"offline flag", config.AIConfig{Offline: true, APIKey: "sk-test"}, true},
		{"no api key", config.AIConfig{}, true},
		{"api key configured", config.AIConfig{APIKey: "sk-test", Model: "gpt-4o-mini"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewFromConfig(tt.cfg)
			_, canned := client.(*CannedClient)
			if canned != tt.wantCanned {
				t.Errorf("client type = %T, want canned=%v", client, tt.wantCanned)
			}
		})
	}
}
