// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package validation

import (
	"strings"
	"testing"
)

type ratingPayload struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

type prefsPayload struct {
	Budget    string   `json:"budget" validate:"omitempty,oneof=BUDGET MODERATE LUXURY"`
	Interests []string `json:"interests" validate:"omitempty,dive,oneof=CULTURE NATURE"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		wantErr bool
		field   string
	}{
		{"valid rating", ratingPayload{Rating: 3}, false, ""},
		{"rating too low", ratingPayload{Rating: 0}, true, "Rating"},
		{"rating too high", ratingPayload{Rating: 6}, true, "Rating"},
		{"empty enums pass", prefsPayload{}, false, ""},
		{"valid enum", prefsPayload{Budget: "LUXURY"}, false, ""},
		{"invalid enum", prefsPayload{Budget: "EXTRAVAGANT"}, true, "Budget"},
		{"invalid slice member", prefsPayload{Interests: []string{"CULTURE", "SKYDIVING"}}, true, "Interests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.payload)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if len(err.Errors()) == 0 {
				t.Fatal("expected at least one field error")
			}
			if got := err.Errors()[0].Field(); got != tt.field {
				t.Errorf("failed field = %q, want %q", got, tt.field)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	err := ValidateStruct(ratingPayload{Rating: 9})
	if err == nil {
		t.Fatal("expected error")
	}
	if msg := err.Error(); !strings.Contains(msg, "at most") {
		t.Errorf("message %q should mention the max constraint", msg)
	}

	err = ValidateStruct(prefsPayload{Budget: "WRONG"})
	if err == nil {
		t.Fatal("expected error")
	}
	if msg := err.Error(); !strings.Contains(msg, "must be one of") {
		t.Errorf("message %q should list allowed values", msg)
	}
}

func TestGetValidatorIsSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator must return the same instance")
	}
}
