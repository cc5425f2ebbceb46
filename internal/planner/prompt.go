// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package planner

import (
	"strings"

	"github.com/robm15/vibetravels/internal/models"
)

// BuildPrompt constructs the deterministic natural-language prompt for plan
// generation. It embeds the note's title and content plus every non-empty
// preference category under a stable label; multi-valued categories are
// comma-joined with no trailing separator. Identical inputs always produce
// an identical prompt.
func BuildPrompt(note *models.Note, prefs *models.TravelPreferences) string {
	var b strings.Builder

	b.WriteString("You are a professional travel planner. Generate a detailed trip plan based on the following information:\n\n")

	b.WriteString("Trip Note:\n")
	b.WriteString("Title: ")
	b.WriteString(note.Title)
	b.WriteString("\n")
	b.WriteString("Description: ")
	b.WriteString(note.Content)
	b.WriteString("\n\n")

	b.WriteString("Traveler Preferences:\n")

	if prefs.Budget != "" {
		b.WriteString("- Budget: ")
		b.WriteString(prefs.Budget.DisplayName())
		b.WriteString("\n")
	}

	if prefs.Pace != "" {
		b.WriteString("- Travel Pace: ")
		b.WriteString(prefs.Pace.DisplayName())
		b.WriteString("\n")
	}

	if len(prefs.Interests) > 0 {
		names := make([]string, len(prefs.Interests))
		for i, v := range prefs.Interests {
			names[i] = v.DisplayName()
		}
		b.WriteString("- Interests: ")
		b.WriteString(strings.Join(names, ", "))
		b.WriteString("\n")
	}

	if prefs.AccommodationStyle != "" {
		b.WriteString("- Accommodation Style: ")
		b.WriteString(prefs.AccommodationStyle.DisplayName())
		b.WriteString("\n")
	}

	if len(prefs.Transport) > 0 {
		names := make([]string, len(prefs.Transport))
		for i, v := range prefs.Transport {
			names[i] = v.DisplayName()
		}
		b.WriteString("- Preferred Transport: ")
		b.WriteString(strings.Join(names, ", "))
		b.WriteString("\n")
	}

	if len(prefs.FoodPreferences) > 0 {
		names := make([]string, len(prefs.FoodPreferences))
		for i, v := range prefs.FoodPreferences {
			names[i] = v.DisplayName()
		}
		b.WriteString("- Food Preferences: ")
		b.WriteString(strings.Join(names, ", "))
		b.WriteString("\n")
	}

	if prefs.Season != "" {
		b.WriteString("- Preferred Season: ")
		b.WriteString(prefs.Season.DisplayName())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("Please generate a day-by-day trip plan with specific attractions and activities. ")
	b.WriteString("Format the plan as a clear list organized by days. ")
	b.WriteString("Include morning, afternoon, and evening activities for each day. ")
	b.WriteString("Make sure recommendations align with the traveler's preferences and budget.")

	return b.String()
}
