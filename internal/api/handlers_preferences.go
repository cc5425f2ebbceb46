// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package api

import (
	"net/http"

	"github.com/robm15/vibetravels/internal/auth"
	"github.com/robm15/vibetravels/internal/models"
	"github.com/robm15/vibetravels/internal/planner"
)

// preferencesRequest is the PUT /api/preferences body. Every category is
// optional; values must match the enum constants.
type preferencesRequest struct {
	Budget             string   `json:"budget" validate:"omitempty,oneof=BUDGET MODERATE LUXURY"`
	Pace               string   `json:"pace" validate:"omitempty,oneof=RELAXED MODERATE FAST_PACED"`
	Interests          []string `json:"interests" validate:"omitempty,dive,oneof=CULTURE NATURE SPORTS GASTRONOMY ADVENTURE RELAXATION HISTORY NIGHTLIFE"`
	AccommodationStyle string   `json:"accommodation_style" validate:"omitempty,oneof=HOTEL HOSTEL APARTMENT CAMPING BED_AND_BREAKFAST RESORT"`
	Transport          []string `json:"transport" validate:"omitempty,dive,oneof=CAR TRAIN PLANE BUS BIKE WALKING"`
	FoodPreferences    []string `json:"food_preferences" validate:"omitempty,dive,oneof=LOCAL_CUISINE INTERNATIONAL FAST_FOOD VEGETARIAN VEGAN STREET_FOOD FINE_DINING"`
	Season             string   `json:"season" validate:"omitempty,oneof=SPRING SUMMER AUTUMN WINTER ANY"`
}

// GetPreferences returns the caller's stored preference set plus the filled
// count the generation gate will use. An absent set is returned as empty.
//
// GET /api/preferences
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	principal := auth.PrincipalFrom(r.Context())

	prefs, err := h.preferences.FindByOwner(r.Context(), principal.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load preferences", err)
		return
	}
	if prefs == nil {
		prefs = &models.TravelPreferences{UserID: principal.ID}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"preferences":     prefs,
		"filled_count":    prefs.FilledCount(),
		"required_count":  planner.MinPreferenceCategories,
		"total_count":     models.PreferenceCategoryCount,
		"ready_for_plans": prefs.FilledCount() >= planner.MinPreferenceCategories,
	})
}

// PutPreferences upserts the caller's preference set; the body replaces the
// stored set wholesale, so omitted categories are cleared.
//
// PUT /api/preferences
func (h *Handler) PutPreferences(w http.ResponseWriter, r *http.Request) {
	principal := auth.PrincipalFrom(r.Context())

	var req preferencesRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	prefs := &models.TravelPreferences{
		UserID:             principal.ID,
		Budget:             models.Budget(req.Budget),
		Pace:               models.Pace(req.Pace),
		AccommodationStyle: models.AccommodationStyle(req.AccommodationStyle),
		Season:             models.Season(req.Season),
	}
	for _, v := range req.Interests {
		prefs.Interests = append(prefs.Interests, models.Interest(v))
	}
	for _, v := range req.Transport {
		prefs.Transport = append(prefs.Transport, models.Transport(v))
	}
	for _, v := range req.FoodPreferences {
		prefs.FoodPreferences = append(prefs.FoodPreferences, models.FoodPreference(v))
	}

	if err := h.preferences.Save(r.Context(), prefs); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save preferences", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"message":      "Preferences saved successfully",
		"preferences":  prefs,
		"filled_count": prefs.FilledCount(),
	})
}

// preferenceOption is one selectable value with its display name.
type preferenceOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PreferenceOptions lists the selectable values per category for the UI.
//
// GET /api/preferences/options
func (h *Handler) PreferenceOptions(w http.ResponseWriter, r *http.Request) {
	options := map[string][]preferenceOption{
		"budget": {
			{Value: string(models.BudgetBudget), Label: models.BudgetBudget.DisplayName()},
			{Value: string(models.BudgetModerate), Label: models.BudgetModerate.DisplayName()},
			{Value: string(models.BudgetLuxury), Label: models.BudgetLuxury.DisplayName()},
		},
		"pace": {
			{Value: string(models.PaceRelaxed), Label: models.PaceRelaxed.DisplayName()},
			{Value: string(models.PaceModerate), Label: models.PaceModerate.DisplayName()},
			{Value: string(models.PaceFastPaced), Label: models.PaceFastPaced.DisplayName()},
		},
		"interests": {
			{Value: string(models.InterestCulture), Label: models.InterestCulture.DisplayName()},
			{Value: string(models.InterestNature), Label: models.InterestNature.DisplayName()},
			{Value: string(models.InterestSports), Label: models.InterestSports.DisplayName()},
			{Value: string(models.InterestGastronomy), Label: models.InterestGastronomy.DisplayName()},
			{Value: string(models.InterestAdventure), Label: models.InterestAdventure.DisplayName()},
			{Value: string(models.InterestRelaxation), Label: models.InterestRelaxation.DisplayName()},
			{Value: string(models.InterestHistory), Label: models.InterestHistory.DisplayName()},
			{Value: string(models.InterestNightlife), Label: models.InterestNightlife.DisplayName()},
		},
		"accommodation_style": {
			{Value: string(models.AccommodationHotel), Label: models.AccommodationHotel.DisplayName()},
			{Value: string(models.AccommodationHostel), Label: models.AccommodationHostel.DisplayName()},
			{Value: string(models.AccommodationApartment), Label: models.AccommodationApartment.DisplayName()},
			{Value: string(models.AccommodationCamping), Label: models.AccommodationCamping.DisplayName()},
			{Value: string(models.AccommodationBedAndBreakfast), Label: models.AccommodationBedAndBreakfast.DisplayName()},
			{Value: string(models.AccommodationResort), Label: models.AccommodationResort.DisplayName()},
		},
		"transport": {
			{Value: string(models.TransportCar), Label: models.TransportCar.DisplayName()},
			{Value: string(models.TransportTrain), Label: models.TransportTrain.DisplayName()},
			{Value: string(models.TransportPlane), Label: models.TransportPlane.DisplayName()},
			{Value: string(models.TransportBus), Label: models.TransportBus.DisplayName()},
			{Value: string(models.TransportBike), Label: models.TransportBike.DisplayName()},
			{Value: string(models.TransportWalking), Label: models.TransportWalking.DisplayName()},
		},
		"food_preferences": {
			{Value: string(models.FoodLocalCuisine), Label: models.FoodLocalCuisine.DisplayName()},
			{Value: string(models.FoodInternational), Label: models.FoodInternational.DisplayName()},
			{Value: string(models.FoodFastFood), Label: models.FoodFastFood.DisplayName()},
			{Value: string(models.FoodVegetarian), Label: models.FoodVegetarian.DisplayName()},
			{Value: string(models.FoodVegan), Label: models.FoodVegan.DisplayName()},
			{Value: string(models.FoodStreetFood), Label: models.FoodStreetFood.DisplayName()},
			{Value: string(models.FoodFineDining), Label: models.FoodFineDining.DisplayName()},
		},
		"season": {
			{Value: string(models.SeasonSpring), Label: models.SeasonSpring.DisplayName()},
			{Value: string(models.SeasonSummer), Label: models.SeasonSummer.DisplayName()},
			{Value: string(models.SeasonAutumn), Label: models.SeasonAutumn.DisplayName()},
			{Value: string(models.SeasonWinter), Label: models.SeasonWinter.DisplayName()},
			{Value: string(models.SeasonAny), Label: models.SeasonAny.DisplayName()},
		},
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"options": options,
	})
}
