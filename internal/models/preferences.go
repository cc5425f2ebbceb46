// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package models

// Enumerated preference values are stored as their upper-snake wire form
// (e.g. "FAST_PACED") with human-readable display names resolved through
// static lookup tables. An empty string means the category is unset.

// Budget is the traveler's budget preference.
type Budget string

// Budget values.
const (
	BudgetBudget   Budget = "BUDGET"
	BudgetModerate Budget = "MODERATE"
	BudgetLuxury   Budget = "LUXURY"
)

// BudgetDisplayNames maps budget values to their display names.
var BudgetDisplayNames = map[Budget]string{
	BudgetBudget:   "Budget",
	BudgetModerate: "Moderate",
	BudgetLuxury:   "Luxury",
}

// DisplayName returns the human-readable name, or the raw value if unknown.
func (b Budget) DisplayName() string {
	if name, ok := BudgetDisplayNames[b]; ok {
		return name
	}
	return string(b)
}

// Pace is the traveler's pace preference.
type Pace string

// Pace values.
const (
	PaceRelaxed   Pace = "RELAXED"
	PaceModerate  Pace = "MODERATE"
	PaceFastPaced Pace = "FAST_PACED"
)

// PaceDisplayNames maps pace values to their display names.
var PaceDisplayNames = map[Pace]string{
	PaceRelaxed:   "Relaxed",
	PaceModerate:  "Moderate",
	PaceFastPaced: "Fast-paced",
}

// DisplayName returns the human-readable name, or the raw value if unknown.
func (p Pace) DisplayName() string {
	if name, ok := PaceDisplayNames[p]; ok {
		return name
	}
	return string(p)
}

// Interest is a travel interest category.
type Interest string

// Interest values.
const (
	InterestCulture    Interest = "CULTURE"
	InterestNature     Interest = "NATURE"
	InterestSports     Interest = "SPORTS"
	InterestGastronomy Interest = "GASTRONOMY"
	InterestAdventure  Interest = "ADVENTURE"
	InterestRelaxation Interest = "RELAXATION"
	InterestHistory    Interest = "HISTORY"
	InterestNightlife  Interest = "NIGHTLIFE"
)

// InterestDisplayNames maps interests to their display names.
var InterestDisplayNames = map[Interest]string{
	InterestCulture:    "Culture",
	InterestNature:     "Nature",
	InterestSports:     "Sports",
	InterestGastronomy: "Gastronomy",
	InterestAdventure:  "Adventure",
	InterestRelaxation: "Relaxation",
	InterestHistory:    "History",
	InterestNightlife:  "Nightlife",
}

// DisplayName returns the human-readable name, or the raw value if unknown.
func (i Interest) DisplayName() string {
	if name, ok := InterestDisplayNames[i]; ok {
		return name
	}
	return string(i)
}

// AccommodationStyle is the traveler's accommodation preference.
type AccommodationStyle string

// AccommodationStyle values.
const (
	AccommodationHotel           AccommodationStyle = "HOTEL"
	AccommodationHostel          AccommodationStyle = "HOSTEL"
	AccommodationApartment       AccommodationStyle = "APARTMENT"
	AccommodationCamping         AccommodationStyle = "CAMPING"
	AccommodationBedAndBreakfast AccommodationStyle = "BED_AND_BREAKFAST"
	AccommodationResort          AccommodationStyle = "RESORT"
)

// AccommodationStyleDisplayNames maps accommodation styles to display names.
var AccommodationStyleDisplayNames = map[AccommodationStyle]string{
	AccommodationHotel:           "Hotel",
	AccommodationHostel:          "Hostel",
	AccommodationApartment:       "Apartment",
	AccommodationCamping:         "Camping",
	AccommodationBedAndBreakfast: "Bed & Breakfast",
	AccommodationResort:          "Resort",
}

// DisplayName returns the human-readable name, or the raw value if unknown.
func (a AccommodationStyle) DisplayName() string {
	if name, ok := AccommodationStyleDisplayNames[a]; ok {
		return name
	}
	return string(a)
}

// Transport is a preferred mode of transport.
type Transport string

// Transport values.
const (
	TransportCar     Transport = "CAR"
	TransportTrain   Transport = "TRAIN"
	TransportPlane   Transport = "PLANE"
	TransportBus     Transport = "BUS"
	TransportBike    Transport = "BIKE"
	TransportWalking Transport = "WALKING"
)

// TransportDisplayNames maps transport modes to display names.
var TransportDisplayNames = map[Transport]string{
	TransportCar:     "Car",
	TransportTrain:   "Train",
	TransportPlane:   "Plane",
	TransportBus:     "Bus",
	TransportBike:    "Bike",
	TransportWalking: "Walking",
}

// DisplayName returns the human-readable name, or the raw value if unknown.
func (t Transport) DisplayName() string {
	if name, ok := TransportDisplayNames[t]; ok {
		return name
	}
	return string(t)
}

// FoodPreference is a food preference category.
type FoodPreference string

// FoodPreference values.
const (
	FoodLocalCuisine  FoodPreference = "LOCAL_CUISINE"
	FoodInternational FoodPreference = "INTERNATIONAL"
	FoodFastFood      FoodPreference = "FAST_FOOD"
	FoodVegetarian    FoodPreference = "VEGETARIAN"
	FoodVegan         FoodPreference = "VEGAN"
	FoodStreetFood    FoodPreference = "STREET_FOOD"
	FoodFineDining    FoodPreference = "FINE_DINING"
)

// FoodPreferenceDisplayNames maps food preferences to display names.
var FoodPreferenceDisplayNames = map[FoodPreference]string{
	FoodLocalCuisine:  "Local Cuisine",
	FoodInternational: "International",
	FoodFastFood:      "Fast Food",
	FoodVegetarian:    "Vegetarian",
	FoodVegan:         "Vegan",
	FoodStreetFood:    "Street Food",
	FoodFineDining:    "Fine Dining",
}

// DisplayName returns the human-readable name, or the raw value if unknown.
func (f FoodPreference) DisplayName() string {
	if name, ok := FoodPreferenceDisplayNames[f]; ok {
		return name
	}
	return string(f)
}

// Season is the traveler's preferred season.
type Season string

// Season values.
const (
	SeasonSpring Season = "SPRING"
	SeasonSummer Season = "SUMMER"
	SeasonAutumn Season = "AUTUMN"
	SeasonWinter Season = "WINTER"
	SeasonAny    Season = "ANY"
)

// SeasonDisplayNames maps seasons to display names.
var SeasonDisplayNames = map[Season]string{
	SeasonSpring: "Spring",
	SeasonSummer: "Summer",
	SeasonAutumn: "Autumn",
	SeasonWinter: "Winter",
	SeasonAny:    "Any Season",
}

// DisplayName returns the human-readable name, or the raw value if unknown.
func (s Season) DisplayName() string {
	if name, ok := SeasonDisplayNames[s]; ok {
		return name
	}
	return string(s)
}

// PreferenceCategoryCount is the number of preference categories considered
// when deciding generation eligibility.
const PreferenceCategoryCount = 7

// TravelPreferences holds a user's travel preferences across seven
// categories: four single-valued (budget, pace, accommodation style, season)
// and three multi-valued (interests, transport, food preferences). Exactly
// one set exists per user.
type TravelPreferences struct {
	UserID             string             `json:"user_id"`
	Budget             Budget             `json:"budget,omitempty"`
	Pace               Pace               `json:"pace,omitempty"`
	Interests          []Interest         `json:"interests,omitempty"`
	AccommodationStyle AccommodationStyle `json:"accommodation_style,omitempty"`
	Transport          []Transport        `json:"transport,omitempty"`
	FoodPreferences    []FoodPreference   `json:"food_preferences,omitempty"`
	Season             Season             `json:"season,omitempty"`
}

// FilledCount returns how many of the seven categories are non-empty.
// Multi-valued categories count as filled when they have at least one member.
func (p *TravelPreferences) FilledCount() int {
	count := 0
	if p.Budget != "" {
		count++
	}
	if p.Pace != "" {
		count++
	}
	if len(p.Interests) > 0 {
		count++
	}
	if p.AccommodationStyle != "" {
		count++
	}
	if len(p.Transport) > 0 {
		count++
	}
	if len(p.FoodPreferences) > 0 {
		count++
	}
	if p.Season != "" {
		count++
	}
	return count
}
