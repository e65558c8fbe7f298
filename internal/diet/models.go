// Package diet selects a diet and plans weekly meals for a user profile
// using deterministic, explainable scoring over the static catalog.
package diet

import (
	"github.com/myrjola/planfit/internal/catalog"
)

// Profile is the caller-supplied user profile. Unknown enum values degrade
// to documented neutral defaults; they never cause an error.
type Profile struct {
	Age                int      `json:"age"`
	Gender             string   `json:"gender"`
	WeightKg           float64  `json:"weight_kg"`
	HeightCm           float64  `json:"height_cm"`
	FitnessLevel       string   `json:"fitness_level"`
	PrimaryGoal        string   `json:"primary_goal"`
	DietaryStyle       string   `json:"dietary_style"`
	CulturalPreference string   `json:"cultural_preference"`
	HealthConditions   []string `json:"health_conditions,omitempty"`
	Allergies          []string `json:"allergies,omitempty"`
	// TargetCalories overrides the estimator when positive.
	TargetCalories int `json:"target_calories,omitempty"`
}

// SelectionResult is the outcome of scoring the diet catalog.
type SelectionResult struct {
	Diet      catalog.Diet `json:"diet"`
	Score     float64      `json:"score"`
	Reasoning string       `json:"reasoning"`
}

// MealSelection is a scored meal pick for one slot.
type MealSelection struct {
	Meal      catalog.MealOption `json:"meal"`
	Score     float64            `json:"score"`
	Reasoning string             `json:"reasoning"`
}

// DailyMeals holds the best-scoring selection per slot for a single day.
type DailyMeals struct {
	Breakfast MealSelection   `json:"breakfast"`
	Lunch     MealSelection   `json:"lunch"`
	Dinner    MealSelection   `json:"dinner"`
	Snacks    []MealSelection `json:"snacks"`
}

// DayMeals is one day of the weekly rotation.
type DayMeals struct {
	Day       string          `json:"day"`
	DayNumber int             `json:"day_number"`
	Breakfast MealSelection   `json:"breakfast"`
	Lunch     MealSelection   `json:"lunch"`
	Dinner    MealSelection   `json:"dinner"`
	Snacks    []MealSelection `json:"snacks"`
}

// Validation reports whether a day's meals land close enough to the calorie
// target. Totals and deviation are reported regardless of validity.
type Validation struct {
	IsValid          bool          `json:"is_valid"`
	TotalCalories    catalog.Range `json:"total_calories"`
	DeviationPercent float64       `json:"deviation_percent"`
}

// Slot identifies a meal slot within a day.
type Slot string

// Meal slot constants.
const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
)
