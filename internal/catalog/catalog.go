package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownDiet is returned when a diet id is not present in the catalog.
var ErrUnknownDiet = errors.New("unknown diet")

// ErrUnknownExercise is returned when an exercise id is not present in the catalog.
var ErrUnknownExercise = errors.New("unknown exercise")

// Diets returns the full diet catalog in its canonical order.
func Diets() []Diet {
	return diets
}

// Exercises returns the full exercise catalog in its canonical order.
func Exercises() []Exercise {
	return exercises
}

// DietByID resolves a diet by its id.
func DietByID(id string) (Diet, error) {
	for _, d := range diets {
		if d.ID == id {
			return d, nil
		}
	}
	return Diet{}, fmt.Errorf("%w: %s", ErrUnknownDiet, id)
}

// ExerciseByID resolves an exercise by its id.
func ExerciseByID(id string) (Exercise, error) {
	for _, e := range exercises {
		if e.ID == id {
			return e, nil
		}
	}
	return Exercise{}, fmt.Errorf("%w: %s", ErrUnknownExercise, id)
}

// Validate checks the structural invariants of both catalogs: every diet has
// four non-empty option lists with well-ordered calorie ranges, and every
// exercise has at least one of reps or duration. A violation here is a
// programming error in the catalog data, not a runtime condition.
func Validate() error {
	for _, d := range diets {
		if err := validateDiet(d); err != nil {
			return fmt.Errorf("diet %s: %w", d.ID, err)
		}
	}
	for _, e := range exercises {
		if err := validateExercise(e); err != nil {
			return fmt.Errorf("exercise %s: %w", e.ID, err)
		}
	}
	return nil
}

func validateDiet(d Diet) error {
	lists := map[string][]MealOption{
		"breakfast": d.BreakfastOptions,
		"lunch":     d.LunchOptions,
		"dinner":    d.DinnerOptions,
		"snack":     d.SnackOptions,
	}
	for slot, options := range lists {
		if len(options) == 0 {
			return fmt.Errorf("empty %s option list", slot)
		}
		for _, option := range options {
			if err := validateMealOption(option); err != nil {
				return fmt.Errorf("%s option %q: %w", slot, option.Name, err)
			}
		}
	}
	return nil
}

func validateMealOption(m MealOption) error {
	if m.Name == "" {
		return errors.New("missing name")
	}
	ranges := map[string]*Range{
		"calories": {Min: m.Calories.Min, Max: m.Calories.Max},
		"protein":  m.Protein,
		"carbs":    m.Carbs,
		"fat":      m.Fat,
	}
	for name, r := range ranges {
		if r == nil {
			continue
		}
		if r.Min > r.Max {
			return fmt.Errorf("%s range min %d exceeds max %d", name, r.Min, r.Max)
		}
	}
	return nil
}

func validateExercise(e Exercise) error {
	if e.Name == "" {
		return errors.New("missing name")
	}
	if len(e.PrimaryMuscles) == 0 {
		return errors.New("no primary muscles")
	}
	if e.DefaultReps <= 0 && e.DefaultDurationSeconds <= 0 {
		return errors.New("needs default reps or duration")
	}
	return nil
}
