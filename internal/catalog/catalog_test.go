package catalog_test

import (
	"errors"
	"testing"

	"github.com/myrjola/planfit/internal/catalog"
)

func TestValidate(t *testing.T) {
	if err := catalog.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestDietByID(t *testing.T) {
	d, err := catalog.DietByID("mediterranean")
	if err != nil {
		t.Fatalf("DietByID() error = %v", err)
	}
	if got, want := d.Name, "Mediterranean"; got != want {
		t.Errorf("Name = %s, want %s", got, want)
	}

	if _, err := catalog.DietByID("carnivore"); !errors.Is(err, catalog.ErrUnknownDiet) {
		t.Errorf("DietByID() error = %v, want %v", err, catalog.ErrUnknownDiet)
	}
}

func TestExerciseByID(t *testing.T) {
	e, err := catalog.ExerciseByID("push-ups")
	if err != nil {
		t.Fatalf("ExerciseByID() error = %v", err)
	}
	if got, want := e.Category, catalog.CategoryUpperBody; got != want {
		t.Errorf("Category = %s, want %s", got, want)
	}

	if _, err := catalog.ExerciseByID("wall-sit"); !errors.Is(err, catalog.ErrUnknownExercise) {
		t.Errorf("ExerciseByID() error = %v, want %v", err, catalog.ErrUnknownExercise)
	}
}

func TestRangeMidpoint(t *testing.T) {
	r := catalog.Range{Min: 400, Max: 500}
	if got, want := r.Midpoint(), 450.0; got != want {
		t.Errorf("Midpoint() = %v, want %v", got, want)
	}
}

func TestExercisesRepsOrDuration(t *testing.T) {
	for _, e := range catalog.Exercises() {
		hasReps := e.DefaultReps > 0
		hasDuration := e.DefaultDurationSeconds > 0
		if hasReps == hasDuration {
			t.Errorf("%s: exactly one of reps or duration must be set", e.ID)
		}
		if e.DurationBased() != hasDuration {
			t.Errorf("%s: DurationBased() = %v, want %v", e.ID, e.DurationBased(), hasDuration)
		}
	}
}

func TestDietsHaveMealOptions(t *testing.T) {
	for _, d := range catalog.Diets() {
		if len(d.BreakfastOptions) == 0 || len(d.LunchOptions) == 0 ||
			len(d.DinnerOptions) == 0 || len(d.SnackOptions) == 0 {
			t.Errorf("%s: every meal slot needs at least one option", d.ID)
		}
	}
}
