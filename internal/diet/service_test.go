package diet_test

import (
	"context"
	"errors"
	"testing"

	"github.com/myrjola/planfit/internal/catalog"
	"github.com/myrjola/planfit/internal/diet"
	"github.com/myrjola/planfit/internal/testhelpers"
)

func newService(t *testing.T) *diet.Service {
	t.Helper()
	return diet.NewService(testhelpers.NewLogger(testhelpers.NewWriter(t)))
}

func TestServiceEstimateCalories(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	profile := diet.Profile{
		Age: 30, Gender: "male", WeightKg: 80, HeightCm: 180,
		FitnessLevel: "intermediate", PrimaryGoal: "maintenance",
	}

	estimated := svc.EstimateCalories(ctx, profile)
	if estimated <= 0 {
		t.Fatalf("EstimateCalories() = %d, want > 0", estimated)
	}

	profile.TargetCalories = 1800
	if got := svc.EstimateCalories(ctx, profile); got != 1800 {
		t.Errorf("EstimateCalories() with override = %d, want 1800", got)
	}
}

func TestServicePlanWeeklyMeals(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	week, err := svc.PlanWeeklyMeals(ctx, "mediterranean", 2000, "")
	if err != nil {
		t.Fatalf("PlanWeeklyMeals() error = %v", err)
	}
	if got, want := len(week), 7; got != want {
		t.Errorf("days = %d, want %d", got, want)
	}

	if _, err := svc.PlanWeeklyMeals(ctx, "carnivore", 2000, ""); !errors.Is(err, catalog.ErrUnknownDiet) {
		t.Errorf("PlanWeeklyMeals() error = %v, want %v", err, catalog.ErrUnknownDiet)
	}
}

func TestServiceAlternativeMeals(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	meals, err := svc.SelectDailyMeals(ctx, "keto", 2200, "")
	if err != nil {
		t.Fatalf("SelectDailyMeals() error = %v", err)
	}

	alternatives, err := svc.AlternativeMeals(ctx, "keto", diet.SlotBreakfast, meals.Breakfast.Meal.Name, 2200, "")
	if err != nil {
		t.Fatalf("AlternativeMeals() error = %v", err)
	}
	if len(alternatives) == 0 {
		t.Fatal("AlternativeMeals() returned none")
	}
	if len(alternatives) > 5 {
		t.Errorf("AlternativeMeals() returned %d, want at most 5", len(alternatives))
	}
	for _, alt := range alternatives {
		if alt.Meal.Name == meals.Breakfast.Meal.Name {
			t.Error("alternatives include the current meal")
		}
	}
}
