package diet

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/planfit/internal/catalog"
)

// testDiet returns a small synthetic diet with three options per main slot
// and three snacks, sized so a day lands close to a 2000 kcal target.
func testDiet() catalog.Diet {
	return catalog.Diet{
		ID:         "test",
		Name:       "Test Diet",
		Difficulty: catalog.DietEasy,
		BreakfastOptions: []catalog.MealOption{
			{Name: "Oatmeal", Calories: catalog.Range{Min: 450, Max: 550}},
			{Name: "Eggs on toast", Calories: catalog.Range{Min: 400, Max: 500}},
			{Name: "Smoothie bowl", Calories: catalog.Range{Min: 350, Max: 450}},
		},
		LunchOptions: []catalog.MealOption{
			{Name: "Chicken salad", Calories: catalog.Range{Min: 750, Max: 850}},
			{Name: "Grain bowl", Calories: catalog.Range{Min: 700, Max: 800}},
			{Name: "Soup and bread", Calories: catalog.Range{Min: 650, Max: 750}},
		},
		DinnerOptions: []catalog.MealOption{
			{Name: "Salmon and rice", Calories: catalog.Range{Min: 550, Max: 650}},
			{Name: "Stir fry", Calories: catalog.Range{Min: 500, Max: 600}},
			{Name: "Pasta", Calories: catalog.Range{Min: 600, Max: 700}},
		},
		SnackOptions: []catalog.MealOption{
			{Name: "Apple", Calories: catalog.Range{Min: 80, Max: 120}},
			{Name: "Yogurt", Calories: catalog.Range{Min: 100, Max: 150}},
			{Name: "Nuts", Calories: catalog.Range{Min: 150, Max: 200}},
		},
	}
}

func TestScoreMealCalorieFit(t *testing.T) {
	// Breakfast target at 2000 kcal is 500. A meal centered on the target
	// should outscore one far from it.
	onTarget := catalog.MealOption{Name: "on", Calories: catalog.Range{Min: 450, Max: 550}}
	offTarget := catalog.MealOption{Name: "off", Calories: catalog.Range{Min: 100, Max: 200}}

	if got, want := scoreMeal(onTarget, 2000, SlotBreakfast, ""), scoreMeal(offTarget, 2000, SlotBreakfast, ""); got <= want {
		t.Errorf("on-target meal scored %v, should exceed off-target %v", got, want)
	}
}

func TestScoreMealMacroBonus(t *testing.T) {
	withMacros := catalog.MealOption{
		Name:     "complete",
		Calories: catalog.Range{Min: 450, Max: 550},
		Protein:  &catalog.Range{Min: 20, Max: 30},
		Carbs:    &catalog.Range{Min: 40, Max: 60},
		Fat:      &catalog.Range{Min: 10, Max: 20},
	}
	withoutMacros := catalog.MealOption{Name: "partial", Calories: catalog.Range{Min: 450, Max: 550}}

	got := scoreMeal(withMacros, 2000, SlotBreakfast, "")
	want := scoreMeal(withoutMacros, 2000, SlotBreakfast, "")
	if diff := got - want; diff != macroCompletePoints-macroPartialPoints {
		t.Errorf("macro bonus difference = %v, want %v", diff, macroCompletePoints-macroPartialPoints)
	}
}

func TestSelectDailyMeals(t *testing.T) {
	meals, err := SelectDailyMeals(testDiet(), 2000, "")
	if err != nil {
		t.Fatalf("SelectDailyMeals() error = %v", err)
	}

	if got, want := meals.Breakfast.Meal.Name, "Oatmeal"; got != want {
		t.Errorf("breakfast = %s, want %s", got, want)
	}
	if got, want := meals.Lunch.Meal.Name, "Chicken salad"; got != want {
		t.Errorf("lunch = %s, want %s", got, want)
	}
	if got, want := meals.Dinner.Meal.Name, "Salmon and rice"; got != want {
		t.Errorf("dinner = %s, want %s", got, want)
	}
	if got, want := len(meals.Snacks), 2; got != want {
		t.Fatalf("snacks = %d, want %d", got, want)
	}
	// The 100 kcal snack sits exactly on the 5% snack target.
	if got, want := meals.Snacks[0].Meal.Name, "Apple"; got != want {
		t.Errorf("top snack = %s, want %s", got, want)
	}
	if !strings.Contains(meals.Breakfast.Reasoning, "breakfast calorie distribution") {
		t.Errorf("breakfast reasoning = %q", meals.Breakfast.Reasoning)
	}
}

func TestSelectDailyMealsEmptySlot(t *testing.T) {
	d := testDiet()
	d.LunchOptions = nil

	if _, err := SelectDailyMeals(d, 2000, ""); err == nil {
		t.Fatal("SelectDailyMeals() expected error for empty lunch options")
	}
}

func TestPlanWeeklyMealsRotation(t *testing.T) {
	week, err := PlanWeeklyMeals(testDiet(), 2000, "")
	if err != nil {
		t.Fatalf("PlanWeeklyMeals() error = %v", err)
	}
	if got, want := len(week), 7; got != want {
		t.Fatalf("week length = %d, want %d", got, want)
	}

	// Each option holds for two consecutive days, then wraps at the list
	// length: days 1-2 option 0, days 3-4 option 1, days 5-6 option 2,
	// day 7 back to option 0.
	wantBreakfasts := []string{
		"Oatmeal", "Oatmeal",
		"Eggs on toast", "Eggs on toast",
		"Smoothie bowl", "Smoothie bowl",
		"Oatmeal",
	}
	var gotBreakfasts []string
	for _, day := range week {
		gotBreakfasts = append(gotBreakfasts, day.Breakfast.Meal.Name)
	}
	if diff := cmp.Diff(wantBreakfasts, gotBreakfasts); diff != "" {
		t.Errorf("breakfast rotation mismatch (-want +got):\n%s", diff)
	}

	if got, want := week[0].Day, "Monday"; got != want {
		t.Errorf("first day = %s, want %s", got, want)
	}
	if got, want := week[6].Day, "Sunday"; got != want {
		t.Errorf("last day = %s, want %s", got, want)
	}
	for i, day := range week {
		if day.DayNumber != i+1 {
			t.Errorf("day %d number = %d, want %d", i, day.DayNumber, i+1)
		}
	}
}

func TestPlanWeeklyMealsSnackWindow(t *testing.T) {
	week, err := PlanWeeklyMeals(testDiet(), 2000, "")
	if err != nil {
		t.Fatalf("PlanWeeklyMeals() error = %v", err)
	}

	// Window anchored at day index modulo the snack count: day 1 gets
	// snacks 0-1, day 3 gets snack 2 only (window truncated at the end).
	if got, want := len(week[0].Snacks), 2; got != want {
		t.Errorf("day 1 snacks = %d, want %d", got, want)
	}
	if got, want := len(week[2].Snacks), 1; got != want {
		t.Errorf("day 3 snacks = %d, want %d", got, want)
	}
	if got, want := week[2].Snacks[0].Meal.Name, "Nuts"; got != want {
		t.Errorf("day 3 snack = %s, want %s", got, want)
	}
}

func TestPlanWeeklyMealsSingleOption(t *testing.T) {
	d := testDiet()
	d.BreakfastOptions = d.BreakfastOptions[:1]

	week, err := PlanWeeklyMeals(d, 2000, "")
	if err != nil {
		t.Fatalf("PlanWeeklyMeals() error = %v", err)
	}
	for _, day := range week {
		if got, want := day.Breakfast.Meal.Name, "Oatmeal"; got != want {
			t.Errorf("%s breakfast = %s, want %s", day.Day, got, want)
		}
	}
}

func TestAlternativeMeals(t *testing.T) {
	alternatives := AlternativeMeals(testDiet(), SlotLunch, "Chicken salad", 2000, "")

	if got, want := len(alternatives), 2; got != want {
		t.Fatalf("alternatives = %d, want %d", got, want)
	}
	for _, alt := range alternatives {
		if alt.Meal.Name == "Chicken salad" {
			t.Errorf("alternatives include the current meal")
		}
		if !strings.Contains(alt.Reasoning, "Alternative lunch option") {
			t.Errorf("reasoning = %q", alt.Reasoning)
		}
	}
	if alternatives[0].Score < alternatives[1].Score {
		t.Errorf("alternatives not sorted by descending score")
	}
}

func TestValidateMealPlan(t *testing.T) {
	week, err := PlanWeeklyMeals(testDiet(), 2000, "")
	if err != nil {
		t.Fatalf("PlanWeeklyMeals() error = %v", err)
	}

	validation := ValidateMealPlan(week[0], 2000)
	if !validation.IsValid {
		t.Errorf("day 1 of a well-sized plan should validate, deviation %.1f%%", validation.DeviationPercent)
	}

	offTarget := ValidateMealPlan(week[0], 4000)
	if offTarget.IsValid {
		t.Errorf("doubled target should exceed tolerance, deviation %.1f%%", offTarget.DeviationPercent)
	}
	if offTarget.TotalCalories != validation.TotalCalories {
		t.Errorf("totals should not depend on the target: %+v vs %+v",
			offTarget.TotalCalories, validation.TotalCalories)
	}
}
