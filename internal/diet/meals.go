package diet

import (
	"fmt"
	"math"
	"sort"

	"github.com/myrjola/planfit/internal/catalog"
)

// Per-slot share of the daily calorie target. Snacks draw the remainder.
const (
	breakfastShare = 0.25
	lunchShare     = 0.40
	dinnerShare    = 0.30
	snackShare     = 0.05
)

// Meal scoring weights.
const (
	calorieFitPoints    = 50
	macroCompletePoints = 30
	macroPartialPoints  = 15
	culturalPoints      = 10
	maxMealScore        = 100
	snackScoreBase      = 100
)

// Weekly planning constants.
const (
	daysPerWeek = 7
	// mealRepeatDays is how many consecutive days a rotated meal repeats
	// before advancing to the next option.
	mealRepeatDays = 2
	// snackWindow is how many snacks are assigned per day.
	snackWindow = 2
	// alternativesLimit bounds the swap list returned to callers.
	alternativesLimit = 5
	// validTolerancePercent is the allowed deviation of a day's calorie
	// midpoint from the daily target.
	validTolerancePercent = 15
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var slotShares = map[Slot]float64{
	SlotBreakfast: breakfastShare,
	SlotLunch:     lunchShare,
	SlotDinner:    dinnerShare,
}

// scoreMeal scores a meal for a slot: calorie fit against the slot's share
// of the daily target, macro completeness, and a flat cultural component.
// The catalog carries no per-meal cultural tagging yet, so every meal gets
// equal cultural weight. The result is capped at maxMealScore.
func scoreMeal(meal catalog.MealOption, targetCalories int, slot Slot, culturalPref string) float64 {
	slotTarget := float64(targetCalories) * slotShares[slot]

	var score float64
	if slotTarget > 0 {
		deviation := math.Abs(meal.Calories.Midpoint() - slotTarget)
		score = math.Max(0, calorieFitPoints-(deviation/slotTarget)*calorieFitPoints)
	}

	if meal.HasCompleteMacros() {
		score += macroCompletePoints
	} else {
		score += macroPartialPoints
	}

	score += culturalPoints

	return math.Min(score, maxMealScore)
}

// scoreSnack scores a snack against the snack share of the daily target.
func scoreSnack(snack catalog.MealOption, targetCalories int) float64 {
	snackTarget := float64(targetCalories) * snackShare
	return math.Max(0, snackScoreBase-math.Abs(snack.Calories.Midpoint()-snackTarget))
}

// SelectDailyMeals picks the best-scoring meal per slot plus the two
// best-fitting snacks for a single day.
func SelectDailyMeals(d catalog.Diet, targetCalories int, culturalPref string) (DailyMeals, error) {
	breakfast, err := bestMeal(d.BreakfastOptions, targetCalories, SlotBreakfast, culturalPref)
	if err != nil {
		return DailyMeals{}, fmt.Errorf("diet %s: %w", d.ID, err)
	}
	lunch, err := bestMeal(d.LunchOptions, targetCalories, SlotLunch, culturalPref)
	if err != nil {
		return DailyMeals{}, fmt.Errorf("diet %s: %w", d.ID, err)
	}
	dinner, err := bestMeal(d.DinnerOptions, targetCalories, SlotDinner, culturalPref)
	if err != nil {
		return DailyMeals{}, fmt.Errorf("diet %s: %w", d.ID, err)
	}
	if len(d.SnackOptions) == 0 {
		return DailyMeals{}, fmt.Errorf("diet %s: no snack options", d.ID)
	}

	snacks := rankedSnacks(d.SnackOptions, targetCalories)
	if len(snacks) > snackWindow {
		snacks = snacks[:snackWindow]
	}

	return DailyMeals{
		Breakfast: breakfast,
		Lunch:     lunch,
		Dinner:    dinner,
		Snacks:    snacks,
	}, nil
}

// bestMeal scores every option for the slot and returns the top one.
func bestMeal(options []catalog.MealOption, targetCalories int, slot Slot, culturalPref string) (MealSelection, error) {
	if len(options) == 0 {
		return MealSelection{}, fmt.Errorf("no %s options", slot)
	}

	selections := scoreOptions(options, targetCalories, slot, culturalPref)
	top := selections[0]
	top.Reasoning = slotReasoning(slot, top.Meal)
	return top, nil
}

// scoreOptions scores all options for a slot, sorted by descending score.
func scoreOptions(options []catalog.MealOption, targetCalories int, slot Slot, culturalPref string) []MealSelection {
	selections := make([]MealSelection, len(options))
	for i, option := range options {
		selections[i] = MealSelection{
			Meal:  option,
			Score: scoreMeal(option, targetCalories, slot, culturalPref),
		}
	}
	sort.SliceStable(selections, func(i, j int) bool {
		return selections[i].Score > selections[j].Score
	})
	return selections
}

// rankedSnacks scores all snacks, sorted by descending score.
func rankedSnacks(options []catalog.MealOption, targetCalories int) []MealSelection {
	snacks := make([]MealSelection, len(options))
	for i, option := range options {
		snacks[i] = MealSelection{
			Meal:      option,
			Score:     scoreSnack(option, targetCalories),
			Reasoning: "Healthy snack option to maintain energy",
		}
	}
	sort.SliceStable(snacks, func(i, j int) bool {
		return snacks[i].Score > snacks[j].Score
	})
	return snacks
}

// slotReasoning produces the per-slot justification sentence.
func slotReasoning(slot Slot, meal catalog.MealOption) string {
	kcal := int(math.Round(meal.Calories.Midpoint()))
	switch slot {
	case SlotBreakfast:
		return fmt.Sprintf("Selected for optimal breakfast calorie distribution (%d kcal)", kcal)
	case SlotLunch:
		return fmt.Sprintf("Selected for balanced lunch macros (%d kcal)", kcal)
	case SlotDinner:
		return fmt.Sprintf("Selected for lighter dinner to support recovery (%d kcal)", kcal)
	default:
		return fmt.Sprintf("Selected %s option (%d kcal)", slot, kcal)
	}
}

// PlanWeeklyMeals produces a full week of meal assignments for a diet,
// rotating through the option lists so the same meal repeats for two
// consecutive days before advancing. Snacks take a rotating two-item window
// over the snack list anchored at the day index.
func PlanWeeklyMeals(d catalog.Diet, targetCalories int, culturalPref string) ([]DayMeals, error) {
	if err := checkOptionLists(d); err != nil {
		return nil, err
	}

	week := make([]DayMeals, daysPerWeek)
	for dayIndex := 0; dayIndex < daysPerWeek; dayIndex++ {
		breakfast := rotatedOption(d.BreakfastOptions, dayIndex)
		lunch := rotatedOption(d.LunchOptions, dayIndex)
		dinner := rotatedOption(d.DinnerOptions, dayIndex)

		week[dayIndex] = DayMeals{
			Day:       weekdays[dayIndex],
			DayNumber: dayIndex + 1,
			Breakfast: rotatedSelection(breakfast, targetCalories, SlotBreakfast, culturalPref),
			Lunch:     rotatedSelection(lunch, targetCalories, SlotLunch, culturalPref),
			Dinner:    rotatedSelection(dinner, targetCalories, SlotDinner, culturalPref),
			Snacks:    snacksForDay(d.SnackOptions, dayIndex, targetCalories),
		}
	}
	return week, nil
}

// checkOptionLists guards against structurally invalid diets. An empty
// option list is a catalog defect and surfaces as an explicit error rather
// than an empty selection.
func checkOptionLists(d catalog.Diet) error {
	lists := []struct {
		name    string
		options []catalog.MealOption
	}{
		{"breakfast", d.BreakfastOptions},
		{"lunch", d.LunchOptions},
		{"dinner", d.DinnerOptions},
		{"snack", d.SnackOptions},
	}
	for _, list := range lists {
		if len(list.options) == 0 {
			return fmt.Errorf("diet %s: no %s options", d.ID, list.name)
		}
	}
	return nil
}

// rotatedOption returns the option for a day under the two-day repeat rule.
func rotatedOption(options []catalog.MealOption, dayIndex int) catalog.MealOption {
	if len(options) <= 1 {
		return options[0]
	}
	return options[(dayIndex/mealRepeatDays)%len(options)]
}

// rotatedSelection scores a rotated pick so the plan reports why each meal
// fits its slot.
func rotatedSelection(meal catalog.MealOption, targetCalories int, slot Slot, culturalPref string) MealSelection {
	return MealSelection{
		Meal:      meal,
		Score:     scoreMeal(meal, targetCalories, slot, culturalPref),
		Reasoning: slotReasoning(slot, meal),
	}
}

// snacksForDay takes a two-snack window anchored at the day index, falling
// back to the first snack when the window would be empty.
func snacksForDay(options []catalog.MealOption, dayIndex int, targetCalories int) []MealSelection {
	start := dayIndex % len(options)
	end := min(start+snackWindow, len(options))

	window := options[start:end]
	if len(window) == 0 {
		window = options[:1]
	}

	snacks := make([]MealSelection, len(window))
	for i, option := range window {
		snacks[i] = MealSelection{
			Meal:      option,
			Score:     scoreSnack(option, targetCalories),
			Reasoning: "Healthy snack option to maintain energy",
		}
	}
	return snacks
}

// AlternativeMeals returns up to five other options for a slot, excluding
// the current meal by name, scored and sorted by descending score.
func AlternativeMeals(d catalog.Diet, slot Slot, currentMealName string, targetCalories int, culturalPref string) []MealSelection {
	var options []catalog.MealOption
	switch slot {
	case SlotBreakfast:
		options = d.BreakfastOptions
	case SlotLunch:
		options = d.LunchOptions
	default:
		options = d.DinnerOptions
	}

	var alternatives []MealSelection
	for _, option := range options {
		if option.Name == currentMealName {
			continue
		}
		alternatives = append(alternatives, MealSelection{
			Meal:  option,
			Score: scoreMeal(option, targetCalories, slot, culturalPref),
			Reasoning: fmt.Sprintf("Alternative %s option with %d kcal",
				slot, int(math.Round(option.Calories.Midpoint()))),
		})
	}
	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].Score > alternatives[j].Score
	})

	if len(alternatives) > alternativesLimit {
		alternatives = alternatives[:alternativesLimit]
	}
	return alternatives
}

// ValidateMealPlan sums a day's calorie ranges and flags the day invalid
// when the midpoint deviates from the daily target by more than the
// tolerance.
func ValidateMealPlan(day DayMeals, targetCalories int) Validation {
	total := catalog.Range{
		Min: day.Breakfast.Meal.Calories.Min + day.Lunch.Meal.Calories.Min + day.Dinner.Meal.Calories.Min,
		Max: day.Breakfast.Meal.Calories.Max + day.Lunch.Meal.Calories.Max + day.Dinner.Meal.Calories.Max,
	}
	for _, snack := range day.Snacks {
		total.Min += snack.Meal.Calories.Min
		total.Max += snack.Meal.Calories.Max
	}

	if targetCalories <= 0 {
		return Validation{IsValid: false, TotalCalories: total, DeviationPercent: 0}
	}

	deviationPercent := math.Abs(total.Midpoint()-float64(targetCalories)) / float64(targetCalories) * 100

	return Validation{
		IsValid:          deviationPercent <= validTolerancePercent,
		TotalCalories:    total,
		DeviationPercent: deviationPercent,
	}
}
