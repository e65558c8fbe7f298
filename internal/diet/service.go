package diet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/myrjola/planfit/internal/catalog"
)

// Service handles the business logic for diet and meal planning.
type Service struct {
	diets  []catalog.Diet
	logger *slog.Logger
}

// NewService creates a new diet service backed by the built-in diet catalog.
func NewService(logger *slog.Logger) *Service {
	return &Service{
		diets:  catalog.Diets(),
		logger: logger,
	}
}

// EstimateCalories computes the daily calorie target for a profile. An
// explicit TargetCalories on the profile takes precedence over the estimate.
func (s *Service) EstimateCalories(ctx context.Context, p Profile) int {
	if p.TargetCalories > 0 {
		return p.TargetCalories
	}
	calories := EstimateDailyCalories(p)
	s.logger.LogAttrs(ctx, slog.LevelDebug, "estimated daily calories",
		slog.Int("calories", calories),
		slog.String("goal", p.PrimaryGoal),
		slog.String("fitness_level", p.FitnessLevel))
	return calories
}

// SelectDiet scores every catalog diet against the profile and returns the
// best match.
func (s *Service) SelectDiet(ctx context.Context, p Profile) (SelectionResult, error) {
	result, err := SelectDiet(s.diets, p)
	if err != nil {
		return SelectionResult{}, fmt.Errorf("select diet: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "selected diet",
		slog.String("diet_id", result.Diet.ID),
		slog.Float64("score", result.Score))
	return result, nil
}

// DietByID looks up a catalog diet.
func (s *Service) DietByID(_ context.Context, id string) (catalog.Diet, error) {
	d, err := catalog.DietByID(id)
	if err != nil {
		return catalog.Diet{}, fmt.Errorf("look up diet %q: %w", id, err)
	}
	return d, nil
}

// SelectDailyMeals picks the best meal per slot plus snacks for one day.
func (s *Service) SelectDailyMeals(ctx context.Context, dietID string, targetCalories int, culturalPref string) (DailyMeals, error) {
	d, err := s.DietByID(ctx, dietID)
	if err != nil {
		return DailyMeals{}, err
	}
	meals, err := SelectDailyMeals(d, targetCalories, culturalPref)
	if err != nil {
		return DailyMeals{}, fmt.Errorf("select daily meals: %w", err)
	}
	return meals, nil
}

// PlanWeeklyMeals produces seven days of meal assignments for a diet.
func (s *Service) PlanWeeklyMeals(ctx context.Context, dietID string, targetCalories int, culturalPref string) ([]DayMeals, error) {
	d, err := s.DietByID(ctx, dietID)
	if err != nil {
		return nil, err
	}
	week, err := PlanWeeklyMeals(d, targetCalories, culturalPref)
	if err != nil {
		return nil, fmt.Errorf("plan weekly meals: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "planned weekly meals",
		slog.String("diet_id", d.ID),
		slog.Int("target_calories", targetCalories))
	return week, nil
}

// AlternativeMeals returns swap candidates for a meal slot.
func (s *Service) AlternativeMeals(ctx context.Context, dietID string, slot Slot, currentMealName string, targetCalories int, culturalPref string) ([]MealSelection, error) {
	d, err := s.DietByID(ctx, dietID)
	if err != nil {
		return nil, err
	}
	return AlternativeMeals(d, slot, currentMealName, targetCalories, culturalPref), nil
}
