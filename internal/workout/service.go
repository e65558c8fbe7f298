package workout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/myrjola/planfit/internal/catalog"
)

// Service handles the business logic for workout planning.
type Service struct {
	exercises []catalog.Exercise
	logger    *slog.Logger
}

// NewService creates a new workout service backed by the built-in exercise
// catalog.
func NewService(logger *slog.Logger) *Service {
	return &Service{
		exercises: catalog.Exercises(),
		logger:    logger,
	}
}

// GenerateWeeklyPlan builds a week of workouts for the profile.
func (s *Service) GenerateWeeklyPlan(ctx context.Context, p Profile) (WeeklyPlan, error) {
	plan, err := GenerateWeeklyPlan(s.exercises, p)
	if err != nil {
		return WeeklyPlan{}, fmt.Errorf("generate weekly plan: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "generated weekly workout plan",
		slog.Int("workout_days", p.WorkoutDays),
		slog.Int("workouts", len(plan.Workouts)),
		slog.Int("rest_days", len(plan.RestDays)))
	return plan, nil
}

// AlternativeExercises returns swap candidates for a catalog exercise.
func (s *Service) AlternativeExercises(_ context.Context, exerciseID string, p Profile, count int) ([]ExerciseSelection, error) {
	current, err := catalog.ExerciseByID(exerciseID)
	if err != nil {
		return nil, fmt.Errorf("look up exercise %q: %w", exerciseID, err)
	}
	return AlternativeExercises(s.exercises, current, p, count), nil
}

// ProgressiveOverload prescribes week-over-week progression for an exercise
// baseline.
func (s *Service) ProgressiveOverload(_ context.Context, weekNumber int, baseWeightKg float64, baseSets, baseReps int, goal string) Overload {
	return ProgressiveOverload(weekNumber, baseWeightKg, baseSets, baseReps, goal)
}
