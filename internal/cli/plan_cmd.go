package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/myrjola/planfit/internal/diet"
	"github.com/myrjola/planfit/internal/workout"
	"github.com/spf13/cobra"
)

// FitnessPlan is the complete plan document the plan command emits: the
// selected diet, a week of meals, a week of workouts, and the reasoning that
// led to each.
type FitnessPlan struct {
	PlanID           string               `json:"plan_id"`
	TargetCalories   int                  `json:"target_calories"`
	Diet             diet.SelectionResult `json:"diet"`
	WeeklyMeals      []diet.DayMeals      `json:"weekly_meals"`
	Workout          workout.WeeklyPlan   `json:"workout"`
	WeeklyStructure  []string             `json:"weekly_structure"`
	CalorieReasoning string               `json:"calorie_reasoning"`
}

func newPlanCmd(app *App) *cobra.Command {
	var flags profileFlags

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a complete fitness plan: diet, meals, and workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			dietProfile := flags.dietProfile()

			target := app.Diet.EstimateCalories(ctx, dietProfile)

			selection, err := app.Diet.SelectDiet(ctx, dietProfile)
			if err != nil {
				return err
			}

			weeklyMeals, err := app.Diet.PlanWeeklyMeals(ctx, selection.Diet.ID, target, flags.culturalPref)
			if err != nil {
				return err
			}

			workoutPlan, err := app.Workout.GenerateWeeklyPlan(ctx, flags.workoutProfile())
			if err != nil {
				return err
			}

			structure := make([]string, len(workoutPlan.Workouts))
			for i, w := range workoutPlan.Workouts {
				structure[i] = w.Day
			}

			return printJSON(cmd, FitnessPlan{
				PlanID:          uuid.New().String(),
				TargetCalories:  target,
				Diet:            selection,
				WeeklyMeals:     weeklyMeals,
				Workout:         workoutPlan,
				WeeklyStructure: structure,
				CalorieReasoning: fmt.Sprintf(
					"Based on your profile, we calculated %d calories/day to support your %s goal.",
					target, flags.primaryGoal),
			})
		},
	}

	flags.registerBodyFlags(cmd.Flags())
	flags.registerGoalFlags(cmd.Flags())
	flags.registerDietFlags(cmd.Flags())
	flags.registerWorkoutFlags(cmd.Flags())

	return cmd
}
