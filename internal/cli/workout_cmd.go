package cli

import (
	"github.com/spf13/cobra"
)

func newWorkoutCmd(app *App) *cobra.Command {
	var flags profileFlags
	var alternativesFor string
	var alternativeCount int

	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Generate a weekly workout plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			profile := flags.workoutProfile()

			if alternativesFor != "" {
				alternatives, err := app.Workout.AlternativeExercises(ctx, alternativesFor, profile, alternativeCount)
				if err != nil {
					return err
				}
				return printJSON(cmd, alternatives)
			}

			plan, err := app.Workout.GenerateWeeklyPlan(ctx, profile)
			if err != nil {
				return err
			}
			return printJSON(cmd, plan)
		},
	}

	flags.registerGoalFlags(cmd.Flags())
	flags.registerWorkoutFlags(cmd.Flags())
	cmd.Flags().StringVar(&alternativesFor, "alternatives-for", "", "List substitutes for the given exercise ID instead of planning")
	cmd.Flags().IntVar(&alternativeCount, "count", 5, "Number of alternatives to list")

	return cmd
}
