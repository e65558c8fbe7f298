package cli

import (
	"github.com/spf13/cobra"
)

func newOverloadCmd(app *App) *cobra.Command {
	var week int
	var weight float64
	var sets int
	var reps int
	var goal string

	cmd := &cobra.Command{
		Use:   "overload",
		Short: "Prescribe progressive overload for a training week",
		RunE: func(cmd *cobra.Command, args []string) error {
			overload := app.Workout.ProgressiveOverload(cmd.Context(), week, weight, sets, reps, goal)
			return printJSON(cmd, overload)
		},
	}

	cmd.Flags().IntVar(&week, "week", 1, "Training week number")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Baseline working weight in kilograms")
	cmd.Flags().IntVar(&sets, "sets", 3, "Baseline sets")
	cmd.Flags().IntVar(&reps, "reps", 12, "Baseline reps")
	cmd.Flags().StringVar(&goal, "goal", "health", "Training goal: strength, muscle_gain or other")

	return cmd
}
