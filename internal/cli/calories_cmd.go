package cli

import (
	"github.com/spf13/cobra"
)

func newCaloriesCmd(app *App) *cobra.Command {
	var flags profileFlags

	cmd := &cobra.Command{
		Use:   "calories",
		Short: "Estimate the daily calorie target for a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			calories := app.Diet.EstimateCalories(cmd.Context(), flags.dietProfile())
			return printJSON(cmd, map[string]int{"daily_calories": calories})
		},
	}

	flags.registerBodyFlags(cmd.Flags())
	flags.registerGoalFlags(cmd.Flags())
	cmd.Flags().IntVar(&flags.targetCalories, "target-calories", 0, "Daily calorie target; 0 estimates it from the profile")

	return cmd
}
