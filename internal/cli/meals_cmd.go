package cli

import (
	"github.com/myrjola/planfit/internal/diet"
	"github.com/spf13/cobra"
)

func newMealsCmd(app *App) *cobra.Command {
	var flags profileFlags
	var dietID string
	var week bool
	var alternativesFor string
	var slot string

	cmd := &cobra.Command{
		Use:   "meals",
		Short: "Plan meals for a diet",
		Long: `Plan meals for a diet. By default picks the best meal per slot for a
single day. With --week it builds a rotating seven-day plan, and with
--alternatives-for it lists swap candidates for a meal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			profile := flags.dietProfile()
			target := app.Diet.EstimateCalories(ctx, profile)

			if alternativesFor != "" {
				alternatives, err := app.Diet.AlternativeMeals(ctx, dietID, diet.Slot(slot), alternativesFor, target, flags.culturalPref)
				if err != nil {
					return err
				}
				return printJSON(cmd, alternatives)
			}

			if week {
				plan, err := app.Diet.PlanWeeklyMeals(ctx, dietID, target, flags.culturalPref)
				if err != nil {
					return err
				}
				return printJSON(cmd, plan)
			}

			meals, err := app.Diet.SelectDailyMeals(ctx, dietID, target, flags.culturalPref)
			if err != nil {
				return err
			}
			return printJSON(cmd, meals)
		},
	}

	flags.registerBodyFlags(cmd.Flags())
	flags.registerGoalFlags(cmd.Flags())
	flags.registerDietFlags(cmd.Flags())
	cmd.Flags().StringVar(&dietID, "diet", "mediterranean", "Diet ID to plan meals from")
	cmd.Flags().BoolVar(&week, "week", false, "Plan a full seven-day week")
	cmd.Flags().StringVar(&alternativesFor, "alternatives-for", "", "List alternatives for the named meal instead of planning")
	cmd.Flags().StringVar(&slot, "slot", "lunch", "Meal slot for --alternatives-for: breakfast, lunch or dinner")

	return cmd
}
