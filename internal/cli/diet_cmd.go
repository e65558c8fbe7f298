package cli

import (
	"github.com/spf13/cobra"
)

func newDietCmd(app *App) *cobra.Command {
	var flags profileFlags

	cmd := &cobra.Command{
		Use:   "diet",
		Short: "Select the best-fitting diet for a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Diet.SelectDiet(cmd.Context(), flags.dietProfile())
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}

	flags.registerGoalFlags(cmd.Flags())
	flags.registerDietFlags(cmd.Flags())

	return cmd
}
