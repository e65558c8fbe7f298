// Package cli wires the planning engines into a cobra command tree. Every
// command reads a profile from flags and emits JSON on stdout.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/myrjola/planfit/internal/diet"
	"github.com/myrjola/planfit/internal/workout"
	"github.com/spf13/cobra"
)

// App holds the services CLI commands run against.
type App struct {
	Diet    *diet.Service
	Workout *workout.Service
	Logger  *slog.Logger
}

// NewApp creates an App with services backed by the built-in catalogs.
func NewApp(logger *slog.Logger) *App {
	return &App{
		Diet:    diet.NewService(logger),
		Workout: workout.NewService(logger),
		Logger:  logger,
	}
}

// NewRootCmd creates the top-level "planfit" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "planfit",
		Short:         "Deterministic diet and workout plan generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCaloriesCmd(app),
		newDietCmd(app),
		newMealsCmd(app),
		newWorkoutCmd(app),
		newOverloadCmd(app),
		newPlanCmd(app),
	)

	return root
}

// printJSON writes v to the command's stdout as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
