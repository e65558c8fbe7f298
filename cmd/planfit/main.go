package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/myrjola/planfit/internal/cli"
	"github.com/myrjola/planfit/internal/envstruct"
	"github.com/myrjola/planfit/internal/logging"
)

type config struct {
	// LogLevel sets the minimum level for log output: debug, info, warn or error.
	LogLevel string `env:"PLANFIT_LOG_LEVEL" envDefault:"info"`
}

func run(ctx context.Context, logger *slog.Logger, args []string) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	app := cli.NewApp(logger)
	root := cli.NewRootCmd(app)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("execute command: %w", err)
	}
	return nil
}

// logLevel parses the configured level, defaulting to info.
func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	ctx := context.Background()

	var cfg config
	if err := envstruct.Populate(&cfg, os.LookupEnv); err != nil {
		fmt.Fprintln(os.Stderr, "populate config:", err)
		os.Exit(1)
	}

	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource:   false,
		Level:       logLevel(cfg.LogLevel),
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)

	if err := run(ctx, logger, os.Args[1:]); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
