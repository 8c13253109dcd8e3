// Package main provides the CLI entrypoint for the exercises.
// It wires subcommands (duplicates, binary, parity, divide, serve), loads configuration, and initializes logging.
package main

import (
	"context"
	"drills/internal/config"
	"drills/internal/drill"
	"drills/pkg/logger"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const (
	// meterName scopes the instruments registered by the drill service.
	meterName = "drills"

	configFlag        = "config"
	defaultConfigPath = "config.yml"
)

// configPath returns the value of -c/--config wherever it appears in args,
// before or after the subcommand. Every other flag is ignored here and left
// for cobra to validate.
func configPath(args []string) string {
	fs := pflag.NewFlagSet("drills", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	path := fs.StringP(configFlag, "c", defaultConfigPath, "")
	_ = fs.Parse(args)

	return *path
}

// newService creates the drill service for the exercise commands on the global
// meter provider, which is a no-op by default.
func newService(ctx context.Context) drill.Service {
	svc, err := drill.New(otel.GetMeterProvider().Meter(meterName))
	if err != nil {
		logger.Fatal(ctx, "could not create drill service", zap.Error(err))
	}

	return svc
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:           "drills",
		Short:         "Integer exercises: duplicates, binary, parity, floor/ceil division",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath reads the same flag ahead of cobra; this definition keeps it
	// in the help output and stops cobra from rejecting it.
	rootCmd.PersistentFlags().StringP(configFlag, "c", defaultConfigPath, "Config File Path")

	cfg, err := config.Load(configPath(os.Args[1:]))
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not load config:", err) //nolint: forbidigo
		os.Exit(1)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "could not set up logger:", err) //nolint: forbidigo
		os.Exit(1)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		duplicatesCommand(cfg),
		binaryCommand(cfg),
		parityCommand(cfg),
		divideCommand(cfg),
		serveCommand(cfg),
	)

	err = rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err) //nolint: forbidigo
		logger.Debug(ctx, "command failed", zap.Error(err))
	}
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
