package main

import (
	"context"
	"drills/internal/config"
	"drills/internal/console"
	"drills/internal/drill"
	"os"

	"github.com/spf13/cobra"
)

// negativeHint is appended to commands taking signed operands, since a
// leading "-7" would otherwise be parsed as a flag.
const negativeHint = "\n\nPass negative operands after \"--\"; without arguments the operands are read from stdin."

type consoleRun func(c *console.Console, ctx context.Context, svc drill.Service, args []string) error

// exerciseCommand builds a subcommand that answers one exercise through the console.
func exerciseCommand(cfg *config.Config, use, short, long, example string, run consoleRun) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		Long:    short + "." + long,
		Example: example,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := console.New(os.Stdin, cmd.OutOrStdout(), !cfg.Console.Quiet)

			return run(c, ctx, newService(ctx), args)
		},
	}
}

func duplicatesCommand(cfg *config.Config) *cobra.Command {
	return exerciseCommand(cfg,
		"duplicates [n...]",
		"Reports whether a sequence of integers repeats any value",
		negativeHint,
		"  drills duplicates 1 2 3 1\n  drills duplicates -- -1 2 -1",
		(*console.Console).Duplicates)
}

func binaryCommand(cfg *config.Config) *cobra.Command {
	return exerciseCommand(cfg,
		"binary [n]",
		"Prints the binary representation of a non-negative integer",
		"\n\nWithout an argument the number is read from stdin.",
		"  drills binary 10",
		(*console.Console).Binary)
}

func parityCommand(cfg *config.Config) *cobra.Command {
	return exerciseCommand(cfg,
		"parity [n]",
		"Prints whether an integer is even or odd",
		negativeHint,
		"  drills parity 44\n  drills parity -- -3",
		(*console.Console).Parity)
}

func divideCommand(cfg *config.Config) *cobra.Command {
	return exerciseCommand(cfg,
		"divide [a b]",
		"Prints floor and ceiling of a divided by b",
		negativeHint,
		"  drills divide 7 3\n  drills divide -- 7 -3",
		(*console.Console).Divide)
}
