// Package commands holds the cobra command tree of the lvmetric CLI.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

const defaultLogLevel = "warn"

// app carries state shared by every subcommand.
type app struct {
	logLevel string
	logger   *slog.Logger
}

// NewRootCmd creates the lvmetric root command and its subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.DiscardHandler)}

	cmd := &cobra.Command{
		Use:   "lvmetric",
		Short: "Weighted distances and nearest-neighbour search",
		Long: `lvmetric evaluates Mahalanobis, Euclidean and Manhattan distances
between vectors and ranks points by distance from a query.

Vectors are comma-separated numbers ("1,2.5,-3"). Matrices list their rows
separated by semicolons ("1,0;0,1").

Examples:
  lvmetric distance --a 0,0 --b 3,4 --root
  lvmetric distance --a 0,0 --b 1,1 --weights "4,0;0,1"
  lvmetric knn --query 0,0 --points "1,1;3,4;0,1" --k 2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := parseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", defaultLogLevel, "Log level: debug, info, warn or error")

	cmd.AddCommand(newDistanceCmd(a))
	cmd.AddCommand(newKnnCmd(a))

	return cmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("--log-level %q: %w", s, err)
	}

	return lvl, nil
}
