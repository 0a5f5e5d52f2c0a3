// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bordered/dastructure"
	"github.com/katalvlaran/bordered/internal/logging"
)

// app holds state shared by the subcommands of one invocation.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNop()}
	root := &cobra.Command{
		Use:   "dastr",
		Short: "Build and verify type DA structures",
		Long: `dastr builds type DA structures over strand algebras of pointed matched
circles, either as identity bimodules or from chord descriptions, and checks
the type DA structure equation through the associated type DD structure.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.identityCmd(), a.buildCmd(), a.checkCmd())

	return root
}

// printStructure writes the table, filtered by multiplicity when mult is set.
func printStructure(w io.Writer, s *dastructure.SimpleStructure, mult []int) {
	if len(mult) > 0 {
		fmt.Fprint(w, s.StringWithMultA(mult))
		return
	}
	fmt.Fprint(w, s)
}

// report prints the verdict and the violating terms, and logs the outcome.
func (a *app) report(w io.Writer, s *dastructure.SimpleStructure) bool {
	violations := s.Violations()
	ok := len(violations) == 0
	a.logger.Info("structure equation checked",
		zap.Int("generators", s.Len()),
		zap.Int("entries", s.NumEntries()),
		zap.Int("violations", len(violations)),
		zap.Bool("ok", ok),
	)
	if ok {
		fmt.Fprintln(w, "Structure equation holds.")
		return true
	}
	fmt.Fprintf(w, "Structure equation fails (%d terms):\n", len(violations))
	for _, v := range violations {
		fmt.Fprintln(w, " ", v)
	}

	return false
}
