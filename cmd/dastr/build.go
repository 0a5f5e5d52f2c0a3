// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bordered/chords"
	"github.com/katalvlaran/bordered/dastructure"
)

// load reads and builds the structure described in path.
func (a *app) load(path string) (*dastructure.SimpleStructure, error) {
	doc, err := chords.LoadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("structure built",
		zap.String("file", path),
		zap.Int("generators", s.Len()),
		zap.Int("chords", len(doc.Chords)),
		zap.Int("entries", s.NumEntries()),
	)

	return s, nil
}

func (a *app) buildCmd() *cobra.Command {
	var mult []int
	cmd := &cobra.Command{
		Use:   "build FILE",
		Short: "Build a DA structure from a YAML chord description and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(args[0])
			if err != nil {
				return err
			}
			printStructure(cmd.OutOrStdout(), s, mult)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&mult, "mult", nil, "only print entries whose A-side multiplicity equals this profile")

	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Build a DA structure from a YAML chord description and verify it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(args[0])
			if err != nil {
				return err
			}
			if !a.report(cmd.OutOrStdout(), s) {
				return fmt.Errorf("%s: structure equation fails", args[0])
			}
			return nil
		},
	}
}
