// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bordered/dastructure"
	"github.com/katalvlaran/bordered/pmc"
)

func (a *app) identityCmd() *cobra.Command {
	var (
		genus     int
		antipodal bool
		multOne   bool
		mult      []int
	)
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Print the identity DA structure of a strand algebra and check it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if genus < 1 {
				return fmt.Errorf("genus must be positive, got %d", genus)
			}
			circle := pmc.NewSplit
			if antipodal {
				circle = pmc.NewAntipodal
			}
			z, err := circle(genus)
			if err != nil {
				return err
			}
			var opts []pmc.Option
			if multOne {
				opts = append(opts, pmc.WithMultOne())
			}
			alg := pmc.NewAlgebra(z, opts...)
			a.logger.Debug("algebra ready", zap.Stringer("pmc", z), zap.Int("generators", len(alg.Generators())))

			s := dastructure.IdentityDA(alg)
			out := cmd.OutOrStdout()
			printStructure(out, s, mult)
			if !a.report(out, s) {
				return fmt.Errorf("identity structure of %s fails the structure equation", z)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&genus, "genus", 1, "genus of the pointed matched circle")
	cmd.Flags().BoolVar(&antipodal, "antipodal", false, "use the antipodal matching instead of the split one")
	cmd.Flags().BoolVar(&multOne, "mult-one", false, "restrict to multiplicity-one elements")
	cmd.Flags().IntSliceVar(&mult, "mult", nil, "only print entries whose A-side multiplicity equals this profile")

	return cmd
}
