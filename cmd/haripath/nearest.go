// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"
)

func newNearestCmd(e *env) *cobra.Command {
	var x, y float64

	cmd := &cobra.Command{
		Use:   "nearest --x X --y Y",
		Short: "Name the location closest to a point",
		Example: `  haripath nearest --x 0.9 --y -1.2
  haripath nearest --x=-1 --y=0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, ok := e.m.Nearest(orb.Point{x, y})
			if !ok {
				return fmt.Errorf("map %q has no locations", e.m.Name())
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "x coordinate of the point")
	cmd.Flags().Float64Var(&y, "y", 0, "y coordinate of the point")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}
