// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLocationsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the map's locations and their roads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, heading(w, e.m.Name()))

			g := e.m.Graph()
			for _, name := range e.m.Locations() {
				p, err := e.m.Coordinate(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-16s (%g, %g)\n", name, p.X(), p.Y())

				roads, err := g.Neighbors(name)
				if err != nil {
					return err
				}
				for _, r := range roads {
					fmt.Fprintf(w, "  → %-14s %g\n", r.To, r.Weight)
				}
			}
			return nil
		},
	}
}
