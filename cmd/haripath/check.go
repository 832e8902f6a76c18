// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the map and audit the heuristic against true distances",
		Long: `check loads the map (reporting every problem in the file) and then
compares the chosen --heuristic with the true road distances. An
overestimating heuristic can make A* return a longer route.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := e.m.Audit(e.h)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %d locations, %d roads\n", e.m.Name(), len(e.m.Locations()), len(e.m.Roads()))
			fmt.Fprintf(w, "heuristic %s: %d reachable pairs checked\n", e.heuristic, rep.Pairs)
			if rep.OK() {
				fmt.Fprintln(w, "ok")
				return nil
			}
			for _, f := range rep.Findings {
				fmt.Fprintln(w, f)
			}
			return fmt.Errorf("heuristic %s: %d findings", e.heuristic, len(rep.Findings))
		},
	}
}
