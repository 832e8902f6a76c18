// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/haripath/render"
	"github.com/katalvlaran/haripath/route"
)

func newRouteCmd(e *env) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Find the shortest route between two locations",
		Example: `  haripath route "Main Bazar" Ghazi
  haripath route "Haripur City" Hattar --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := e.planner(nil).Plan(args[0], args[1])

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(render.NewOutcomeJSON(o)); err != nil {
					return err
				}
			} else if err := printOutcome(w, o); err != nil {
				return err
			}

			if o.Kind != route.Found {
				return &outcomeError{o: o}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the outcome as JSON")

	return cmd
}
