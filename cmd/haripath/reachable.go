// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReachableCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "reachable LOCATION",
		Short: "List every location that can be driven to from LOCATION",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := e.m.Reachable(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintf(w, "No location is reachable from %s.\n", args[0])
				return nil
			}
			for _, n := range names {
				fmt.Fprintln(w, n)
			}
			return nil
		},
	}
}
