// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/haripath/geo"
	"github.com/katalvlaran/haripath/internal/logging"
	"github.com/katalvlaran/haripath/route"
	"github.com/katalvlaran/haripath/townmap"
)

// env is the state shared by every subcommand, filled in before each run.
type env struct {
	mapPath   string
	logLevel  string
	heuristic string

	m   *townmap.Map
	h   geo.Heuristic
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "haripath",
		Short: "Shortest routes across a town map",
		Long: `haripath finds the cheapest route between two locations of a town map
using A* search guided by straight-line distance. The built-in map is Haripur;
use --map to load another one from YAML.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return e.setup() },
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().StringVar(&e.mapPath, "map", "", "YAML map file (default: built-in Haripur map)")
	root.PersistentFlags().StringVar(&e.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&e.heuristic, "heuristic", "euclidean",
		"A* heuristic: "+strings.Join(geo.HeuristicNames(), ", "))

	root.AddCommand(
		newRouteCmd(e),
		newLocationsCmd(e),
		newReachableCmd(e),
		newNearestCmd(e),
		newCheckCmd(e),
		newRenderCmd(e),
		newServeCmd(e),
	)

	return root
}

func (e *env) setup() error {
	level, err := logging.ParseLevel(e.logLevel)
	if err != nil {
		return err
	}
	e.log = logging.New(level)

	if e.h, err = geo.HeuristicByName(e.heuristic); err != nil {
		return err
	}

	if e.mapPath == "" {
		e.m = townmap.Haripur()
	} else if e.m, err = townmap.LoadFile(e.mapPath); err != nil {
		return err
	}
	e.log.Debug("map loaded", "name", e.m.Name(), "locations", len(e.m.Locations()), "heuristic", e.heuristic)

	return nil
}

func (e *env) planner(obs route.Observer) *route.Planner {
	return &route.Planner{Map: e.m, Heuristic: e.h, Logger: e.log, Observer: obs}
}

// outcomeError reports a query that was answered but not with a route.
// The outcome has already been printed.
type outcomeError struct {
	o route.Outcome
}

func (e *outcomeError) Error() string {
	return fmt.Sprintf("%s: %s", e.o.Kind, e.o.Message)
}
