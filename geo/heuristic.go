// SPDX-License-Identifier: MIT

package geo

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrUnknownHeuristic indicates a heuristic name not present in the registry.
var ErrUnknownHeuristic = errors.New("geo: unknown heuristic")

// Heuristic estimates the remaining cost between two positions.
// For A* to return optimal paths it must never overestimate.
type Heuristic func(from, to orb.Point) float64

// Euclidean is the straight-line distance between a and b.
func Euclidean(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// Manhattan is the L1 distance between a and b.
func Manhattan(a, b orb.Point) float64 {
	return math.Abs(a.X()-b.X()) + math.Abs(a.Y()-b.Y())
}

// Zero ignores both positions.
func Zero(_, _ orb.Point) float64 {
	return 0
}

// Scaled multiplies h by k. k must be non-negative; a negative k panics.
func Scaled(h Heuristic, k float64) Heuristic {
	if k < 0 || math.IsNaN(k) {
		panic("geo: Scaled factor must be non-negative")
	}

	return func(a, b orb.Point) float64 { return k * h(a, b) }
}

// heuristics is the name → Heuristic registry used by CLI flags and HTTP queries.
var heuristics = map[string]Heuristic{
	"euclidean": Euclidean,
	"manhattan": Manhattan,
	"zero":      Zero,
}

// HeuristicByName resolves a registered heuristic (case-insensitive).
func HeuristicByName(name string) (Heuristic, error) {
	h, ok := heuristics[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownHeuristic, name, strings.Join(HeuristicNames(), ", "))
	}

	return h, nil
}

// HeuristicNames lists registered heuristic names, sorted.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for n := range heuristics {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
