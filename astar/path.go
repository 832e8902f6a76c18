// SPDX-License-Identifier: MIT

package astar

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/haripath/core"
)

// pathSeparator joins location names when a Path is printed.
const pathSeparator = " → "

// Path is an ordered route from start to goal inclusive.
// Each consecutive pair is an edge of the graph it was found in.
type Path struct {
	Nodes []string
	Cost  float64
}

// Step is one leg of a Path.
type Step struct {
	From, To string
}

// Len returns the number of locations on the path.
func (p Path) Len() int { return len(p.Nodes) }

// Start returns the first location, or "" for an empty path.
func (p Path) Start() string {
	if len(p.Nodes) == 0 {
		return ""
	}

	return p.Nodes[0]
}

// Goal returns the last location, or "" for an empty path.
func (p Path) Goal() string {
	if len(p.Nodes) == 0 {
		return ""
	}

	return p.Nodes[len(p.Nodes)-1]
}

// Steps returns the consecutive pairs of the path in travel order.
func (p Path) Steps() []Step {
	if len(p.Nodes) < 2 {
		return nil
	}
	steps := make([]Step, len(p.Nodes)-1)
	for i := 1; i < len(p.Nodes); i++ {
		steps[i-1] = Step{From: p.Nodes[i-1], To: p.Nodes[i]}
	}

	return steps
}

// Contains reports whether u and v are consecutive on the path in either
// order. Renderers use it to highlight travelled roads on an undirected drawing.
func (p Path) Contains(u, v string) bool {
	for _, s := range p.Steps() {
		if (s.From == u && s.To == v) || (s.From == v && s.To == u) {
			return true
		}
	}

	return false
}

// String joins the location names with " → ".
func (p Path) String() string {
	return strings.Join(p.Nodes, pathSeparator)
}

// Validate checks that every step is an edge of g and that Cost equals the
// sum of those edge weights.
func (p Path) Validate(g *core.Graph) error {
	if len(p.Nodes) == 0 {
		return fmt.Errorf("astar: empty path")
	}
	if !g.HasVertex(p.Nodes[0]) {
		return fmt.Errorf("%w: %q", ErrInvalidNode, p.Nodes[0])
	}
	total := 0.0
	for _, s := range p.Steps() {
		w, err := g.Weight(s.From, s.To)
		if err != nil {
			return fmt.Errorf("astar: step %s→%s: %w", s.From, s.To, err)
		}
		total += w
	}
	if total != p.Cost {
		return fmt.Errorf("astar: path cost %v does not match edge sum %v", p.Cost, total)
	}

	return nil
}
