// SPDX-License-Identifier: MIT

package astar

import (
	"container/heap"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/haripath/core"
	"github.com/katalvlaran/haripath/geo"
)

// FindPath returns a minimum-cost route from start to goal over the outgoing
// edges of g, using h on coords as the remaining-cost estimate.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. h must be non-nil (ErrNilHeuristic).
//  3. Options must be valid (ErrOptionViolation).
//  4. start and goal must be vertices of g (ErrInvalidNode).
//  5. start and goal must have coordinates (ErrMissingCoordinate).
//
// Not checked (caller responsibility): non-negative weights, admissible h.
//
// start == goal is accepted and yields the single-location path with cost 0.
// An unreachable goal yields Result{Found: false} and a nil error.
func FindPath(
	g *core.Graph,
	coords geo.Coordinates,
	h geo.Heuristic,
	start, goal string,
	opts ...Option,
) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if h == nil {
		return Result{}, ErrNilHeuristic
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	if !g.HasVertex(start) {
		return Result{}, fmt.Errorf("%w: start %q", ErrInvalidNode, start)
	}
	if !g.HasVertex(goal) {
		return Result{}, fmt.Errorf("%w: goal %q", ErrInvalidNode, goal)
	}

	goalAt, ok := coords[goal]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrMissingCoordinate, goal)
	}
	startAt, ok := coords[start]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrMissingCoordinate, start)
	}

	s := &search{
		g:         g,
		coords:    coords,
		h:         h,
		goal:      goal,
		goalAt:    goalAt,
		options:   cfg,
		finalized: make(map[string]float64),
	}
	heap.Init(&s.frontier)
	s.push(h(startAt, goalAt), 0, start, []string{start})

	return s.run()
}

// search holds the mutable state of a single FindPath execution.
type search struct {
	g       *core.Graph
	coords  geo.Coordinates
	h       geo.Heuristic
	goal    string
	goalAt  orb.Point
	options Options

	frontier  frontier
	finalized map[string]float64 // location → cost at which it was expanded
	seq       uint64
	result    Result
}

// run pops entries until the goal is reached or the frontier is exhausted.
func (s *search) run() (Result, error) {
	for s.frontier.Len() > 0 {
		item := heap.Pop(&s.frontier).(*entry)

		if item.node == s.goal {
			s.result.Found = true
			s.result.Path = Path{Nodes: item.path, Cost: item.cost}
			return s.result, nil
		}

		// Stale or dominated duplicate.
		if best, seen := s.finalized[item.node]; seen && best <= item.cost {
			continue
		}

		if s.options.MaxExpansions > 0 && s.result.Expanded >= s.options.MaxExpansions {
			return s.result, fmt.Errorf("%w: %d", ErrExpansionLimit, s.options.MaxExpansions)
		}
		s.finalized[item.node] = item.cost
		s.result.Expanded++
		s.options.OnExpand(item.node, item.cost)

		if err := s.expand(item); err != nil {
			return s.result, err
		}
	}

	return s.result, nil
}

// expand pushes one frontier entry per outgoing edge of item.node.
func (s *search) expand(item *entry) error {
	edges, err := s.g.Neighbors(item.node)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %q: %w", item.node, err)
	}

	for _, e := range edges {
		at, ok := s.coords[e.To]
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingCoordinate, e.To)
		}
		cost := item.cost + e.Weight

		path := make([]string, len(item.path)+1)
		copy(path, item.path)
		path[len(item.path)] = e.To

		s.push(cost+s.h(at, s.goalAt), cost, e.To, path)
	}

	return nil
}

func (s *search) push(priority, cost float64, node string, path []string) {
	s.seq++
	heap.Push(&s.frontier, &entry{priority: priority, cost: cost, node: node, path: path, seq: s.seq})
	s.result.Pushed++
	s.options.OnPush(node, priority)
}

// entry is one candidate partial route on the frontier.
type entry struct {
	priority float64  // cost + heuristic to goal
	cost     float64  // cost so far
	node     string   // last location of path
	path     []string // route from start to node inclusive
	seq      uint64   // insertion order
}

// frontier is a min-heap of *entry. Ordering: priority, cost, node, path, seq.
type frontier []*entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	a, b := f[i], f[j]
	switch {
	case a.priority != b.priority:
		return a.priority < b.priority
	case a.cost != b.cost:
		return a.cost < b.cost
	case a.node != b.node:
		return a.node < b.node
	}
	if c := comparePaths(a.path, b.path); c != 0 {
		return c < 0
	}

	return a.seq < b.seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*entry)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}

// comparePaths orders routes lexicographically, shorter prefix first.
func comparePaths(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}
