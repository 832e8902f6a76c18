// SPDX-License-Identifier: MIT

package townmap

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/haripath/astar"
	"github.com/katalvlaran/haripath/bfs"
	"github.com/katalvlaran/haripath/core"
	"github.com/katalvlaran/haripath/geo"
)

// Map is an immutable town map. The zero value is not usable; obtain one
// from Load, LoadFile or Haripur.
type Map struct {
	name   string
	graph  *core.Graph
	coords geo.Coordinates
	order  []string
	index  *geo.Index
}

// Road is one directed road of the map.
type Road struct {
	From, To string
	Cost     float64
}

// Name returns the map title.
func (m *Map) Name() string { return m.name }

// Graph returns a copy of the road graph.
func (m *Map) Graph() *core.Graph { return m.graph.Clone() }

// Coordinates returns a copy of every location's position.
func (m *Map) Coordinates() geo.Coordinates { return m.coords.Clone() }

// Locations returns location names in declaration order.
func (m *Map) Locations() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)

	return out
}

// Roads returns every road in declaration order.
func (m *Map) Roads() []Road {
	edges := m.graph.Edges()
	out := make([]Road, 0, len(edges))
	for _, e := range edges {
		out = append(out, Road{From: e.From, To: e.To, Cost: e.Weight})
	}

	return out
}

// Has reports whether name is a location of the map.
func (m *Map) Has(name string) bool { return m.graph.HasVertex(name) }

// Coordinate returns the position of name.
func (m *Map) Coordinate(name string) (orb.Point, error) {
	if !m.Has(name) {
		return orb.Point{}, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
	}

	return m.coords.Lookup(name)
}

// Bound returns the smallest box holding every location.
func (m *Map) Bound() orb.Bound { return m.coords.Bound() }

// Nearest returns the location closest to p.
func (m *Map) Nearest(p orb.Point) (string, bool) { return m.index.Nearest(p) }

// Within returns the locations inside b, sorted by name.
func (m *Map) Within(b orb.Bound) []string { return m.index.Within(b) }

// Reachable returns every location that can be driven to from name,
// following one-way roads, sorted by name. name itself is excluded.
func (m *Map) Reachable(name string) ([]string, error) {
	out, err := bfs.Reachable(m.graph, name)
	if errors.Is(err, bfs.ErrStartVertexNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
	}

	return out, err
}

// FindPath runs A* from start to goal over this map using h.
func (m *Map) FindPath(start, goal string, h geo.Heuristic, opts ...astar.Option) (astar.Result, error) {
	return astar.FindPath(m.graph, m.coords, h, start, goal, opts...)
}
