// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order (numeric part of Edge.ID ascending).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates the directed edge from→to with the given weight and returns its ID.
//
// Steps:
//  1. Validate IDs, weight and loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a second edge for the same ordered pair.
//  4. Generate the edge ID atomically, store and link adjacency.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrDuplicateEdge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[from][to]; exists {
		return "", ErrDuplicateEdge
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.adjacency[from][to] = eid

	return eid, nil
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of the directed edge from→to.
//
// Errors:
//   - ErrEdgeNotFound: if the edge does not exist.
func (g *Graph) Weight(from, to string) (float64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return g.edges[eid].Weight, nil
}

// Edges returns all edges in creation order.
// The returned pointers are shared with the graph; treat them as read-only.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next textual edge ID. Caller holds muEdgeAdj.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq extracts the numeric sequence of an edge ID produced by nextEdgeID.
func edgeSeq(eid string) uint64 {
	n, err := strconv.ParseUint(eid[1:], 10, 64)
	if err != nil {
		return math.MaxUint64
	}

	return n
}
