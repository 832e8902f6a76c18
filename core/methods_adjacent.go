// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Outgoing-edge queries used by the search algorithms.
// Determinism:
//   - Neighbors(id) and NeighborIDs(id) are sorted by target vertex ID.

package core

import "sort"

// Neighbors returns the outgoing edges of id, sorted by target vertex ID.
//
// Implementation:
//   - Stage 1: Validate id and vertex presence under muVert.
//   - Stage 2: Snapshot the adjacency bucket under muEdgeAdj.
//   - Stage 3: Sort by Edge.To for reproducible expansion order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the out-degree of id.
//
// Notes:
//   - Edge objects are not copied; treat returned *Edge as immutable.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		if e := g.edges[eid]; e != nil {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// NeighborIDs returns the targets of the outgoing edges of id, sorted ascending.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors(id).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids, nil
}

// AdjacencyList returns a snapshot  from → sorted target IDs  for every vertex,
// including vertices without outgoing edges (empty slice).
//
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		targets := make([]string, 0, len(g.adjacency[id]))
		for to := range g.adjacency[id] {
			targets = append(targets, to)
		}
		sort.Strings(targets)
		out[id] = targets
	}

	return out
}
