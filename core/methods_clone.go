// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so edge IDs stay monotonic on the clone.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: configuration, vertices, edges and adjacency.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	clone.allowLoops = g.allowLoops
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID}
		clone.adjacency[id] = make(map[string]string, len(g.adjacency[id]))
	}
	for eid, e := range g.edges {
		cp := *e
		clone.edges[eid] = &cp
		clone.adjacency[e.From][e.To] = eid
	}

	return clone
}
