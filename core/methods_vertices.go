// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertex/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically.
// Concurrency:
//   - Catalog mutations under muVert write lock; adjacency bootstrap under muEdgeAdj.

package core

import "sort"

// AddVertex inserts a vertex with the given ID. Adding an existing ID is a no-op.
//
// Implementation:
//   - Stage 1: Reject empty IDs.
//   - Stage 2: Register in the vertex catalog under muVert.
//   - Stage 3: Bootstrap an empty adjacency bucket under muEdgeAdj.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
//
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex record for id.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertex IDs sorted lexicographically.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// OutDegree returns the number of outgoing edges of id.
//
// Errors:
//   - ErrEmptyVertexID / ErrVertexNotFound as for Vertex.
func (g *Graph) OutDegree(id string) (int, error) {
	if _, err := g.Vertex(id); err != nil {
		return 0, err
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}
