// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between the same ordered pair.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be a finite number")
)

// Vertex represents a location in the graph.
type Vertex struct {
	// ID is the unique identifier (location name) of this Vertex.
	ID string
}

// Edge is a directed, weighted road From→To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the travel cost of the road.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory road graph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// nextEdgeID is an atomic counter for Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	allowLoops bool // allow self-loops

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[from][to] = edge ID
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// By default loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}
