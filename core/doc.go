// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory road graph used by every
// routing algorithm in haripath.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Every edge is directed: a road From→To says nothing about To→From.
//   - Every edge carries a float64 weight (travel cost).
//   - At most one edge per ordered pair (from,to); the adjacency is the
//     classic map  from → to → weight.
//   - Self-loops are rejected unless the graph was built WithLoops().
//   - Adding an edge auto-creates both endpoints, so a destination with no
//     outgoing roads is still a first-class vertex.
//   - Edge IDs are generated atomically ("e1", "e2", …) in creation order.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert → muEdgeAdj.
//
// Determinism:
//
//   - Vertices() is sorted lexicographically.
//   - Neighbors(id) is sorted by target vertex ID.
//   - Edges() is sorted by creation order.
//
// Weights are stored as given. Negative weights are accepted by core; the
// algorithms that need non-negative weights (dijkstra) check for them, and
// astar documents them as a precondition.
//
// Errors:
//
//	ErrEmptyVertexID     - vertex ID is the empty string.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
//	ErrDuplicateEdge     - a second edge for the same (from,to) pair.
//	ErrBadWeight         - weight is NaN or infinite.
package core
