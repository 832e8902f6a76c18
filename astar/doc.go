// SPDX-License-Identifier: MIT

// Package astar finds a minimum-cost route between two locations of a
// core.Graph using A* search guided by a geo.Heuristic.
//
// Overview:
//
//   - The frontier is a min-heap of partial routes ordered by
//     estimated total cost  f = g + h(node, goal).
//   - A popped route that ends at the goal is returned immediately.
//   - A "finalized" map records the lowest cost at which each location was
//     expanded; popped entries that are no better are stale and dropped
//     (lazy decrease-key, the same strategy the dijkstra package uses).
//   - Only outgoing edges are followed; the graph need not be symmetric.
//
// Optimality:
//
//	The returned path is cost-optimal provided every edge weight is
//	non-negative and the heuristic never overestimates the remaining cost.
//	Neither precondition is checked at search time: both are documented
//	caller responsibilities (townmap.Map.Audit can verify a map offline).
//
// Determinism:
//
//	Entries with equal estimated total are ordered by cost so far, then by
//	location ID, then by the route itself (lexicographically), then by
//	insertion order. Repeating a query always yields the same route.
//
// Outcomes:
//
//   - Found:     Result.Found == true, Result.Path holds the route.
//   - Not found: Result.Found == false and err == nil. An unreachable goal
//     is a normal answer, not a failure; Result.Err() converts it to
//     ErrNotFound for callers that prefer an error value.
//   - Invalid:   err wraps ErrInvalidNode when start or goal is not a
//     vertex of the graph. No search is attempted.
//
// Complexity:
//
//   - Time:  O((V + E) log E) with a consistent heuristic.
//   - Space: O(E · L) where L is the longest partial route, since every
//     frontier entry carries its own route.
//
// Concurrency:
//
//	FindPath allocates its frontier and finalized map per call and only
//	reads the graph and coordinates, so independent calls may run in
//	parallel on the same inputs.
package astar
