// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over the outgoing roads of a
// core.Graph, returning hop counts, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a BFSResult with Order (visit sequence), Depth (hops from
//     start) and Parent (predecessor in the BFS tree).
//   - Reachable flattens that into a sorted list of destinations.
//   - OnVisit observes each vertex and may abort the walk with an error.
//   - WithFilterNeighbor skips individual roads; MaxDepth limits hop count.
//   - WithContext allows cancellation between visits.
//
// Weights are ignored: BFS answers "can I get there at all", which is what
// townmap uses to list the destinations reachable from a location before
// asking A* for the cheapest route.
//
// Determinism
//
//	core.Graph.NeighborIDs is sorted by target ID, so the visit sequence is
//	fully reproducible.
//
// Complexity
//
//	Time O(V + E log d) (neighbor lists are sorted), Space O(V).
package bfs
