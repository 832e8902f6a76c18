// SPDX-License-Identifier: MIT

// Package dijkstra computes exact single-source shortest distances over the
// directed, float64-weighted core.Graph.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source location to
//     every location reachable through outgoing edges, in O((V + E) log V).
//   - A min-heap with lazy decrease-key drives the expansion; stale heap
//     entries are skipped on pop.
//   - Unreachable locations get math.Inf(1).
//
// Role in haripath:
//
//   - It is the ground truth A* is measured against: astar tests assert that
//     every A* route costs exactly what Dijkstra reports.
//   - townmap.Map.Audit uses the true distances to check that a heuristic
//     never overestimates.
//
// Options:
//
//	– Source(id):                 required, the starting location.
//	– WithReturnPath():           also return the predecessor map.
//	– WithMaxDistance(x):         do not settle locations farther than x (x ≥ 0).
//	– WithInfEdgeThreshold(t):    treat edges with weight ≥ t as impassable (t > 0).
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     Source was not given.
//   - ErrNilGraph:        the graph pointer is nil.
//   - ErrVertexNotFound:  the source is not a vertex of the graph.
//   - ErrNegativeWeight:  some edge has a negative weight (O(E) pre-scan).
//   - ErrBadMaxDistance:  (panic) WithMaxDistance received a negative value.
//   - ErrBadInfThreshold: (panic) WithInfEdgeThreshold received a value ≤ 0.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Main Bazar"), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist["Ghazi"], dijkstra.PathTo(prev, "Main Bazar", "Ghazi"))
package dijkstra
