// SPDX-License-Identifier: MIT

// Package haripath finds shortest routes across a small, hand-authored town
// map using A* search guided by straight-line distance.
//
// Packages:
//
//   - core      directed, weighted road graph
//   - geo       coordinates, heuristics and an R-tree location index
//   - astar     FindPath, the A* search itself
//   - dijkstra  exact single-source distances (reference and audit)
//   - bfs       reachability over one-way roads
//   - townmap   the immutable map value, its YAML loader and heuristic audit
//   - route     turns a query into a presentable outcome
//   - render    text, DOT, GeoJSON and PNG diagrams
//
// The haripath command (cmd/haripath) wraps all of it in a CLI and an HTTP
// server.
//
// Quick start:
//
//	m := townmap.Haripur()
//	res, err := m.FindPath("Main Bazar", "Ghazi", geo.Euclidean)
//	if err != nil {
//		return err
//	}
//	if res.Found {
//		fmt.Println(res.Path, res.Path.Cost) // Main Bazar → … → Ghazi 32
//	}
package haripath
