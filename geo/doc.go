// SPDX-License-Identifier: MIT

// Package geo holds the planar side of routing: per-location coordinates,
// straight-line heuristics for A*, and an R-tree index for "which location
// is closest to this point" lookups.
//
// Coordinates are plain orb.Point values on a flat plane; distances are
// Euclidean (planar.Distance). Nothing here knows about roads or weights.
//
// Heuristics:
//
//   - Euclidean  – straight-line distance; admissible whenever every road
//     costs at least its straight-line length.
//   - Manhattan  – |dx|+|dy|; admissible only on grid-like maps.
//   - Zero       – always 0; turns A* into Dijkstra.
//   - Scaled(h,k) – k·h, for maps whose costs are in different units than
//     their coordinates.
//
// Admissibility is never checked here; see townmap.Map.Audit.
package geo
