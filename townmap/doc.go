// SPDX-License-Identifier: MIT

// Package townmap holds a town's road map as one immutable value.
//
// A Map bundles the directed road graph, the planar coordinate of every
// location, and the order in which locations were declared. It is built
// once, by Load, LoadFile or Haripur, and only read afterwards; callers pass
// it explicitly to whatever needs it instead of sharing package state.
//
// Map files are YAML:
//
//	name: Haripur
//	locations:
//	  - name: Main Bazar
//	    at: [-1, 0]
//	    roads:
//	      - {to: Haripur City, cost: 2}
//
// Every road is one-way. A location may have no roads; it is still a valid
// destination. Loading reports every problem in the file at once through a
// *ValidationError rather than stopping at the first.
//
// Audit checks a heuristic against the true road distances of the map. The
// search itself never does this.
package townmap
