// SPDX-License-Identifier: MIT

// Package route turns a pair of location names into a user-facing outcome.
//
// The Planner applies the presentation policy on top of astar:
//
//	start == goal        → SameLocation     "Warning"
//	unknown start/goal   → InvalidLocation  "Error"
//	no route             → NoPath           "No Path"
//	route found          → Found            "Path Found", names joined by " → "
//
// Checks run in that order. Rejecting start == goal is policy only: the
// search itself answers it with a one-location route.
package route
