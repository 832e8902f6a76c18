// SPDX-License-Identifier: MIT

// Package render draws a town map and, optionally, a route across it.
//
// Diagrams are undirected: two one-way roads between the same pair of
// locations collapse into one segment, labeled with the cost of whichever
// road was declared last. A segment is highlighted when its endpoints are
// consecutive stops of the route.
//
// Formats: plain text (outcomes only), Graphviz DOT, GeoJSON and PNG.
package render
