// SPDX-License-Identifier: MIT
// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/haripath/core"
	"github.com/katalvlaran/haripath/dijkstra"
)

// ExampleDijkstra computes distances on a small one-way network and rebuilds
// one shortest route from the predecessor map.
func ExampleDijkstra() {
	g := core.NewGraph()
	_, _ = g.AddEdge("Haripur City", "Chongi", 5)
	_, _ = g.AddEdge("Chongi", "Kotnajibullah", 6)
	_, _ = g.AddEdge("Kotnajibullah", "Hattar", 7)
	_, _ = g.AddEdge("Haripur City", "Hattar", 15)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Haripur City"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[Hattar]=%.0f via %v\n", dist["Hattar"], dijkstra.PathTo(prev, "Haripur City", "Hattar"))
	// Output: dist[Hattar]=15 via [Haripur City Hattar]
}
