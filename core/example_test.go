// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/haripath/core"
)

// ExampleGraph_Neighbors builds a tiny one-way road network and lists the
// roads leaving one junction.
func ExampleGraph_Neighbors() {
	g := core.NewGraph()
	_, _ = g.AddEdge("Haripur City", "TIP University", 8)
	_, _ = g.AddEdge("Haripur City", "Chongi", 5)
	_, _ = g.AddEdge("Chongi", "Kotnajibullah", 6)

	edges, err := g.Neighbors("Haripur City")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range edges {
		fmt.Printf("%s -> %s (%.0f)\n", e.From, e.To, e.Weight)
	}
	// Output:
	// Haripur City -> Chongi (5)
	// Haripur City -> TIP University (8)
}
