// SPDX-License-Identifier: MIT
// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, one-way road handling, MaxDistance,
// InfEdgeThreshold and predecessor reconstruction.
package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/haripath/core"
	"github.com/katalvlaran/haripath/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	g := core.NewGraph()
	_, _, err := dijkstra.Dijkstra(g)
	if err != dijkstra.ErrEmptySource {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph when graph is nil, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph()
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	if err != dijkstra.ErrVertexNotFound {
		t.Fatalf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", -5)
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

func TestDijkstra_BadOptionsPanic(t *testing.T) {
	for name, opt := range map[string]func() dijkstra.Option{
		"max distance": func() dijkstra.Option { return dijkstra.WithMaxDistance(-1) },
		"threshold":    func() dijkstra.Option { return dijkstra.WithInfEdgeThreshold(0) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			var o dijkstra.Options
			opt()(&o)
		})
	}
}

// ------------------------------------------------------------------------
// 2. Directed roads: only outgoing edges are followed.
// ------------------------------------------------------------------------

func TestDijkstra_OneWayRoads(t *testing.T) {
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5)
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "B", 1)
	_, _ = g.AddEdge("B", "D", 3)
	_, _ = g.AddEdge("C", "D", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"A": 0, "B": 2, "C": 1, "D": 5}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("dist = %v; want %v", dist, want)
	}
	if prev != nil {
		t.Errorf("expected nil prev, got %v", prev)
	}

	// Nothing leaves D, so from D everything else is unreachable.
	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("D"))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(dist["A"], 1) {
		t.Errorf("dist[A] from D = %v; want +Inf", dist["A"])
	}
}

func TestDijkstra_WithPathAndPathTo(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1.5)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)
	_ = g.AddVertex("Z")

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 3.5 {
		t.Errorf("dist[C] = %v; want 3.5", dist["C"])
	}
	if got := dijkstra.PathTo(prev, "A", "C"); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("PathTo(C) = %v", got)
	}
	if got := dijkstra.PathTo(prev, "A", "A"); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("PathTo(A) = %v", got)
	}
	if got := dijkstra.PathTo(prev, "A", "Z"); got != nil {
		t.Errorf("PathTo(Z) = %v; want nil", got)
	}
}

// ------------------------------------------------------------------------
// 3. Caps: MaxDistance and InfEdgeThreshold.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "D", 1)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 2 {
		t.Errorf("dist[C] = %v; want 2", dist["C"])
	}
	if !math.IsInf(dist["D"], 1) {
		t.Errorf("dist[D] = %v; want +Inf beyond the cap", dist["D"])
	}
}

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 100)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "B", 150)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(100))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(dist["B"], 1) {
		t.Errorf("dist[B] = %v; want +Inf (both routes blocked)", dist["B"])
	}
}

func TestDijkstra_SingleVertex_ReturnsZero(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("X")
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	if err != nil {
		t.Fatal(err)
	}
	if dist["X"] != 0 {
		t.Errorf("dist[X] = %v; want 0", dist["X"])
	}
}
