// SPDX-License-Identifier: MIT
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable wall.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use lazy decrease-key: duplicates are pushed and stale entries ignored on pop.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/haripath/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (math.Inf(1) if unreachable).
//   - prev: predecessor map if ReturnPath (nil otherwise); prev[v] == "" for the
//     source and for unreachable vertices.
//   - err:  error if inputs are invalid or a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge may have a negative weight (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the route source→dest from a predecessor map returned with
// WithReturnPath. It returns nil when dest was not reached.
func PathTo(prev map[string]string, source, dest string) []string {
	if prev == nil {
		return nil
	}
	if dest == source {
		return []string{source}
	}
	if prev[dest] == "" {
		return nil
	}

	var path []string
	for cur := dest; cur != ""; cur = prev[cur] {
		path = append(path, cur)
		if cur == source {
			break
		}
	}
	if path[len(path)-1] != source {
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets every distance to +Inf, the source to 0, and seeds the heap.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process settles vertices in increasing distance order until the heap is
// empty or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distances of u's out-neighbors. Assumes dist[u] is final.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range edges {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only, so equal distances keep the first predecessor found.
		if newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}

	return nil
}

// nodeItem is a vertex with a tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id for determinism.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
