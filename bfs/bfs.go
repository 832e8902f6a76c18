// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/haripath/core"
)

// queueItem pairs a vertex ID with its hop count.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g from startID over outgoing roads.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Reachable returns every vertex reachable from startID through outgoing
// roads, excluding startID itself, sorted by ID.
func Reachable(g *core.Graph, startID string, opts ...Option) ([]string, error) {
	res, err := BFS(g, startID, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(res.Order))
	for _, id := range res.Order {
		if id != startID {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out, nil
}

// enqueue records id at depth d (first discovery) and appends it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}

		neighbors, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrNeighbors, item.id, err)
		}
		for _, nbr := range neighbors {
			if !w.opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			if _, seen := w.res.Depth[nbr]; !seen {
				w.enqueue(nbr, item.depth+1, item.id)
			}
		}
	}

	return nil
}
