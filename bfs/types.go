// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. A non-nil error aborts the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this hop count.
	MaxDepth int

	// FilterNeighbor can skip roads by returning false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns BFSOptions with a background context, no depth
// limit, no filtering, and a no-op OnVisit.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on visit.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to d hops. d == 0 means no limit; d < 0 is invalid.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips roads curr→neighbor when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a traversal.
type BFSResult struct {
	Order  []string          // vertices in visit sequence
	Depth  map[string]int    // hops from start
	Parent map[string]string // BFS-tree predecessor; absent for start
}

// PathTo reconstructs the fewest-hops route from the start vertex to dest.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
