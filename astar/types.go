// SPDX-License-Identifier: MIT

package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates that no heuristic function was supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrInvalidNode indicates that start or goal is not a vertex of the graph.
	ErrInvalidNode = errors.New("astar: node not in graph")

	// ErrMissingCoordinate indicates a location reached by the search has no coordinate.
	ErrMissingCoordinate = errors.New("astar: node has no coordinate")

	// ErrNotFound indicates that the goal cannot be reached from start.
	// FindPath itself reports this through Result.Found; see Result.Err.
	ErrNotFound = errors.New("astar: no path found")

	// ErrExpansionLimit indicates the search stopped at the WithMaxExpansions cap.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Options holds parameters and callbacks that customize one search.
type Options struct {
	// OnExpand is called each time a location is finalized, with its cost from start.
	OnExpand func(id string, cost float64)

	// OnPush is called for every frontier insertion, with the entry's estimated total.
	OnPush func(id string, priority float64)

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit after
	// that many expansions. Zero means no limit.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option configures FindPath via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks and no expansion limit.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(string, float64) {},
		OnPush:   func(string, float64) {},
	}
}

// WithOnExpand registers a callback run when a location is finalized.
func WithOnExpand(fn func(id string, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a callback run on every frontier insertion.
func WithOnPush(fn func(id string, priority float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result is the outcome of one FindPath call.
type Result struct {
	// Path is the optimal route; zero value when Found is false.
	Path Path

	// Found reports whether the goal was reached.
	Found bool

	// Expanded counts finalized locations (stale pops excluded).
	Expanded int

	// Pushed counts frontier insertions, including the start entry.
	Pushed int
}

// Err returns ErrNotFound when the search completed without reaching the goal.
func (r Result) Err() error {
	if !r.Found {
		return ErrNotFound
	}

	return nil
}
