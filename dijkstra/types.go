// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance      – locations farther than this are not settled. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this are impassable. Default +Inf.
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges whose weight is ≥ threshold as impassable.
// Zero, negative or NaN values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options for the given source with no caps and no path map.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
