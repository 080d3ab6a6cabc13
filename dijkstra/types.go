// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graph views.
//
// Options:
//
//	– Source:           index of the starting vertex (must be in [0, V)).
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided view is nil.
//	– ErrVertexNotFound  if the source index is outside [0, V).
//	– ErrNegativeWeight  if a negative edge weight is detected in the view.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/shortestpath"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil core.View was passed to Dijkstra.
	ErrNilGraph = shortestpath.ErrNilGraph

	// ErrVertexNotFound indicates that the source index is outside [0, V).
	ErrVertexNotFound = core.ErrVertexOutOfRange

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	// Dijkstra's greedy finalization is only correct for non-negative weights;
	// use bellmanford for those graphs.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = shortestpath.ErrBadInfThreshold
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Options embeds shortestpath.Options (Source, InfEdgeThreshold).
// MaxDistance – stop once the closest frontier vertex is farther than this.
//
//	Must be ≥ 0. Default is core.Infinity (no cap).
type Options struct {
	shortestpath.Options
	MaxDistance float64 // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex index.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Must pass a positive value; zero or negative panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex.
//
// Defaults:
//   - Source:           <as passed> (validated in Dijkstra).
//   - MaxDistance:      core.Infinity (explore all reachable).
//   - InfEdgeThreshold: core.Infinity (only blocked edges are impassable).
func DefaultOptions(source int) Options {
	return Options{
		Options:     shortestpath.DefaultOptions(source),
		MaxDistance: core.Infinity,
	}
}
