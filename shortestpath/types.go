// Package shortestpath defines the result type shared by the single-source
// shortest-path engines (dijkstra, bellmanford), their common options and the
// sentinel errors reported by queries on a result.
package shortestpath

import (
	"errors"

	"github.com/katalvlaran/railnet/core"
)

// Sentinel errors returned by engines and Result queries.
var (
	// ErrVertexOutOfRange indicates a query or source index outside [0, V).
	// Same value as core.ErrVertexOutOfRange.
	ErrVertexOutOfRange = core.ErrVertexOutOfRange

	// ErrUnreachable indicates the vertex was never reached from the source.
	ErrUnreachable = errors.New("shortestpath: vertex unreachable from source")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the
	// source, which makes every distance on it meaningless.
	ErrNegativeCycle = errors.New("shortestpath: malformed graph, negative cycle reachable from source")

	// ErrNilGraph indicates a nil core.View was passed to an engine.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrBadInfThreshold indicates InfEdgeThreshold <= 0.
	ErrBadInfThreshold = errors.New("shortestpath: InfEdgeThreshold must be positive")
)

// Options holds the settings common to every shortest-path engine.
//
// Source           – index of the source vertex, must be in [0, V).
// InfEdgeThreshold – edges with weight >= threshold are treated as impassable.
//
//	Default core.Infinity: only edges already carrying the Infinity weight
//	(blocked stations) are impassable.
type Options struct {
	Source           int
	InfEdgeThreshold float64
}

// DefaultOptions returns Options for the given source with the default
// impassable threshold (core.Infinity).
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		InfEdgeThreshold: core.Infinity,
	}
}

// Passable reports whether an edge weight is below the impassable threshold.
func (o Options) Passable(w float64) bool {
	return w < o.InfEdgeThreshold && !core.IsInf(w)
}

// Validate checks the options against g.
func (o Options) Validate(g core.View) error {
	if g == nil {
		return ErrNilGraph
	}
	if o.InfEdgeThreshold <= 0 {
		return ErrBadInfThreshold
	}

	return core.ValidVertex(g, o.Source)
}
