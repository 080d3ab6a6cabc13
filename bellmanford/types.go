// Package bellmanford defines options and sentinel errors for the
// Bellman-Ford single-source shortest-path engine.
package bellmanford

import (
	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/shortestpath"
)

// Sentinel errors returned by BellmanFord.
var (
	// ErrNilGraph indicates that a nil core.View was passed.
	ErrNilGraph = shortestpath.ErrNilGraph

	// ErrVertexNotFound indicates that the source index is outside [0, V).
	ErrVertexNotFound = core.ErrVertexOutOfRange

	// ErrNegativeCycle indicates a negative cycle reachable from the source.
	ErrNegativeCycle = shortestpath.ErrNegativeCycle

	// ErrBadInfThreshold indicates InfEdgeThreshold <= 0.
	ErrBadInfThreshold = shortestpath.ErrBadInfThreshold
)

// Variant selects the relaxation schedule.
type Variant int

const (
	// VariantPasses relaxes every edge of the view once per pass, up to V passes.
	VariantPasses Variant = iota

	// VariantQueue relaxes only the edges leaving vertices whose distance
	// changed, using a FIFO of pending vertices.
	VariantQueue
)

// Options configures BellmanFord.
//
// Options embeds shortestpath.Options (Source, InfEdgeThreshold).
// Variant   – VariantPasses (default) or VariantQueue.
// EarlyExit – stop the pass loop as soon as a pass relaxes nothing. Default true.
type Options struct {
	shortestpath.Options
	Variant   Variant
	EarlyExit bool
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// Source sets the starting vertex index.
func Source(v int) Option {
	return func(o *Options) { o.Source = v }
}

// WithQueue selects the queue-based variant.
func WithQueue() Option {
	return func(o *Options) { o.Variant = VariantQueue }
}

// WithoutEarlyExit forces all V passes even when distances stopped changing.
// Only meaningful for VariantPasses.
func WithoutEarlyExit() Option {
	return func(o *Options) { o.EarlyExit = false }
}

// WithInfEdgeThreshold treats edges with weight >= threshold as impassable.
// Panics with ErrBadInfThreshold when threshold <= 0.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns VariantPasses with early exit for the given source.
func DefaultOptions(source int) Options {
	return Options{
		Options:   shortestpath.DefaultOptions(source),
		Variant:   VariantPasses,
		EarlyExit: true,
	}
}
