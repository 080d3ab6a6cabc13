// Package prim_kruskal defines configuration options, the Tree result and
// sentinel errors for MST computation. It supports selecting between Kruskal,
// Eager Prim and Lazy Prim via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/railnet/core"
)

// ErrInvalidGraph indicates that the graph is nil or the method is unknown.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil undirected weighted view")

// ErrVertexNotFound indicates that the Prim root is outside [0, V).
var ErrVertexNotFound = core.ErrVertexOutOfRange

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Eager Prim (indexed min-heap of vertices keyed by their
// cheapest connecting edge).
const MethodPrim = "prim"

// MethodLazyPrim selects Lazy Prim (min-heap of candidate edges, stale
// entries discarded on pop).
const MethodLazyPrim = "lazy-prim"

// Tree is the result of an MST computation: a spanning tree when the view
// is connected, a spanning forest otherwise.
//
// Edges are listed in acceptance order. Weight is their saturating sum.
type Tree struct {
	Edges    []core.Edge
	Weight   float64
	Vertices int
}

// Spanning reports whether the edges connect all vertices (|E| == V-1).
// The empty and single-vertex graphs are trivially spanned.
func (t *Tree) Spanning() bool {
	if t.Vertices <= 1 {
		return len(t.Edges) == 0
	}

	return len(t.Edges) == t.Vertices-1
}

// Components returns the number of trees in the forest (V - |E|).
func (t *Tree) Components() int {
	return t.Vertices - len(t.Edges)
}

func (t *Tree) add(e core.Edge) {
	t.Edges = append(t.Edges, e)
	t.Weight = core.AddWeights(t.Weight, e.Weight)
}

func newTree(v int) *Tree {
	n := v - 1
	if n < 0 {
		n = 0
	}

	return &Tree{Edges: make([]core.Edge, 0, n), Vertices: v}
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string — one of MethodKruskal, MethodPrim, MethodLazyPrim.
//	Root   int    — start vertex for the Prim variants; ignored by Kruskal.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	Method string
	Root   int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal, root 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm based on the options.
//
//	– MethodKruskal:  Kruskal(g).
//	– MethodPrim:     EagerPrim(g, root).
//	– MethodLazyPrim: LazyPrim(g, root).
//	– Otherwise:      ErrInvalidGraph.
func Compute(g core.View, opts ...Option) (*Tree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return EagerPrim(g, cfg.Root)
	case MethodLazyPrim:
		return LazyPrim(g, cfg.Root)
	default:
		return nil, ErrInvalidGraph
	}
}
