// Package core defines the weighted Edge value, the read-only View contract
// that every algorithm in railnet consumes, and two concrete edge-list graphs
// (Digraph and Graph) backed by per-vertex adjacency slices.
//
// Vertices are dense integer indices in [0, V). There is no vertex object:
// all per-vertex data lives in slices indexed by vertex.
//
// Errors:
//
//	ErrVertexOutOfRange - vertex index outside [0, V).
//	ErrNegativeVertices - graph constructed with a negative vertex count.
//	ErrNilView          - a nil View was passed where one is required.
package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex index outside [0, V).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNegativeVertices indicates a graph was requested with V < 0.
	ErrNegativeVertices = errors.New("core: negative vertex count")

	// ErrNilView indicates that a nil View was supplied.
	ErrNilView = errors.New("core: view is nil")
)

// Infinity is the distance sentinel for "not reached" and the weight a view
// assigns to an edge that must never be traversed (blocked station).
const Infinity = math.MaxFloat64

// IsInf reports whether w is at or beyond the Infinity sentinel.
func IsInf(w float64) bool { return w >= Infinity }

// AddWeights returns a+b, saturating at Infinity when either operand is
// already infinite. An infinite edge therefore never shortens a path.
func AddWeights(a, b float64) float64 {
	if IsInf(a) || IsInf(b) {
		return Infinity
	}
	s := a + b
	if IsInf(s) {
		return Infinity
	}

	return s
}

// Edge is an immutable directed weighted edge From→To.
//
// An undirected relationship is modeled as two Edges, one per direction.
type Edge struct {
	From   int     // tail vertex
	To     int     // head vertex
	Weight float64 // cost of traversing the edge
}

// NewEdge returns the edge from→to with weight w.
func NewEdge(from, to int, w float64) Edge {
	return Edge{From: from, To: to, Weight: w}
}

// Either returns one endpoint of the edge (the tail).
func (e Edge) Either() int { return e.From }

// Other returns the endpoint opposite to v. For a self-loop it returns v.
// Calling Other with a vertex that is not an endpoint returns -1.
func (e Edge) Other(v int) int {
	switch v {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return -1
	}
}

// Reversed returns the same edge oriented To→From.
func (e Edge) Reversed() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}

// Blocked reports whether the edge carries the Infinity weight.
func (e Edge) Blocked() bool { return IsInf(e.Weight) }

// String renders the edge as "from->to (weight)"; blocked edges print "inf".
func (e Edge) String() string {
	w := "inf"
	if !e.Blocked() {
		w = strconv.FormatFloat(e.Weight, 'g', -1, 64)
	}

	return fmt.Sprintf("%d->%d (%s)", e.From, e.To, w)
}
