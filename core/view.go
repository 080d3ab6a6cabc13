// File: view.go
// Role: The read-only View contract consumed by every algorithm package.
// Determinism:
//   - ForEachVertex visits 0..V-1 ascending.
//   - ForEachAdjacentEdge and ForEachEdge must be stable for a fixed graph.
// Concurrency:
//   - Views never mutate their backing data; concurrent readers are safe
//     as long as the backing data is not mutated.

package core

import "fmt"

// View is a read-only projection of a weighted graph.
//
// Algorithms depend only on this interface. Different views over the same
// dataset may project different edge weights; the view owns the weighting
// policy, the algorithms never read the dataset directly.
type View interface {
	// VertexCount returns V. Vertices are the indices [0, V).
	VertexCount() int

	// ForEachVertex calls visit(v) once for every v in [0, V), ascending.
	ForEachVertex(visit func(v int))

	// ForEachAdjacentEdge calls visit(e) for every edge with e.From == v.
	ForEachAdjacentEdge(v int, visit func(e Edge))

	// ForEachEdge enumerates every edge of the view exactly once per
	// direction the view defines: undirected views emit the canonical
	// direction only, directed views emit both directions of a
	// bidirectional relationship.
	ForEachEdge(visit func(e Edge))
}

// ValidVertex returns ErrVertexOutOfRange (with context) when v is not in [0, V).
func ValidVertex(g View, v int) error {
	if g == nil {
		return ErrNilView
	}
	if v < 0 || v >= g.VertexCount() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.VertexCount())
	}

	return nil
}

// Edges collects ForEachEdge into a slice, in enumeration order.
//
// Complexity: O(E).
func Edges(g View) []Edge {
	var out []Edge
	g.ForEachEdge(func(e Edge) { out = append(out, e) })

	return out
}

// AdjacentEdges collects ForEachAdjacentEdge(v) into a slice.
func AdjacentEdges(g View, v int) []Edge {
	var out []Edge
	g.ForEachAdjacentEdge(v, func(e Edge) { out = append(out, e) })

	return out
}

// EdgeCount counts the edges enumerated by ForEachEdge.
func EdgeCount(g View) int {
	n := 0
	g.ForEachEdge(func(Edge) { n++ })

	return n
}

// MinWeight returns the smallest weight enumerated by ForEachEdge and false
// when the view has no edges.
func MinWeight(g View) (float64, bool) {
	var (
		min   float64
		found bool
	)
	g.ForEachEdge(func(e Edge) {
		if !found || e.Weight < min {
			min, found = e.Weight, true
		}
	})

	return min, found
}
