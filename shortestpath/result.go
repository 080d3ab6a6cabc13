package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/railnet/core"
)

// Result holds, for every vertex, the best known distance from the source
// and the last edge of one shortest path reaching it.
//
// Invariants once an engine has returned a Result without error:
//   - DistanceTo(source) == 0 and EdgeTo(source) is the self-edge (s, s, 0).
//   - For every other reached v: edgeTo[v].To == v and
//     distTo[v] == distTo[edgeTo[v].From] + edgeTo[v].Weight.
//
// A Result is immutable to callers; queries never modify it.
type Result struct {
	source int
	distTo []float64
	edgeTo []core.Edge
}

// New allocates a Result for V vertices with every distance at core.Infinity
// except the source, which is set to 0 with the self-edge (s, s, 0).
// Engines call New and then Relax; callers receive the finished value.
func New(v, source int) *Result {
	r := &Result{
		source: source,
		distTo: make([]float64, v),
		edgeTo: make([]core.Edge, v),
	}
	for i := range r.distTo {
		r.distTo[i] = core.Infinity
	}
	r.distTo[source] = 0
	r.edgeTo[source] = core.Edge{From: source, To: source, Weight: 0}

	return r
}

// Relax applies the relaxation rule for e: if dist[e.From] + e.Weight is
// strictly smaller than dist[e.To], record the new distance and edge.
// Reports whether an update happened. An unreached tail never relaxes.
//
// Complexity: O(1).
func (r *Result) Relax(e core.Edge) bool {
	from := r.distTo[e.From]
	if core.IsInf(from) {
		return false
	}
	through := core.AddWeights(from, e.Weight)
	if through >= r.distTo[e.To] {
		return false
	}
	r.distTo[e.To] = through
	r.edgeTo[e.To] = e

	return true
}

// Dist returns the raw distance slot for v without validation, core.Infinity
// when unreached. Engines use it in hot loops.
func (r *Result) Dist(v int) float64 { return r.distTo[v] }

// Source returns the source vertex of the run.
func (r *Result) Source() int { return r.source }

// VertexCount returns V.
func (r *Result) VertexCount() int { return len(r.distTo) }

func (r *Result) check(v int) error {
	if v < 0 || v >= len(r.distTo) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(r.distTo))
	}
	if core.IsInf(r.distTo[v]) {
		return fmt.Errorf("%w: %d from %d", ErrUnreachable, v, r.source)
	}

	return nil
}

// HasPathTo reports whether v is a valid vertex reached from the source.
func (r *Result) HasPathTo(v int) bool { return r.check(v) == nil }

// DistanceTo returns the length of a shortest path from the source to v.
//
// Errors: ErrVertexOutOfRange, ErrUnreachable.
func (r *Result) DistanceTo(v int) (float64, error) {
	if err := r.check(v); err != nil {
		return core.Infinity, err
	}

	return r.distTo[v], nil
}

// EdgeTo returns the last edge of a shortest path from the source to v.
// For the source itself this is the self-edge (s, s, 0).
//
// Errors: ErrVertexOutOfRange, ErrUnreachable.
func (r *Result) EdgeTo(v int) (core.Edge, error) {
	if err := r.check(v); err != nil {
		return core.Edge{}, err
	}

	return r.edgeTo[v], nil
}

// PathTo returns the edges of a shortest path from the source to v, in
// travel order. The path to the source is empty (non-nil).
//
// Tracing follows edgeTo backwards until it reaches the source vertex. It
// never starts on an unreached vertex, and gives up with ErrNegativeCycle if
// the trace is longer than V edges (only possible when a negative cycle
// corrupted the predecessor links).
//
// Errors: ErrVertexOutOfRange, ErrUnreachable, ErrNegativeCycle.
//
// Complexity: O(path length).
func (r *Result) PathTo(v int) ([]core.Edge, error) {
	if err := r.check(v); err != nil {
		return nil, err
	}
	path := make([]core.Edge, 0)
	for cur := v; cur != r.source; {
		if len(path) >= len(r.distTo) {
			return nil, fmt.Errorf("%w: tracing path to %d", ErrNegativeCycle, v)
		}
		e := r.edgeTo[cur]
		path = append(path, e)
		cur = e.From
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Distances returns a copy of the distance array; unreached entries hold
// core.Infinity.
func (r *Result) Distances() []float64 {
	out := make([]float64, len(r.distTo))
	copy(out, r.distTo)

	return out
}

// Equal reports whether a and b have the same source and identical distances
// for every vertex. Predecessor edges may differ among equal-cost paths.
func Equal(a, b *Result) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.source != b.source || len(a.distTo) != len(b.distTo) {
		return false
	}
	for i := range a.distTo {
		if a.distTo[i] != b.distTo[i] {
			return false
		}
	}

	return true
}

// PathWeight sums the weights of a path with saturating arithmetic.
func PathWeight(path []core.Edge) float64 {
	var total float64
	for _, e := range path {
		total = core.AddWeights(total, e.Weight)
	}

	return total
}
