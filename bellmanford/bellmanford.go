package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/shortestpath"
)

// BellmanFord computes single-source shortest paths on g, which may contain
// negative edge weights.
//
// VariantPasses runs up to V full passes over g.ForEachEdge, relaxing every
// edge. After k passes every shortest path of at most k edges is final, so
// V-1 passes suffice for simple paths; if pass V still relaxes an edge, a
// negative cycle is reachable from the source and ErrNegativeCycle is
// returned. With EarlyExit a pass that relaxes nothing ends the loop.
//
// VariantQueue only re-examines vertices whose distance changed. A vertex
// dequeued more than V times proves a reachable negative cycle.
//
// Negative cycles that the source cannot reach do not affect the result.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ErrNegativeCycle.
//
// Complexity:
//
//   - Time:  O(V·E) worst case for both variants.
//   - Space: O(V).
func BellmanFord(g core.View, opts ...Option) (*shortestpath.Result, error) {
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(g); err != nil {
		return nil, err
	}

	res := shortestpath.New(g.VertexCount(), cfg.Source)
	var err error
	switch cfg.Variant {
	case VariantQueue:
		err = queue(g, cfg, res)
	default:
		err = passes(g, cfg, res)
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

// passes is the classic schedule: relax all edges, V times at most.
func passes(g core.View, cfg Options, res *shortestpath.Result) error {
	V := g.VertexCount()
	changed := false
	for pass := 0; pass < V; pass++ {
		changed = false
		g.ForEachEdge(func(e core.Edge) {
			if cfg.Passable(e.Weight) && res.Relax(e) {
				changed = true
			}
		})
		if !changed && cfg.EarlyExit {
			return nil
		}
	}
	if changed {
		return fmt.Errorf("%w: distances still changing after %d passes", ErrNegativeCycle, V)
	}

	return nil
}

// queue re-examines only vertices whose distance improved.
func queue(g core.View, cfg Options, res *shortestpath.Result) error {
	V := g.VertexCount()
	onQueue := make([]bool, V)
	dequeued := make([]int, V)
	fifo := make([]int, 0, V)

	fifo = append(fifo, cfg.Source)
	onQueue[cfg.Source] = true
	for len(fifo) > 0 {
		u := fifo[0]
		fifo = fifo[1:]
		onQueue[u] = false

		dequeued[u]++
		if dequeued[u] > V {
			return fmt.Errorf("%w: vertex %d dequeued %d times", ErrNegativeCycle, u, dequeued[u])
		}

		g.ForEachAdjacentEdge(u, func(e core.Edge) {
			if !cfg.Passable(e.Weight) || !res.Relax(e) {
				return
			}
			if !onQueue[e.To] {
				onQueue[e.To] = true
				fifo = append(fifo, e.To)
			}
		})
	}

	return nil
}
