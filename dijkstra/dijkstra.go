// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graph views.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - The heap orders by (distance, vertex), so among equal distances the lowest
//     index is finalized first. The order is deterministic for a fixed view.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/shortestpath"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g.
//
// Returns a *shortestpath.Result answering DistanceTo / EdgeTo / PathTo, or:
//
//   - ErrNilGraph        if g is nil.
//   - ErrVertexNotFound  if the source is not in [0, V).
//   - ErrNegativeWeight  if any edge has a negative weight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g core.View, opts ...Option) (*shortestpath.Result, error) {
	// 1) Build options
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph, threshold and source
	if err := cfg.Validate(g); err != nil {
		return nil, err
	}

	// 3) Pre-scan all edges to detect negative weights.
	var bad *core.Edge
	g.ForEachEdge(func(e core.Edge) {
		if bad == nil && e.Weight < 0 {
			bad = &e
		}
	})
	if bad != nil {
		return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, bad.From, bad.To, bad.Weight)
	}

	// 4) Run
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		res:     shortestpath.New(V, cfg.Source),
		done:    make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       core.View            // read-only within Dijkstra
	options Options              // Source, thresholds
	res     *shortestpath.Result // distances and predecessor edges
	done    []bool               // finalized vertices (not in the frontier)
	pq      nodePQ               // lazy min-heap of frontier candidates
}

// process is the core loop: extract the closest frontier vertex, finalize it,
// and relax its outgoing edges. Terminates when the heap is empty or the
// closest vertex lies beyond MaxDistance.
func (r *runner) process() {
	heap.Push(&r.pq, nodeItem{id: r.options.Source, dist: 0})
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.done[u] || item.dist > r.res.Dist(u) {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.done[u] = true
		r.relax(u)
	}
}

// relax examines each edge leaving u whose target is still in the frontier.
func (r *runner) relax(u int) {
	r.g.ForEachAdjacentEdge(u, func(e core.Edge) {
		if r.done[e.To] || !r.options.Passable(e.Weight) {
			return
		}
		if core.AddWeights(r.res.Dist(u), e.Weight) > r.options.MaxDistance {
			return
		}
		if r.res.Relax(e) {
			heap.Push(&r.pq, nodeItem{id: e.To, dist: r.res.Dist(e.To)})
		}
	})
}

// nodeItem represents a vertex and its distance at push time.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem, ordered by (dist, id) ascending.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element of the underlying slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
