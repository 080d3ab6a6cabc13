// Package bfs provides breadth-first search over a core.View,
// returning hop-count distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and edge filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/railnet/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph core.View
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
//
// Edges whose weight is core.Infinity (blocked) are never followed; weights
// are otherwise ignored.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g core.View, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if err := core.ValidVertex(g, start); err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, -1)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks v reached at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors follows every passable, unfiltered edge out of item
// within MaxDepth and enqueues each unseen target.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	w.graph.ForEachAdjacentEdge(item.v, func(e core.Edge) {
		if e.Blocked() || !w.opts.FilterEdge(e) {
			return
		}
		// first time seen?
		if w.res.Depth[e.To] < 0 {
			w.enqueue(e.To, nextDepth, item.v)
		}
	})
}

// Reachable reports, for every vertex, whether it can be reached from
// source over passable edges.
func Reachable(g core.View, source int) ([]bool, error) {
	res, err := BFS(g, source)
	if err != nil {
		return nil, err
	}
	seen := make([]bool, len(res.Depth))
	for _, v := range res.Order {
		seen[v] = true
	}

	return seen, nil
}

// Components labels the connected components of g, ignoring blocked edges.
// It returns the per-vertex component id (ids are assigned in order of each
// component's lowest vertex) and the number of components.
//
// Components treats edges as traversable in the direction the view reports
// them, so an undirected view yields connected components. On a directed
// view the labelling depends on vertex order.
func Components(g core.View) ([]int, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	n := g.VertexCount()
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	count := 0
	for v := 0; v < n; v++ {
		if comp[v] >= 0 {
			continue
		}
		id := count
		_, err := BFS(g, v,
			WithFilterEdge(func(e core.Edge) bool { return comp[e.To] < 0 }),
			WithOnEnqueue(func(u, _ int) { comp[u] = id }),
		)
		if err != nil {
			return nil, 0, err
		}
		count++
	}

	return comp, count, nil
}
