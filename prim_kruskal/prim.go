// Package prim_kruskal provides implementations of Prim’s Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected, weighted core.View and grows the MST from a root vertex using a min‐heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/railnet/core"
)

// EagerPrim computes the Minimum Spanning Tree (or forest) of an undirected
// weighted view by growing a tree from root.
//
// For every vertex not yet in the tree it keeps the cheapest edge connecting
// it to the tree, stored in an indexed min-heap and lowered (decrease-key) as
// each new tree vertex is scanned. The next vertex added is always the one
// with the cheapest connecting edge.
//
// When the root's component is exhausted and unvisited vertices remain, a
// new tree is grown from the lowest unvisited index, so a disconnected view
// yields a spanning forest.
//
// Errors:
//   - ErrInvalidGraph:   g is nil.
//   - ErrVertexNotFound: root outside [0, V) on a non-empty view.
//
// Complexity: O(E log V) time, O(V) memory.
func EagerPrim(g core.View, root int) (*Tree, error) {
	n, err := checkRoot(g, root)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return newTree(0), nil
	}

	var (
		tree   = newTree(n)
		inTree = make([]bool, n)
		edgeTo = make([]core.Edge, n)
		pq     = newIndexPQ(n)
	)

	grow := func(start int) {
		pq.pushOrLower(start, 0)
		for pq.Len() > 0 {
			v := pq.popMin()
			inTree[v] = true
			if v != start {
				tree.add(edgeTo[v])
			}
			g.ForEachAdjacentEdge(v, func(e core.Edge) {
				w := e.To
				if inTree[w] {
					return
				}
				if pq.pushOrLower(w, e.Weight) {
					edgeTo[w] = e
				}
			})
		}
	}

	grow(root)
	for v := 0; v < n && len(tree.Edges) < n-1; v++ {
		if !inTree[v] {
			grow(v)
		}
	}

	return tree, nil
}

// LazyPrim computes the same tree as EagerPrim but keeps candidate edges in
// the heap and discards those whose far end is already in the tree when they
// are popped.
//
// Errors: as EagerPrim.
//
// Complexity: O(E log E) time, O(E) memory.
func LazyPrim(g core.View, root int) (*Tree, error) {
	n, err := checkRoot(g, root)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return newTree(0), nil
	}

	var (
		tree    = newTree(n)
		visited = make([]bool, n)
		pq      = &edgePQ{}
	)
	heap.Init(pq)

	visit := func(v int) {
		visited[v] = true
		g.ForEachAdjacentEdge(v, func(e core.Edge) {
			if !visited[e.To] {
				heap.Push(pq, e)
			}
		})
	}

	grow := func(start int) {
		visit(start)
		for pq.Len() > 0 && len(tree.Edges) < n-1 {
			e := heap.Pop(pq).(core.Edge)
			if visited[e.To] {
				continue
			}
			tree.add(e)
			visit(e.To)
		}
	}

	grow(root)
	for v := 0; v < n && len(tree.Edges) < n-1; v++ {
		if !visited[v] {
			grow(v)
		}
	}

	return tree, nil
}

func checkRoot(g core.View, root int) (int, error) {
	if g == nil {
		return 0, ErrInvalidGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return 0, nil
	}
	if root < 0 || root >= n {
		return n, fmt.Errorf("%w: root %d not in [0,%d)", ErrVertexNotFound, root, n)
	}

	return n, nil
}

// edgePQ implements heap.Interface for a min‐heap of core.Edge, ordered by
// Weight, then by endpoints for a deterministic order among equal weights.
type edgePQ []core.Edge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less compares by Weight, then From, then To.
func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new core.Edge to the heap.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the last element of the underlying slice.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
