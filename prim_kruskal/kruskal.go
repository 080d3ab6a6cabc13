// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted core.View and produces the edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/railnet/core"
)

// Kruskal computes the Minimum Spanning Tree (or forest) of an undirected,
// weighted view. It uses a disjoint-set (union-find) data structure with
// path compression and union by rank.
//
// Steps:
//  1. Validate: g != nil.
//  2. Collect all edges via g.ForEachEdge(), skip self-loops (e.From == e.To).
//  3. Sort edges by ascending Weight (sort.SliceStable keeps enumeration order for equal weights).
//  4. Loop over sorted edges: if find(u) != find(v), union(u,v) and accept the edge.
//  5. Stop once |V|-1 edges are accepted or edges are exhausted. A disconnected
//     view yields a spanning forest; check Tree.Spanning().
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(g core.View) (*Tree, error) {
	// 1. Validate.
	if g == nil {
		return nil, ErrInvalidGraph
	}
	n := g.VertexCount()
	tree := newTree(n)
	if n <= 1 {
		return tree, nil
	}

	// 2. Collect all edges, skipping self-loops.
	edges := make([]core.Edge, 0, n)
	g.ForEachEdge(func(e core.Edge) {
		if e.From != e.To {
			edges = append(edges, e)
		}
	})

	// 3. Sort edges by ascending weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Build MST by iterating over sorted edges.
	uf := newUnionFind(n)
	for _, e := range edges {
		if uf.union(e.From, e.To) {
			tree.add(e)
			// 5. |V|-1 edges: MST is complete.
			if len(tree.Edges) == n-1 {
				break
			}
		}
	}

	return tree, nil
}

// unionFind is a disjoint-set forest over [0, n).
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// find returns the root of u, halving the path on the way up.
func (uf *unionFind) find(u int) int {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}

	return u
}

// union merges the sets of u and v by rank. Reports false when they were
// already connected.
func (uf *unionFind) union(u, v int) bool {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return false
	}
	switch {
	case uf.rank[ru] < uf.rank[rv]:
		uf.parent[ru] = rv
	case uf.rank[ru] > uf.rank[rv]:
		uf.parent[rv] = ru
	default:
		uf.parent[rv] = ru
		uf.rank[ru]++
	}

	return true
}
