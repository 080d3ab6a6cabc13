// SPDX-License-Identifier: MIT
//
// File: digraph.go
// Role: Edge-list graphs with per-vertex adjacency slices.
// Determinism:
//   - Adjacency and edge enumeration follow insertion order.
// Concurrency:
//   - Not synchronized. Build the graph first, then share it read-only.

package core

import "fmt"

// Digraph is an edge-weighted directed graph with a fixed vertex count.
// It implements View directly: ForEachEdge enumerates every stored edge once.
type Digraph struct {
	adj   [][]Edge // adj[v] holds edges with From == v, in insertion order
	edges int
}

// NewDigraph returns an empty directed graph on vertices [0, v).
// Returns ErrNegativeVertices if v < 0.
//
// Complexity: O(V).
func NewDigraph(v int) (*Digraph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertices, v)
	}

	return &Digraph{adj: make([][]Edge, v)}, nil
}

// AddEdge appends the directed edge from→to with weight w.
// Self-loops and parallel edges are allowed.
//
// Complexity: O(1) amortized.
func (g *Digraph) AddEdge(from, to int, w float64) error {
	if err := g.check(from, to); err != nil {
		return err
	}
	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Weight: w})
	g.edges++

	return nil
}

func (g *Digraph) check(from, to int) error {
	n := len(g.adj)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: from=%d not in [0,%d)", ErrVertexOutOfRange, from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: to=%d not in [0,%d)", ErrVertexOutOfRange, to, n)
	}

	return nil
}

// VertexCount returns V.
func (g *Digraph) VertexCount() int { return len(g.adj) }

// EdgeCount returns E.
func (g *Digraph) EdgeCount() int { return g.edges }

// OutDegree returns the number of edges leaving v (0 for an invalid v).
func (g *Digraph) OutDegree(v int) int {
	if v < 0 || v >= len(g.adj) {
		return 0
	}

	return len(g.adj[v])
}

// ForEachVertex visits 0..V-1.
func (g *Digraph) ForEachVertex(visit func(v int)) {
	for v := range g.adj {
		visit(v)
	}
}

// ForEachAdjacentEdge visits the edges leaving v in insertion order.
// An invalid v visits nothing.
func (g *Digraph) ForEachAdjacentEdge(v int, visit func(e Edge)) {
	if v < 0 || v >= len(g.adj) {
		return
	}
	for _, e := range g.adj[v] {
		visit(e)
	}
}

// ForEachEdge visits every edge, grouped by tail vertex ascending.
func (g *Digraph) ForEachEdge(visit func(e Edge)) {
	for _, out := range g.adj {
		for _, e := range out {
			visit(e)
		}
	}
}

// Reverse returns a new Digraph with every edge reversed.
//
// Complexity: O(V + E).
func (g *Digraph) Reverse() *Digraph {
	r := &Digraph{adj: make([][]Edge, len(g.adj)), edges: g.edges}
	g.ForEachEdge(func(e Edge) {
		r.adj[e.To] = append(r.adj[e.To], e.Reversed())
	})

	return r
}

// Graph is an edge-weighted undirected graph.
//
// Each AddEdge stores one canonical edge. ForEachEdge emits it once, as
// added; ForEachAdjacentEdge(v) emits every incident edge oriented out of v,
// so that e.From == v holds for all visited edges.
type Graph struct {
	inc   [][]int // inc[v] lists indices into edges for edges touching v
	edges []Edge
}

// NewGraph returns an empty undirected graph on vertices [0, v).
func NewGraph(v int) (*Graph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertices, v)
	}

	return &Graph{inc: make([][]int, v)}, nil
}

// AddEdge adds the undirected edge u—w with weight wt.
func (g *Graph) AddEdge(u, w int, wt float64) error {
	n := len(g.inc)
	if u < 0 || u >= n || w < 0 || w >= n {
		return fmt.Errorf("%w: edge %d-%d with V=%d", ErrVertexOutOfRange, u, w, n)
	}
	id := len(g.edges)
	g.edges = append(g.edges, Edge{From: u, To: w, Weight: wt})
	g.inc[u] = append(g.inc[u], id)
	if u != w {
		g.inc[w] = append(g.inc[w], id)
	}

	return nil
}

// VertexCount returns V.
func (g *Graph) VertexCount() int { return len(g.inc) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// ForEachVertex visits 0..V-1.
func (g *Graph) ForEachVertex(visit func(v int)) {
	for v := range g.inc {
		visit(v)
	}
}

// ForEachAdjacentEdge visits every edge incident to v, oriented v→other.
func (g *Graph) ForEachAdjacentEdge(v int, visit func(e Edge)) {
	if v < 0 || v >= len(g.inc) {
		return
	}
	for _, id := range g.inc[v] {
		e := g.edges[id]
		if e.From != v {
			e = e.Reversed()
		}
		visit(e)
	}
}

// ForEachEdge visits every undirected edge once, in insertion order.
func (g *Graph) ForEachEdge(visit func(e Edge)) {
	for _, e := range g.edges {
		visit(e)
	}
}

// Directed returns a Digraph holding both orientations of every edge
// (a self-loop is stored once).
func (g *Graph) Directed() *Digraph {
	d := &Digraph{adj: make([][]Edge, len(g.inc))}
	for v := range g.inc {
		g.ForEachAdjacentEdge(v, func(e Edge) {
			d.adj[v] = append(d.adj[v], e)
			d.edges++
		})
	}

	return d
}
