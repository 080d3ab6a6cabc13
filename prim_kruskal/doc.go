// Package prim_kruskal provides three algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted core.View: Kruskal, Eager Prim and Lazy Prim.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why here:
//     Choosing which railway lines to renovate so that every city stays connected at the lowest
//     total cost is exactly an MST over a view weighted by renovation cost.
//
// Algorithms Provided
//
//   - Kruskal(g core.View) (*Tree, error)
//     Sort all edges by weight, then accept each edge whose endpoints are in different
//     components of a union-find structure. Stops at |V|−1 edges.
//     Time O(E log E), space O(V + E). Ties keep ForEachEdge order (stable sort).
//
//   - EagerPrim(g core.View, root int) (*Tree, error)
//     Grow one tree from root. Every non-tree vertex keeps its cheapest edge to the tree in an
//     indexed min-heap, updated eagerly (decrease-key) whenever a vertex joins.
//     Time O(E log V), space O(V).
//
//   - LazyPrim(g core.View, root int) (*Tree, error)
//     Same growth, but candidate edges go on a heap and stale ones are skipped on pop.
//     Time O(E log E), space O(E).
//
//   - Compute(g, WithMethod(...), WithRoot(...)) dispatches to one of the above.
//
// All three yield the same total weight on a connected view. With duplicate weights they may
// pick different edges.
//
// View requirements
//
//	Kruskal reads ForEachEdge and wants each undirected edge once. The Prim variants read
//	ForEachAdjacentEdge(v) and want every incident edge oriented out of v. A core.Graph or a
//	network.View built undirected (the default) satisfies both.
//
// Disconnected input
//
//	None of the algorithms fail on a disconnected view. They return a spanning forest with
//	fewer than |V|−1 edges; use Tree.Spanning() or Tree.Components() to detect it.
//	A single vertex (or an empty view) yields an empty tree.
//
// Error Conditions
//
//   - ErrInvalidGraph:   nil view, or unknown method passed to Compute.
//   - ErrVertexNotFound: Prim root outside [0, V).
package prim_kruskal
