// Package bellmanford provides the Bellman-Ford single-source shortest-path
// algorithm over a core.View whose edge weights may be negative.
//
// What & Why
//
//   - Dijkstra finalizes vertices greedily and is wrong as soon as a negative
//     edge exists. Bellman-Ford instead repeats full relaxation passes: after
//     k passes every shortest path using at most k edges is known, and V-1
//     passes cover every simple path.
//   - The result is the same *shortestpath.Result produced by dijkstra, so the
//     two engines can be compared vertex by vertex on non-negative graphs.
//
// Variants
//
//   - VariantPasses (default): up to V passes over ForEachEdge, stopping early
//     when a pass relaxes nothing (disable with WithoutEarlyExit).
//   - VariantQueue (WithQueue): keeps a FIFO of vertices whose distance
//     changed and only relaxes their outgoing edges (ForEachAdjacentEdge).
//
// View requirements
//
//	VariantPasses enumerates edges with ForEachEdge, so the view must emit
//	every traversable direction there. Use a directed view: a core.Digraph,
//	core.Graph.Directed(), or network.View built with network.Directed().
//	VariantQueue walks adjacency and works on undirected views as well.
//
// Negative cycles
//
//	When a negative cycle is reachable from the source, distances are not
//	defined. Both variants detect it cheaply (a change during pass V, or a
//	vertex dequeued more than V times) and return ErrNegativeCycle, the
//	"malformed graph" error, instead of silently wrong numbers. Cycles the
//	source cannot reach are ignored.
//
// Blocked edges
//
//	Edges whose weight is core.Infinity, or at or above InfEdgeThreshold, are
//	never relaxed, exactly as in dijkstra.
//
// Complexity: O(V·E) time, O(V) extra space.
package bellmanford
