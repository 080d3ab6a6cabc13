// Package core provides the graph primitives shared by every railnet algorithm.
//
// The model is index based: a graph with V vertices names them 0..V-1, and
// per-vertex state lives in plain slices. Weights are float64 so that integer
// railway data (km, minutes, renovation cost) and fractional test graphs share
// one representation.
//
// What's inside:
//
//   - Edge:     immutable directed edge {From, To, Weight} with Either/Other helpers.
//   - View:     the read-only contract {VertexCount, ForEachVertex,
//     ForEachAdjacentEdge, ForEachEdge} consumed by dijkstra, bellmanford,
//     prim_kruskal and bfs.
//   - Digraph:  directed edge list, implements View.
//   - Graph:    undirected edge list, implements View (canonical ForEachEdge,
//     adjacency oriented out of the queried vertex).
//   - Infinity: the "not reached" sentinel (math.MaxFloat64), and AddWeights,
//     a saturating sum so that blocked (infinite) edges can never improve a
//     distance.
//
// Views and algorithms:
//
//	Any type implementing View can be fed to the engines. The network package
//	provides a View over a train network that derives weights (length,
//	duration, renovation cost) from line metadata and can block stations.
//
// Example:
//
//	g, _ := core.NewDigraph(3)
//	_ = g.AddEdge(0, 1, 1.5)
//	_ = g.AddEdge(1, 2, 2)
//	res, _ := dijkstra.Dijkstra(g, dijkstra.Source(0))
//	d, _ := res.DistanceTo(2) // 3.5
//
// Concurrency:
//
//	Digraph and Graph are not synchronized. Build them, then share them
//	read-only; any number of concurrent algorithm runs may read one graph.
package core
