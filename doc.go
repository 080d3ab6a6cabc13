// Package railnet is an in-memory toolkit for planning on a train network:
// shortest and fastest routes, closed-station detours, and the cheapest set
// of lines to renovate so that every city stays connected.
//
// Layout
//
//	core          Edge, View, Digraph / Graph, Infinity and saturating sums
//	shortestpath  Result shared by the shortest-path engines
//	dijkstra      Dijkstra (non-negative weights)
//	bellmanford   Bellman-Ford, pass-based or queue-based, negative cycles
//	prim_kruskal  Kruskal, eager Prim, lazy Prim; spanning forests
//	bfs           hop-count traversal, reachability, connected components
//	builder       deterministic graph generators for tests and benchmarks
//	network       cities and lines, text / YAML / TOML loaders, weighted views
//	ewd           loader for edge-weighted digraph text files
//	planner       renovation and routing queries, engine cross-check
//	cmd/railnet   command-line front end
//
// Quick start
//
//	n, _ := network.LoadFile("swiss.txt")
//	p, _ := planner.New(n)
//	route, _ := p.ShortestRoute("Geneve", "Coire")
//	fmt.Println(route) // Geneve -> Lausanne -> ... -> Coire
//
// Every engine reads a core.View and never mutates it, so one network can
// serve concurrent queries. Vertices are indices in [0, V); weights are
// float64, with core.Infinity marking a blocked edge.
package railnet
