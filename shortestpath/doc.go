// Package shortestpath holds the single-source shortest-path Result produced
// by both the dijkstra and bellmanford engines.
//
// A Result stores two arrays indexed by vertex:
//
//   - distTo[v]: best known distance from the source, core.Infinity when v
//     was never reached.
//   - edgeTo[v]: the last edge used to reach v on that path.
//
// Queries:
//
//	DistanceTo(v) (float64, error)    // ErrVertexOutOfRange, ErrUnreachable
//	EdgeTo(v)     (core.Edge, error)  // same errors
//	PathTo(v)     ([]core.Edge, error) // empty for the source
//	HasPathTo(v)  bool
//
// Unreachable vertices are reported with ErrUnreachable instead of returning
// the sentinel distance or tracing stale predecessor data. Path tracing stops
// at the source vertex itself, so zero-weight edges never end a trace early.
//
// Relaxation:
//
//	Result.Relax(e) is the single relaxation rule used by every engine:
//	    if dist[e.From] + e.Weight < dist[e.To] { dist[e.To] = ...; edgeTo[e.To] = e }
//	Sums saturate at core.Infinity, so an infinite-weight edge never relaxes.
//
// Ownership:
//
//	One Result per engine run, owned by the caller. Nothing is shared between
//	runs, so independent runs over the same read-only view may execute
//	concurrently.
package shortestpath
