// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// over any core.View with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from one source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always finalize the next-closest
//     vertex; finalized vertices leave the frontier and are never relaxed again.
//   - The result is a *shortestpath.Result, the same type produced by
//     bellmanford, so callers can swap engines freely.
//
// Key features:
//
//   - Functional options: Source, WithMaxDistance, WithInfEdgeThreshold.
//   - Blocked edges: an edge carrying core.Infinity (or any weight at or above
//     InfEdgeThreshold) is never traversed. Blocking a station in a
//     network.View therefore makes it unreachable.
//   - Deterministic tie-breaking: equal distances are finalized by ascending
//     vertex index.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil view.
//   - ErrVertexNotFound:  source not in [0, V) (same value as core.ErrVertexOutOfRange).
//   - ErrNegativeWeight:  a negative edge was found by the O(E) pre-scan.
//   - ErrBadMaxDistance:  panic from WithMaxDistance with a negative value.
//   - ErrBadInfThreshold: panic from WithInfEdgeThreshold with a value <= 0.
//
// Querying the result:
//
//	res, err := dijkstra.Dijkstra(view, dijkstra.Source(s))
//	d, err := res.DistanceTo(t)   // shortestpath.ErrUnreachable if t was never reached
//	path, err := res.PathTo(t)    // edges s→…→t
//
// Thread safety:
//
//   - Each call owns its own state. Concurrent calls over the same read-only
//     view are safe.
package dijkstra
