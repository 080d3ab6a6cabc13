// Package bfs provides breadth-first search over a core.View,
// returning hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: Depth[v] hops from start, -1 if unreached
//   - Parent: predecessor in the BFS tree, -1 for the start or unreached
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterEdge.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Never follows blocked edges (weight core.Infinity), so a closed station in a
//     network.View cuts the network exactly as it does for the weighted engines.
//
// Why
//
//   - Decide reachability before running a weighted engine.
//   - Count connected components (Components), e.g. to tell whether a renovation
//     plan can possibly connect every city.
//
// Determinism
//
//	BFS enqueues targets in ForEachAdjacentEdge order, so the visit sequence is
//	reproducible for a fixed view.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(view, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//	seen, err := bfs.Reachable(view, 0)
//	comp, count, err := bfs.Components(view)
//
// Errors
//
//   - ErrGraphNil             if the view is nil.
//   - ErrStartVertexNotFound  if the start vertex is outside [0, V).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()               on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
