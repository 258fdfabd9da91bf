// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over any core.Weighted engine with non-negative edge weights.
//
// The algorithm processes vertices in order of increasing distance from the
// source using a pqueue.Queue ordered by current distance estimate. Every
// vertex enters the queue up front with a safe-infinity estimate
// (TotalWeight()+1 — any simple path's weight is bounded by the sum of all
// edge weights, so this strictly exceeds every finite path cost); the
// source enters with 0. Each relaxation that improves an estimate is
// reflected back into the queue with a real decrease-key
// (Queue.IncreasePriority), so the extraction order never goes stale.
//
// State machine (per run): unseen → frontier (estimate known, not
// finalized) → finished (extracted, estimate final). No vertex moves
// backward; a finished vertex is never relaxed again.
//
// Complexity:
//
//   - Time:  O(V^2 + E log V) — each of the V extractions costs O(log V),
//     and each of the up-to-E decrease-keys pays an O(V) locate scan in the
//     queue plus an O(log V) sift. The linear locate is the documented cost
//     of keeping the queue generic and index-free.
//   - Space: O(V) for the queue, distance and parent maps.
//
// Errors (sentinel):
//
//   - ErrGraphNil          if the graph is nil.
//   - ErrUnweightedGraph   if the graph does not carry weights.
//   - core.ErrVertexNotFound if the source (or target) vertex is absent.
//   - ErrNegativeWeight    if any edge weight is negative (detected by an
//     upfront O(E) scan, fail fast).
//
// An unreachable target is not an error: ShortestPath reports it as an
// ok=false result, and Distances simply omits unreached vertices from its
// maps.
//
// Example:
//
//	path, ok, err := dijkstra.ShortestPath(g, "s", "x")
//	if err != nil { ... }
//	if ok {
//	    fmt.Println(path.Vertices, path.Weight)
//	}
package dijkstra
