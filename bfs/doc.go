// Package bfs provides breadth-first search over any core.Graph engine,
// returning unweighted shortest-path distances, parent links, and visit
// order.
//
// What
//
//   - Run explores vertices in non-decreasing distance (edge count) from a
//     start vertex, over either storage engine, and returns a Result with:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → predecessor in the BFS tree
//   - ShortestPath reconstructs the fewest-edge path between two vertices
//     by walking parent links backward; "no path" is an ok=false answer,
//     not an error, and start == end yields the single-vertex path.
//   - Functional options: depth limiting (WithMaxDepth), per-edge filtering
//     (WithFilterNeighbor), and an OnVisit hook that can abort the run.
//
// Termination
//
//	The FIFO frontier empties. Each vertex is enqueued at most once
//	(visited is marked at enqueue time), so the loop is O(V + E).
//
// Errors
//
//   - ErrGraphNil           if the graph is nil.
//   - core.ErrVertexNotFound if the start (or ShortestPath end) vertex is absent.
//   - ErrWeightedGraph      if run on a weighted graph — BFS distance is an
//     edge count; weighted shortest paths belong to dijkstra.
//   - ErrOptionViolation    if an invalid Option is supplied.
//   - Wrapped user hook errors from OnVisit.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O(V + E) over the list engine, O(V^2) over the matrix engine
//     (its Neighbors is a row scan)
//   - Memory: O(V) for queue, Depth, Parent, and the visited set
//
// Working state (queue, maps) is scoped to one call and discarded on
// return; the graph is borrowed read-only for the duration.
package bfs
