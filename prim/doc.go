// Package prim computes minimum spanning trees of undirected, weighted
// graphs by growing outward from a root vertex.
//
// The algorithm keeps a pqueue.Queue of candidate edges ordered by weight:
// edges leading out of the already-included tree into undecided territory.
// It repeatedly extracts the lowest-weight candidate, discards it if its
// destination is already included (lazy deletion: a candidate edge is
// immutable once pushed), otherwise adds the edge and its destination to
// the tree and pushes the destination's own incident edges as new
// candidates.
//
// Termination: the tree reaches |V|−1 edges, or the candidate queue
// exhausts first. Exhaustion only happens when the graph is not connected
// and is reported as ErrDisconnected.
//
// Errors (sentinel):
//
//   - ErrInvalidGraph   if the graph is nil, directed, or unweighted.
//   - ErrDisconnected   if the graph is empty or no spanning tree covers
//     every vertex.
//   - core.ErrVertexNotFound if a WithRoot vertex is absent.
//
// Complexity: O(E log E) time, O(V + E) memory.
package prim
