// Package core defines the generic graph contracts, the shared sentinel
// errors, and the adjacency-list storage engine.
//
// What
//
//   - Graph[V] is the capability set every storage engine implements:
//     vertex and edge queries and mutation over an arbitrary comparable
//     vertex type V.
//   - Weighted[V] extends Graph[V] with weight-carrying edges, per-edge
//     weight lookup, and TotalWeight (the safe-infinity bound used by
//     shortest-path initialization).
//   - ListGraph[V] is the adjacency-list engine: a map from vertex to an
//     ordered neighbor list, plus a nested weight table for weighted
//     variants. Directedness and weighting are fixed at construction time
//     via functional options.
//
// Directed vs. undirected is a semantic contract on HasEdge/AddEdge/
// RemoveEdge symmetry, not a different interface: undirected engines keep
// edge membership symmetric by construction, and Edges() reports each
// undirected pair exactly once.
//
// Error taxonomy (matched via errors.Is):
//
//	ErrVertexExists   - AddVertex on a vertex already present; no mutation.
//	ErrVertexNotFound - an operation referenced a non-existent vertex.
//	ErrEdgeNotFound   - RemoveEdge on an edge that does not exist.
//	ErrBadWeight      - non-zero weight offered to an unweighted graph.
//
// Every condition above is a precondition violation reported synchronously
// to the caller; there is no retry or silent masking. Absence answers that
// are legitimate results (a missing weight, an unreachable vertex) are
// reported as ok-style booleans, not errors.
//
// Determinism
//
//	Vertices() enumerates in insertion order and neighbor lists preserve
//	edge-insertion order, so traversals seeded from them are fully
//	reproducible without requiring an ordering on V.
//
// Complexity (V = |vertices|, E = |edges|, deg = degree of the touched vertex)
//
//   - AddVertex / HasVertex / weighted lookup: O(1) expected
//   - AddEdge: O(deg) duplicate scan, O(1) append
//   - RemoveEdge: O(deg) splice per touched list
//   - RemoveVertex: O(V + E) worst case (prunes every other neighbor list)
//   - Vertices: O(V); Edges: O(E); Neighbors: O(deg)
//
// Instances are not safe for concurrent use: a graph is exclusively owned
// by the single logical caller, and algorithms borrow read-only access for
// the duration of a run. Embedding applications that share instances must
// serialize access themselves.
package core
