// Package matrix provides the adjacency-matrix storage engine behind the
// core.Graph and core.Weighted contracts.
//
// What
//
//   - Graph[V] stores edges in a dense V×V grid of cells addressed through
//     a bijective vertex↔index mapping (map[V]int one way, []V back).
//   - Each cell carries an explicit presence bit next to its weight, so a
//     zero-weight edge is distinguishable from "no edge".
//   - Undirected edges canonicalize into the cell with row index ≤ column
//     index; lookups and mutations address (min(i,j), max(i,j)), which
//     keeps each undirected pair stored exactly once.
//
// Index invariant
//
//	The index mapping is a bijection between the current vertex set and
//	{0..size-1}. Removing a vertex deletes its row and column and
//	renumbers every higher index down by one; relative order is
//	preserved, so the undirected canonical orientation stays valid.
//
// Tradeoffs versus the list engine
//
//   - HasEdge / AddEdge / RemoveEdge / Weight: O(1) given the index lookup.
//   - AddVertex / RemoveVertex: O(V^2) — every row and column is touched.
//   - Neighbors: O(V) row scan. Edges and TotalWeight: O(V^2).
//
// The engine shares core's sentinel errors (ErrVertexExists,
// ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight) and core's semantics
// for duplicate insertion (unweighted no-op, weighted last-write-wins), so
// the two engines are drop-in replacements for each other behind the
// contracts.
//
// Not safe for concurrent use; instances are exclusively owned by the
// single logical caller.
package matrix
