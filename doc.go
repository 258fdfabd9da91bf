// Package quiver is an in-memory toolkit for building and querying graphs
// over arbitrary comparable vertex types, with the classic scheduling and
// traversal algorithms built on top.
//
// What quiver gives you:
//
//   - core/     — the generic Graph and Weighted contracts, sentinel errors,
//     and the adjacency-list storage engine
//   - matrix/   — the adjacency-matrix storage engine behind the same contract
//   - pqueue/   — a generic binary-heap priority queue with an injected
//     ordering predicate and decrease-key support
//   - bfs/      — breadth-first traversal and unweighted shortest paths
//   - dijkstra/ — single-source shortest paths on non-negative weights
//   - prim/     — minimum spanning trees for undirected weighted graphs
//
// The two storage engines are interchangeable: every algorithm is written
// against the core contracts, so the same call runs unmodified over a
// ListGraph or a MatrixGraph.
//
// Quick ASCII example:
//
//	A───B
//	│   │
//	C───D
//
// represents a square with four vertices and four edges; bfs.ShortestPath
// from A to D returns a two-edge path over either engine.
//
// The core is single-threaded by design: a graph instance and a running
// algorithm are exclusively owned by one logical caller. Embedding
// applications that share graphs across goroutines must serialize access
// themselves.
//
//	go get github.com/quivergraph/quiver
package quiver
