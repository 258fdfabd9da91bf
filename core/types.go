// File: types.go
// Role: Shared contracts, sentinel errors, and the Edge value type used by
//       every storage engine and algorithm in the module.
package core

import "errors"

// Sentinel errors for graph operations. Engines must return these exact
// sentinels (optionally wrapped with %w for context) so callers can match
// them with errors.Is.
var (
	// ErrVertexExists indicates AddVertex was called with a vertex that is
	// already a member. The graph is not mutated.
	ErrVertexExists = errors.New("core: vertex already present")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates RemoveEdge referenced an edge that does not exist.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight was offered to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")
)

// Edge is an ordered pair of vertices, optionally carrying a weight.
// For unweighted graphs Weight is always 0. Undirected engines report each
// edge once from Edges(); the From/To orientation of that single report is
// arbitrary but stable for a given graph state.
type Edge[V comparable] struct {
	// From is the source vertex.
	From V

	// To is the destination vertex.
	To V

	// Weight is the cost of the edge. Zero for unweighted graphs.
	Weight float64
}

// Graph is the abstract capability set all concrete storage engines
// implement. V is the caller-supplied vertex identity: any comparable type
// (string, int, small struct). Vertices are unique within a graph; the
// uniqueness invariant is enforced at insertion time.
type Graph[V comparable] interface {
	// Directed reports whether edges are one-way facts. For undirected
	// graphs edge membership is symmetric: HasEdge(u,v) == HasEdge(v,u).
	Directed() bool

	// Weighted reports whether edges carry weights. Unweighted engines
	// reject non-zero weights with ErrBadWeight.
	Weighted() bool

	// Vertices returns all vertices in insertion order. O(V).
	Vertices() []V

	// VertexCount returns the number of vertices. O(1).
	VertexCount() int

	// Edges returns all edges. Undirected graphs report each pair exactly
	// once. O(E) for list engines, O(V^2) for matrix engines.
	Edges() []Edge[V]

	// HasVertex reports whether v is a member. Never fails.
	HasVertex(v V) bool

	// AddVertex inserts a new, disconnected vertex.
	// Returns ErrVertexExists if v is already a member; no mutation occurs
	// on failure.
	AddVertex(v V) error

	// RemoveVertex removes v and every edge touching it.
	// Returns ErrVertexNotFound if v is absent.
	RemoveVertex(v V) error

	// HasEdge reports whether the edge from→to exists.
	// Returns ErrVertexNotFound if either endpoint is absent; otherwise the
	// query never fails.
	HasEdge(from, to V) (bool, error)

	// Neighbors returns all vertices directly reachable from v by one edge
	// traversal, in edge-insertion order.
	// Returns ErrVertexNotFound if v is absent.
	Neighbors(v V) ([]V, error)

	// AddEdge inserts the edge from→to (both directions for undirected
	// graphs). Returns ErrVertexNotFound if either endpoint is absent.
	// Adding an edge that already exists is a no-op for unweighted graphs.
	AddEdge(from, to V) error

	// RemoveEdge deletes the edge from→to (both directions for undirected
	// graphs). Returns ErrVertexNotFound if either endpoint is absent,
	// ErrEdgeNotFound if the edge does not exist. Failed removals never
	// mutate the graph.
	RemoveEdge(from, to V) error
}

// Weighted extends Graph with weight-carrying edges. Engines implement it
// when constructed with WithWeighted(); algorithms gate on Weighted()
// before trusting edge weights.
type Weighted[V comparable] interface {
	Graph[V]

	// AddWeightedEdge inserts the edge from→to with the given weight.
	// Re-adding an existing edge overwrites its prior weight
	// (last-write-wins). Returns ErrVertexNotFound if either endpoint is
	// absent, ErrBadWeight on an unweighted graph with weight != 0.
	AddWeightedEdge(from, to V, weight float64) error

	// Weight returns the stored weight of from→to. The boolean is false
	// when no such edge exists (a legitimate answer, not an error).
	// Returns ErrVertexNotFound if either endpoint is absent.
	Weight(from, to V) (float64, bool, error)

	// TotalWeight returns the sum of all edge weights. Any simple path's
	// weight is bounded by it, so TotalWeight()+1 strictly exceeds every
	// finite path cost and serves as a safe infinity for shortest-path
	// initialization. O(E).
	TotalWeight() float64
}

// NeighborsByScan derives the neighbor set of v from Vertices() and
// HasEdge() alone, in O(V). It is the generic default for engines without a
// native adjacency index; both ListGraph and MatrixGraph override it with
// cheaper natives, so this exists mainly for third-party Graph
// implementations and cross-checks in tests.
func NeighborsByScan[V comparable](g Graph[V], v V) ([]V, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}

	var out []V
	for _, u := range g.Vertices() {
		ok, err := g.HasEdge(v, u)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, u)
		}
	}

	return out, nil
}
