// File: adjacency_list.go
// Role: ListGraph, the adjacency-list storage engine behind the Graph and
//       Weighted contracts.
//
// Storage model:
//   - adj maps each vertex to an ordered neighbor list; undirected edges
//     are appended to both endpoint lists.
//   - weights is a nested vertex→vertex→weight table populated in one
//     canonical direction per edge (the orientation the edge was first
//     added with); undirected lookups try both orientations.
//   - order preserves vertex insertion order for deterministic enumeration.
package core

// Option configures a storage engine before creation.
type Option func(*options)

type options struct {
	directed bool
	weighted bool
}

// WithDirected sets the graph's directedness
// (true = directed, false = undirected; undirected is the default).
func WithDirected(directed bool) Option {
	return func(o *options) { o.directed = directed }
}

// WithWeighted allows weight-carrying edges in the graph.
func WithWeighted() Option {
	return func(o *options) { o.weighted = true }
}

func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ListGraph is the adjacency-list engine. The zero value is not usable;
// construct with NewListGraph. Directedness and weighting are immutable
// after construction.
type ListGraph[V comparable] struct {
	directed bool
	weighted bool

	order   []V                 // vertex insertion order
	adj     map[V][]V           // vertex → ordered neighbor list
	weights map[V]map[V]float64 // canonical direction → weight
}

// NewListGraph creates an empty adjacency-list graph. By default it is
// undirected and unweighted; use WithDirected / WithWeighted to change that.
// Complexity: O(1).
func NewListGraph[V comparable](opts ...Option) *ListGraph[V] {
	o := gatherOptions(opts)

	return &ListGraph[V]{
		directed: o.directed,
		weighted: o.weighted,
		adj:      make(map[V][]V),
		weights:  make(map[V]map[V]float64),
	}
}

// Directed reports whether edges are one-way facts.
func (g *ListGraph[V]) Directed() bool { return g.directed }

// Weighted reports whether edges carry weights.
func (g *ListGraph[V]) Weighted() bool { return g.weighted }

// VertexCount returns the number of vertices. O(1).
func (g *ListGraph[V]) VertexCount() int { return len(g.order) }

// Vertices returns all vertices in insertion order. O(V).
func (g *ListGraph[V]) Vertices() []V {
	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// HasVertex reports whether v is a member. O(1).
func (g *ListGraph[V]) HasVertex(v V) bool {
	_, ok := g.adj[v]

	return ok
}

// AddVertex inserts a new, disconnected vertex with an empty neighbor list.
// Returns ErrVertexExists if v is already a member; the graph is untouched
// on failure. O(1) amortized.
func (g *ListGraph[V]) AddVertex(v V) error {
	if _, exists := g.adj[v]; exists {
		return ErrVertexExists
	}

	g.adj[v] = nil // empty neighbor list; created on demand
	g.order = append(g.order, v)

	return nil
}

// RemoveVertex removes v together with every edge touching it: v's own
// neighbor list goes away and v is spliced out of every other list.
// Returns ErrVertexNotFound if v is absent. O(V + E) worst case.
func (g *ListGraph[V]) RemoveVertex(v V) error {
	if _, exists := g.adj[v]; !exists {
		return ErrVertexNotFound
	}

	delete(g.adj, v)
	for u, list := range g.adj {
		g.adj[u] = spliceAll(list, v)
	}

	// Drop weight entries in both orientations.
	delete(g.weights, v)
	for _, inner := range g.weights {
		delete(inner, v)
	}

	for i, u := range g.order {
		if u == v {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return nil
}

// HasEdge reports whether the edge from→to exists. For undirected graphs
// membership is symmetric by construction, so scanning from's list is
// sufficient. Returns ErrVertexNotFound if either endpoint is absent.
// O(deg(from)).
func (g *ListGraph[V]) HasEdge(from, to V) (bool, error) {
	list, ok := g.adj[from]
	if !ok {
		return false, ErrVertexNotFound
	}
	if _, ok = g.adj[to]; !ok {
		return false, ErrVertexNotFound
	}

	for _, u := range list {
		if u == to {
			return true, nil
		}
	}

	return false, nil
}

// Neighbors returns a copy of v's neighbor list in edge-insertion order.
// Returns ErrVertexNotFound if v is absent. O(deg(v)).
func (g *ListGraph[V]) Neighbors(v V) ([]V, error) {
	list, ok := g.adj[v]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]V, len(list))
	copy(out, list)

	return out, nil
}

// AddEdge inserts the edge from→to with zero weight. On a weighted graph
// this is shorthand for AddWeightedEdge(from, to, 0).
func (g *ListGraph[V]) AddEdge(from, to V) error {
	return g.AddWeightedEdge(from, to, 0)
}

// AddWeightedEdge inserts the edge from→to carrying weight. Undirected
// graphs append to both endpoint lists (once for self-loops). Adding an
// existing edge is a no-op on unweighted graphs and a weight overwrite
// (last-write-wins) on weighted ones.
//
// Returns ErrVertexNotFound if either endpoint is absent, ErrBadWeight if
// the graph is unweighted and weight != 0. O(deg(from)) for the duplicate
// scan.
func (g *ListGraph[V]) AddWeightedEdge(from, to V, weight float64) error {
	if _, ok := g.adj[from]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.adj[to]; !ok {
		return ErrVertexNotFound
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}

	exists, _ := g.HasEdge(from, to)
	if exists {
		if g.weighted {
			g.setWeight(from, to, weight)
		}

		return nil // duplicate insertion is a documented no-op
	}

	g.adj[from] = append(g.adj[from], to)
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], from)
	}
	if g.weighted {
		g.setWeight(from, to, weight)
	}

	return nil
}

// RemoveEdge deletes the edge from→to, splicing both endpoint lists for
// undirected graphs. Returns ErrVertexNotFound if either endpoint is
// absent, ErrEdgeNotFound if the edge does not exist; failed removals never
// mutate the graph. O(deg(from) + deg(to)).
func (g *ListGraph[V]) RemoveEdge(from, to V) error {
	exists, err := g.HasEdge(from, to)
	if err != nil {
		return err
	}
	if !exists {
		return ErrEdgeNotFound
	}

	g.adj[from] = spliceAll(g.adj[from], to)
	if !g.directed && from != to {
		g.adj[to] = spliceAll(g.adj[to], from)
	}

	// The weight lives under exactly one orientation. Undirected graphs
	// clear both; directed graphs must not touch the independent reverse
	// arc's weight.
	if inner, ok := g.weights[from]; ok {
		delete(inner, to)
	}
	if !g.directed {
		if inner, ok := g.weights[to]; ok {
			delete(inner, from)
		}
	}

	return nil
}

// Edges returns all edges. Directed graphs emit one Edge per stored arc;
// undirected graphs emit each pair exactly once, oriented the way it is
// first encountered during the (deterministic) list walk. O(E).
func (g *ListGraph[V]) Edges() []Edge[V] {
	var out []Edge[V]
	if g.directed {
		for _, u := range g.order {
			for _, v := range g.adj[u] {
				out = append(out, Edge[V]{From: u, To: v, Weight: g.edgeWeight(u, v)})
			}
		}

		return out
	}

	seen := make(map[[2]V]struct{})
	for _, u := range g.order {
		for _, v := range g.adj[u] {
			if _, dup := seen[[2]V{v, u}]; dup {
				continue
			}
			if _, dup := seen[[2]V{u, v}]; dup {
				continue
			}
			seen[[2]V{u, v}] = struct{}{}
			out = append(out, Edge[V]{From: u, To: v, Weight: g.edgeWeight(u, v)})
		}
	}

	return out
}

// Weight returns the stored weight of from→to; the boolean is false when
// the edge is absent. Only one orientation is populated per undirected
// edge, so the lookup tries both. Returns ErrVertexNotFound if either
// endpoint is absent. O(1) expected.
func (g *ListGraph[V]) Weight(from, to V) (float64, bool, error) {
	if _, ok := g.adj[from]; !ok {
		return 0, false, ErrVertexNotFound
	}
	if _, ok := g.adj[to]; !ok {
		return 0, false, ErrVertexNotFound
	}

	if w, ok := g.weights[from][to]; ok {
		return w, true, nil
	}
	if !g.directed {
		if w, ok := g.weights[to][from]; ok {
			return w, true, nil
		}
	}

	return 0, false, nil
}

// TotalWeight returns the sum of all edge weights. Each edge is stored
// under one canonical orientation, so the nested table sums without
// double-counting. O(E).
func (g *ListGraph[V]) TotalWeight() float64 {
	var total float64
	for _, inner := range g.weights {
		for _, w := range inner {
			total += w
		}
	}

	return total
}

// setWeight writes weight under the orientation the edge is stored with,
// falling back to (from, to) for a brand-new edge.
func (g *ListGraph[V]) setWeight(from, to V, weight float64) {
	if _, ok := g.weights[from][to]; ok {
		g.weights[from][to] = weight

		return
	}
	if !g.directed {
		if _, ok := g.weights[to][from]; ok {
			g.weights[to][from] = weight

			return
		}
	}

	if g.weights[from] == nil {
		g.weights[from] = make(map[V]float64)
	}
	g.weights[from][to] = weight
}

// edgeWeight is the infallible internal weight lookup used by Edges();
// endpoints are known to exist by the time it runs.
func (g *ListGraph[V]) edgeWeight(from, to V) float64 {
	if !g.weighted {
		return 0
	}
	if w, ok := g.weights[from][to]; ok {
		return w
	}
	if !g.directed {
		if w, ok := g.weights[to][from]; ok {
			return w
		}
	}

	return 0
}

// spliceAll removes every occurrence of v from list in place.
func spliceAll[V comparable](list []V, v V) []V {
	out := list[:0]
	for _, u := range list {
		if u != v {
			out = append(out, u)
		}
	}

	return out
}
