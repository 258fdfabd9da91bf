// File: adjacency_matrix.go
// Role: Graph, the dense adjacency-matrix storage engine.
//
// Storage model:
//   - index/byIndex form the vertex↔index bijection.
//   - cells is a dense size×size grid; cells[i][j].present is the edge bit
//     and cells[i][j].weight the stored weight (0 for unweighted graphs).
//   - Undirected state lives only in the canonical (min,max) cell.
package matrix

import "github.com/quivergraph/quiver/core"

// Option configures a matrix graph before creation.
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

// cell is one matrix entry. The presence bit exists so that a legitimate
// zero-weight edge is not conflated with absence.
type cell struct {
	present bool
	weight  float64
}

// Graph is the adjacency-matrix engine. The zero value is not usable;
// construct with New. Directedness and weighting are immutable after
// construction.
type Graph[V comparable] struct {
	directed bool
	weighted bool

	index   map[V]int // vertex → row/column
	byIndex []V       // row/column → vertex
	cells   [][]cell  // dense size×size grid
}

// New creates an empty adjacency-matrix graph. By default it is undirected
// and unweighted; use WithDirected / WithWeighted to change that.
// Complexity: O(1).
func New[V comparable](opts ...Option) *Graph[V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[V]{
		directed: o.directed,
		weighted: o.weighted,
		index:    make(map[V]int),
	}
}

// Directed reports whether edges are one-way facts.
func (g *Graph[V]) Directed() bool { return g.directed }

// Weighted reports whether edges carry weights.
func (g *Graph[V]) Weighted() bool { return g.weighted }

// VertexCount returns the number of vertices (the matrix dimension). O(1).
func (g *Graph[V]) VertexCount() int { return len(g.byIndex) }

// Vertices returns all vertices in index order (which is insertion order). O(V).
func (g *Graph[V]) Vertices() []V {
	out := make([]V, len(g.byIndex))
	copy(out, g.byIndex)

	return out
}

// HasVertex reports whether v is a member. O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.index[v]

	return ok
}

// AddVertex inserts a new, disconnected vertex: a fresh column is appended
// to every existing row and a fresh empty row to the grid, and the bijection
// is extended with the next free index. Returns core.ErrVertexExists if v is
// already a member; no mutation occurs on failure. O(V^2) worst case
// (row reallocation).
func (g *Graph[V]) AddVertex(v V) error {
	if _, exists := g.index[v]; exists {
		return core.ErrVertexExists
	}

	n := len(g.byIndex)
	g.index[v] = n
	g.byIndex = append(g.byIndex, v)

	for i := range g.cells {
		g.cells[i] = append(g.cells[i], cell{})
	}
	g.cells = append(g.cells, make([]cell, n+1))

	return nil
}

// RemoveVertex removes v and every edge touching it: its row and column are
// deleted and every higher index is renumbered down by one, keeping the
// bijection consistent. Returns core.ErrVertexNotFound if v is absent.
// O(V^2).
func (g *Graph[V]) RemoveVertex(v V) error {
	at, exists := g.index[v]
	if !exists {
		return core.ErrVertexNotFound
	}

	// Drop row at, then column at from every remaining row.
	g.cells = append(g.cells[:at], g.cells[at+1:]...)
	for i := range g.cells {
		g.cells[i] = append(g.cells[i][:at], g.cells[i][at+1:]...)
	}

	// Renumber: indices above the removed one shift down; relative order is
	// preserved, so canonical (min,max) storage stays consistent.
	delete(g.index, v)
	g.byIndex = append(g.byIndex[:at], g.byIndex[at+1:]...)
	for i := at; i < len(g.byIndex); i++ {
		g.index[g.byIndex[i]] = i
	}

	return nil
}

// HasEdge reports whether the edge from→to exists. Returns
// core.ErrVertexNotFound if either endpoint is absent. O(1).
func (g *Graph[V]) HasEdge(from, to V) (bool, error) {
	i, j, err := g.locate(from, to)
	if err != nil {
		return false, err
	}

	return g.cells[i][j].present, nil
}

// Neighbors returns all vertices directly reachable from v by one edge, in
// index order. For undirected graphs the scan addresses the canonical cell
// of each pair. Returns core.ErrVertexNotFound if v is absent. O(V).
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	i, ok := g.index[v]
	if !ok {
		return nil, core.ErrVertexNotFound
	}

	var out []V
	for j := range g.byIndex {
		r, c := i, j
		if !g.directed && r > c {
			r, c = c, r
		}
		if g.cells[r][c].present {
			out = append(out, g.byIndex[j])
		}
	}

	return out, nil
}

// AddEdge inserts the edge from→to with zero weight. On a weighted graph
// this is shorthand for AddWeightedEdge(from, to, 0).
func (g *Graph[V]) AddEdge(from, to V) error {
	return g.AddWeightedEdge(from, to, 0)
}

// AddWeightedEdge inserts the edge from→to carrying weight, overwriting the
// stored weight when the edge already exists (last-write-wins; a no-op in
// effect for unweighted graphs). Returns core.ErrVertexNotFound if either
// endpoint is absent, core.ErrBadWeight if the graph is unweighted and
// weight != 0. O(1).
func (g *Graph[V]) AddWeightedEdge(from, to V, weight float64) error {
	i, j, err := g.locate(from, to)
	if err != nil {
		return err
	}
	if !g.weighted && weight != 0 {
		return core.ErrBadWeight
	}

	g.cells[i][j] = cell{present: true, weight: weight}

	return nil
}

// RemoveEdge deletes the edge from→to. Returns core.ErrVertexNotFound if
// either endpoint is absent, core.ErrEdgeNotFound if the edge does not
// exist; failed removals never mutate the grid. O(1).
func (g *Graph[V]) RemoveEdge(from, to V) error {
	i, j, err := g.locate(from, to)
	if err != nil {
		return err
	}
	if !g.cells[i][j].present {
		return core.ErrEdgeNotFound
	}

	g.cells[i][j] = cell{}

	return nil
}

// Edges returns all edges by scanning the grid: every cell for directed
// graphs, the canonical upper triangle (including the diagonal) for
// undirected ones. O(V^2).
func (g *Graph[V]) Edges() []core.Edge[V] {
	var out []core.Edge[V]
	for i := range g.cells {
		start := 0
		if !g.directed {
			start = i // canonical cells satisfy row ≤ col
		}
		for j := start; j < len(g.cells[i]); j++ {
			if c := g.cells[i][j]; c.present {
				out = append(out, core.Edge[V]{From: g.byIndex[i], To: g.byIndex[j], Weight: c.weight})
			}
		}
	}

	return out
}

// Weight returns the stored weight of from→to; the boolean is false when
// the edge is absent. Returns core.ErrVertexNotFound if either endpoint is
// absent. O(1).
func (g *Graph[V]) Weight(from, to V) (float64, bool, error) {
	i, j, err := g.locate(from, to)
	if err != nil {
		return 0, false, err
	}
	c := g.cells[i][j]

	return c.weight, c.present, nil
}

// TotalWeight returns the sum of all edge weights. Undirected edges occupy
// only their canonical cell, so a full-grid sum counts each edge once.
// O(V^2).
func (g *Graph[V]) TotalWeight() float64 {
	var total float64
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j].present {
				total += g.cells[i][j].weight
			}
		}
	}

	return total
}

// locate resolves both endpoints to grid coordinates, canonicalized to
// (min,max) for undirected graphs.
func (g *Graph[V]) locate(from, to V) (int, int, error) {
	i, ok := g.index[from]
	if !ok {
		return 0, 0, core.ErrVertexNotFound
	}
	j, ok := g.index[to]
	if !ok {
		return 0, 0, core.ErrVertexNotFound
	}
	if !g.directed && i > j {
		i, j = j, i
	}

	return i, j, nil
}
