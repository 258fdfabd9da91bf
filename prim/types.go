// Package prim: sentinel errors, options, and the Tree result type.
package prim

import (
	"errors"

	"github.com/quivergraph/quiver/core"
)

// ErrInvalidGraph indicates that MST computation requires an undirected,
// weighted graph. Returned when the graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("prim: MST requires undirected, weighted graph")

// ErrDisconnected indicates that no spanning tree covers every vertex: the
// graph is empty, or the candidate queue exhausted before the tree reached
// |V|−1 edges.
var ErrDisconnected = errors.New("prim: graph is disconnected")

// Option configures MST computation.
type Option[V comparable] func(*options[V])

type options[V comparable] struct {
	root    V
	hasRoot bool
}

// WithRoot sets the vertex the tree grows from. The choice never changes
// the resulting total weight, only which equal-weight tree may be returned.
// Without it, growth starts from the first vertex of Vertices().
func WithRoot[V comparable](root V) Option[V] {
	return func(o *options[V]) {
		o.root = root
		o.hasRoot = true
	}
}

// Tree is a computed minimum spanning tree.
type Tree[V comparable] struct {
	// Edges lists the tree's edges in the order they were adopted.
	// A spanning tree of n vertices has exactly n−1 of them.
	Edges []core.Edge[V]

	// TotalWeight is the sum of the adopted edges' weights.
	TotalWeight float64
}
