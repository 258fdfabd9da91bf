// Package dijkstra: sentinel errors and the Path result type.
package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not constructed as
	// weighted; Dijkstra needs edge weights to order its frontier.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	// Dijkstra's greedy finalization is only correct on non-negative
	// weights, so the run fails fast before touching the frontier.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Path is a reconstructed source→target route.
type Path[V comparable] struct {
	// Vertices lists the route in order, source first, target last.
	Vertices []V

	// Weight is the total weight along the route.
	Weight float64
}
