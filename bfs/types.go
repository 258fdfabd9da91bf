// Package bfs: options, result types, and sentinel errors for
// breadth-first search.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrWeightedGraph is returned when BFS is run on a weighted graph.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments. An invalid
// Option (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when Run is invoked.
type Option[V comparable] func(*Options[V])

// Options holds parameters and callbacks to customize BFS execution.
type Options[V comparable] struct {
	// OnVisit is called when visiting a vertex. If it returns an error,
	// the run aborts and propagates that error.
	OnVisit func(v V, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each traversed edge curr→neighbor.
	FilterNeighbor func(curr, neighbor V) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: no depth limit, no
// filtering, no-op visit hook.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		OnVisit:        func(V, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ V) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error from
// the callback stops the search.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth[V comparable](d int) Option[V] {
	return func(o *Options[V]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor[V comparable](fn func(curr, neighbor V) bool) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result[V comparable] struct {
	// Order lists vertices in visit sequence.
	Order []V

	// Depth maps each discovered vertex to its distance (in edges) from
	// the start.
	Depth map[V]int

	// Parent maps each discovered vertex to the vertex it was discovered
	// from. The start vertex has no entry: it is its own trivial
	// predecessor.
	Parent map[V]V

	start V
}

// PathTo reconstructs the start→dest path by walking Parent links backward
// from dest. The boolean is false when dest was never discovered —
// a legitimate "no path" answer, not an error. PathTo(start) returns the
// single-vertex path.
func (r *Result[V]) PathTo(dest V) ([]V, bool) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, false
	}

	// Walk backward, then reverse in place.
	path := []V{dest}
	for cur := dest; cur != r.start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
