package bfs

import (
	"fmt"

	"github.com/quivergraph/quiver/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state for a single run.
type walker[V comparable] struct {
	graph   core.Graph[V]
	opts    Options[V]
	queue   []queueItem[V]
	visited map[V]bool
	res     *Result[V]
}

// Run performs breadth-first search on g starting from start, applying any
// number of functional Options. The FIFO frontier guarantees vertices are
// discovered in non-decreasing edge distance; each newly discovered vertex
// records the vertex it was discovered from.
//
// Returns ErrGraphNil or core.ErrVertexNotFound for invalid input,
// ErrWeightedGraph for weighted graphs, ErrOptionViolation for bad options,
// ErrNeighbors for graph failures, or any user-supplied hook error.
func Run[V comparable](g core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// Build options and catch invalid ones immediately.
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(start) {
		return nil, fmt.Errorf("bfs: start vertex: %w", core.ErrVertexNotFound)
	}
	// BFS distance is an edge count; weighted graphs belong to dijkstra.
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := g.VertexCount()
	w := &walker[V]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem[V], 0, n),
		visited: make(map[V]bool, n),
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
			start:  start,
		},
	}

	// Seed the frontier: the start is its own trivial predecessor, so it
	// gets a Depth entry but no Parent entry.
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[V]{v: start, depth: 0})

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// ShortestPath returns the fewest-edge path from start to end over g.
// The boolean is false when end is unreachable from start ("no path" is an
// expected answer, not a fault); start == end yields the single-vertex
// path. Returns core.ErrVertexNotFound if either endpoint is absent.
func ShortestPath[V comparable](g core.Graph[V], start, end V) ([]V, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if !g.HasVertex(end) {
		return nil, false, fmt.Errorf("bfs: end vertex: %w", core.ErrVertexNotFound)
	}

	res, err := Run(g, start)
	if err != nil {
		return nil, false, err
	}

	path, ok := res.PathTo(end)

	return path, ok, nil
}

// loop processes the frontier until it empties or a hook aborts.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at depth %d: %w", item.depth, err)
		}

		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors retrieves item's neighbors, applies filtering and
// MaxDepth, and enqueues each unseen neighbor with item as its parent.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) error {
	neighbors, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighbors, err)
	}

	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		if w.visited[nbr] {
			continue
		}

		w.visited[nbr] = true
		w.res.Depth[nbr] = nextDepth
		w.res.Parent[nbr] = item.v
		w.queue = append(w.queue, queueItem[V]{v: nbr, depth: nextDepth})
	}

	return nil
}
