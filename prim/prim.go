package prim

import (
	"fmt"

	"github.com/quivergraph/quiver/core"
	"github.com/quivergraph/quiver/pqueue"
)

// MinimumSpanningTree computes an MST of g with Prim's algorithm.
//
// The graph must be undirected, weighted, and connected; otherwise the call
// fails with ErrInvalidGraph or ErrDisconnected. A root supplied with
// WithRoot must exist (core.ErrVertexNotFound).
//
// Runs in O(E log E) time and O(V + E) space.
func MinimumSpanningTree[V comparable](g core.Weighted[V], opts ...Option[V]) (*Tree[V], error) {
	if g == nil || g.Directed() || !g.Weighted() {
		return nil, ErrInvalidGraph
	}
	var o options[V]
	for _, opt := range opts {
		opt(&o)
	}

	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, ErrDisconnected
	}

	root := vertices[0]
	if o.hasRoot {
		if !g.HasVertex(o.root) {
			return nil, fmt.Errorf("%w: root %v", core.ErrVertexNotFound, o.root)
		}
		root = o.root
	}

	b := &builder[V]{
		g:       g,
		inTree:  make(map[V]bool, len(vertices)),
		tree:    &Tree[V]{Edges: make([]core.Edge[V], 0, len(vertices)-1)},
		pq:      pqueue.New(func(a, b core.Edge[V]) bool { return a.Weight < b.Weight }),
		pending: len(vertices) - 1,
	}
	if err := b.grow(root); err != nil {
		return nil, err
	}
	return b.tree, nil
}

// builder carries the state shared by one MinimumSpanningTree run.
type builder[V comparable] struct {
	g       core.Weighted[V]
	inTree  map[V]bool
	tree    *Tree[V]
	pq      *pqueue.Queue[core.Edge[V]]
	pending int // tree edges still to adopt
}

// grow runs the main loop: adopt the lowest-weight crossing candidate,
// discard stale candidates whose destination already joined (lazy deletion),
// and stop once pending hits zero. Queue exhaustion before that means the
// remaining vertices are unreachable from the root.
func (b *builder[V]) grow(root V) error {
	if err := b.absorb(root); err != nil {
		return err
	}
	for b.pending > 0 {
		candidate, ok := b.pq.Pop()
		if !ok {
			return ErrDisconnected
		}
		if b.inTree[candidate.To] {
			continue // stale: destination adopted via a cheaper edge
		}
		b.tree.Edges = append(b.tree.Edges, candidate)
		b.tree.TotalWeight += candidate.Weight
		b.pending--
		if err := b.absorb(candidate.To); err != nil {
			return err
		}
	}
	return nil
}

// absorb marks v as part of the tree and pushes each edge from v to a
// not-yet-included neighbor as a candidate.
func (b *builder[V]) absorb(v V) error {
	b.inTree[v] = true
	neighbors, err := b.g.Neighbors(v)
	if err != nil {
		return fmt.Errorf("prim: neighbors of %v: %w", v, err)
	}
	for _, u := range neighbors {
		if b.inTree[u] {
			continue
		}
		w, present, err := b.g.Weight(v, u)
		if err != nil {
			return fmt.Errorf("prim: weight of %v-%v: %w", v, u, err)
		}
		if !present {
			return fmt.Errorf("prim: weight of %v-%v: %w", v, u, core.ErrEdgeNotFound)
		}
		b.pq.Push(core.Edge[V]{From: v, To: u, Weight: w})
	}
	return nil
}
