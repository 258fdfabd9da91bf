package dijkstra

import (
	"fmt"

	"github.com/quivergraph/quiver/core"
	"github.com/quivergraph/quiver/pqueue"
)

// node pairs a vertex with its current distance estimate inside the queue.
type node[V comparable] struct {
	v    V
	dist float64
}

// ShortestPath computes the minimum-weight path from source to target.
// The boolean is false when target is unreachable ("no path" is an expected
// answer, not a fault); source == target yields the trivial single-vertex
// path of weight 0.
//
// Returns ErrGraphNil, ErrUnweightedGraph, core.ErrVertexNotFound (absent
// source or target), or ErrNegativeWeight.
func ShortestPath[V comparable](g core.Weighted[V], source, target V) (Path[V], bool, error) {
	var zero Path[V]
	if g == nil {
		return zero, false, ErrGraphNil
	}
	if !g.HasVertex(target) {
		return zero, false, fmt.Errorf("dijkstra: target vertex: %w", core.ErrVertexNotFound)
	}

	dist, parent, err := Distances(g, source)
	if err != nil {
		return zero, false, err
	}

	total, reached := dist[target]
	if !reached {
		return zero, false, nil
	}

	// Walk parent links backward from target, then reverse in place.
	path := []V{target}
	for cur := target; cur != source; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Path[V]{Vertices: path, Weight: total}, true, nil
}

// Distances computes shortest distances from source to every reachable
// vertex. The first map holds finalized distances, the second the
// predecessor of each reached vertex on its shortest path (the source has
// no entry). Unreached vertices appear in neither map.
//
// Returns ErrGraphNil, ErrUnweightedGraph, core.ErrVertexNotFound, or
// ErrNegativeWeight.
func Distances[V comparable](g core.Weighted[V], source V) (map[V]float64, map[V]V, error) {
	// 1) Validate inputs in a fixed order.
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("dijkstra: source vertex: %w", core.ErrVertexNotFound)
	}

	// 2) Pre-scan all edges for negative weights; fail fast with context.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 3) Initialize the runner and execute the main loop.
	r := newRunner(g, source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	// 4) Report only finalized, reachable vertices; the safe-infinity
	//    estimates of unreached vertices are working state, not answers.
	out := make(map[V]float64, len(r.finished))
	for v := range r.finished {
		out[v] = r.dist[v]
	}

	return out, r.parent, nil
}

// runner holds the mutable state for a single execution.
type runner[V comparable] struct {
	g        core.Weighted[V]
	inf      float64 // TotalWeight()+1: exceeds any finite path cost
	dist     map[V]float64
	parent   map[V]V
	finished map[V]bool
	pq       *pqueue.Queue[node[V]]
}

// newRunner seeds every vertex into the frontier with the safe-infinity
// estimate and the source with 0, bulk-heapified in one O(V) pass.
func newRunner[V comparable](g core.Weighted[V], source V) *runner[V] {
	vertices := g.Vertices()
	n := len(vertices)

	r := &runner[V]{
		g:        g,
		inf:      g.TotalWeight() + 1,
		dist:     make(map[V]float64, n),
		parent:   make(map[V]V, n),
		finished: make(map[V]bool, n),
	}

	seed := make([]node[V], 0, n)
	for _, v := range vertices {
		d := r.inf
		if v == source {
			d = 0
		}
		r.dist[v] = d
		seed = append(seed, node[V]{v: v, dist: d})
	}
	r.pq = pqueue.NewFromSlice(seed, func(a, b node[V]) bool { return a.dist < b.dist })

	return r
}

// process repeatedly extracts the minimum-distance pending vertex,
// finalizes it, and relaxes its outgoing edges. Once the minimum remaining
// estimate is still the safe infinity, everything left is unreachable and
// the loop stops.
func (r *runner[V]) process() error {
	for {
		item, ok := r.pq.Pop()
		if !ok || item.dist >= r.inf {
			return nil
		}

		// unseen/frontier → finished; the estimate is now final and the
		// vertex never re-enters the queue.
		r.finished[item.v] = true

		if err := r.relax(item.v); err != nil {
			return err
		}
	}
}

// relax examines each edge out of u and improves neighbor estimates.
// Every improvement is reflected into the queue with a decrease-key so the
// extraction order stays consistent with the updated estimates.
func (r *runner[V]) relax(u V) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		// u was confirmed present at seed time; surface engine failures
		// rather than asserting success.
		return fmt.Errorf("dijkstra: neighbors of %v: %w", u, err)
	}

	for _, v := range neighbors {
		if r.finished[v] {
			continue // finalized vertices never move backward
		}

		w, present, err := r.g.Weight(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: weight %v→%v: %w", u, v, err)
		}
		if !present {
			// A neighbor without a stored weight would mean the engine's
			// adjacency and weight table disagree.
			return fmt.Errorf("dijkstra: weight %v→%v: %w", u, v, core.ErrEdgeNotFound)
		}

		newDist := r.dist[u] + w
		if newDist >= r.dist[v] {
			continue // not a strict improvement
		}

		r.dist[v] = newDist
		r.parent[v] = u

		// Decrease-key: the new estimate is strictly smaller, so the queue
		// accepts it; the stale entry is replaced, not duplicated.
		target := v
		if err := r.pq.IncreasePriority(
			func(n node[V]) bool { return n.v == target },
			node[V]{v: v, dist: newDist},
		); err != nil {
			return fmt.Errorf("dijkstra: decrease-key for %v: %w", v, err)
		}
	}

	return nil
}
