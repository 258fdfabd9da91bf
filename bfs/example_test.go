package bfs_test

import (
	"fmt"

	"github.com/quivergraph/quiver/bfs"
	"github.com/quivergraph/quiver/core"
)

// ExampleShortestPath finds the fewest-hop route across a small relay
// network with two competing routes.
func ExampleShortestPath() {
	g := core.NewListGraph[string]()
	for _, v := range []string{"A", "B", "C", "D", "E", "K"} {
		_ = g.AddVertex(v)
	}
	// Route 1: A-B-C-D-K (4 hops). Route 2: A-E-K (2 hops).
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "D")
	_ = g.AddEdge("D", "K")
	_ = g.AddEdge("A", "E")
	_ = g.AddEdge("E", "K")

	path, ok, _ := bfs.ShortestPath(g, "A", "K")
	fmt.Println(ok, path)
	// Output:
	// true [A E K]
}

// ExampleRun_withMaxDepth limits the traversal radius to one hop.
func ExampleRun_withMaxDepth() {
	g := core.NewListGraph[string]()
	for _, v := range []string{"hub", "a", "b", "far"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("hub", "a")
	_ = g.AddEdge("hub", "b")
	_ = g.AddEdge("a", "far")

	res, _ := bfs.Run(g, "hub", bfs.WithMaxDepth[string](1))
	fmt.Println(res.Order)
	// Output:
	// [hub a b]
}
