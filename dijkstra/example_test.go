package dijkstra_test

import (
	"fmt"

	"github.com/quivergraph/quiver/core"
	"github.com/quivergraph/quiver/dijkstra"
)

// ExampleShortestPath routes across a small weighted city map where the
// direct road is more expensive than the detour.
func ExampleShortestPath() {
	g := core.NewListGraph[string](core.WithWeighted())
	for _, v := range []string{"home", "market", "bridge", "office"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddWeightedEdge("home", "office", 10) // direct but slow
	_ = g.AddWeightedEdge("home", "market", 2)
	_ = g.AddWeightedEdge("market", "bridge", 3)
	_ = g.AddWeightedEdge("bridge", "office", 1)

	path, ok, _ := dijkstra.ShortestPath(g, "home", "office")
	fmt.Println(ok, path.Vertices, path.Weight)
	// Output:
	// true [home market bridge office] 6
}
