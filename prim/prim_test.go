package prim_test

import (
	"testing"

	"github.com/quivergraph/quiver/core"
	"github.com/quivergraph/quiver/matrix"
	"github.com/quivergraph/quiver/prim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// undirectedEngines returns one fresh undirected weighted instance per engine.
func undirectedEngines() map[string]core.Weighted[string] {
	return map[string]core.Weighted[string]{
		"list":   core.NewListGraph[string](core.WithWeighted()),
		"matrix": matrix.New[string](matrix.WithWeighted()),
	}
}

type edge struct {
	u, v string
	w    float64
}

func build(t *testing.T, g core.Weighted[string], vertices []string, edges []edge) {
	t.Helper()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		require.NoError(t, g.AddWeightedEdge(e.u, e.v, e.w))
	}
}

// checkSpanningTree asserts the structural MST properties: exactly |V|−1
// edges, every vertex covered, and no cycle (verified by union-find).
func checkSpanningTree(t *testing.T, tree *prim.Tree[string], vertices []string) {
	t.Helper()
	require.Len(t, tree.Edges, len(vertices)-1)

	parent := make(map[string]string, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}
	var find func(string) string
	find = func(v string) string {
		if parent[v] != v {
			parent[v] = find(parent[v])
		}
		return parent[v]
	}
	covered := make(map[string]bool, len(vertices))
	for _, e := range tree.Edges {
		ru, rv := find(e.From), find(e.To)
		require.NotEqual(t, ru, rv, "tree edge %v-%v closes a cycle", e.From, e.To)
		parent[ru] = rv
		covered[e.From] = true
		covered[e.To] = true
	}
	for _, v := range vertices {
		assert.True(t, covered[v], "vertex %v not spanned", v)
	}
}

// bruteForceMST returns the minimal total weight over every spanning tree,
// by enumerating all |V|−1 sized edge subsets.
func bruteForceMST(vertices []string, edges []edge) float64 {
	n := len(vertices)
	best := -1.0
	pick := make([]edge, 0, n-1)

	var connected func() bool
	connected = func() bool {
		parent := make(map[string]string, n)
		for _, v := range vertices {
			parent[v] = v
		}
		var find func(string) string
		find = func(v string) string {
			if parent[v] != v {
				parent[v] = find(parent[v])
			}
			return parent[v]
		}
		components := n
		for _, e := range pick {
			ru, rv := find(e.u), find(e.v)
			if ru != rv {
				parent[ru] = rv
				components--
			}
		}
		return components == 1
	}

	var choose func(from int)
	choose = func(from int) {
		if len(pick) == n-1 {
			if !connected() {
				return
			}
			total := 0.0
			for _, e := range pick {
				total += e.w
			}
			if best < 0 || total < best {
				best = total
			}
			return
		}
		for i := from; i < len(edges); i++ {
			pick = append(pick, edges[i])
			choose(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	choose(0)
	return best
}

// TestMinimumSpanningTree_Triangle: the two cheapest sides win.
func TestMinimumSpanningTree_Triangle(t *testing.T) {
	vertices := []string{"a", "b", "c"}
	edges := []edge{{"a", "b", 1}, {"b", "c", 2}, {"a", "c", 4}}

	for name, g := range undirectedEngines() {
		t.Run(name, func(t *testing.T) {
			build(t, g, vertices, edges)

			tree, err := prim.MinimumSpanningTree(g)
			require.NoError(t, err)
			assert.Equal(t, 3.0, tree.TotalWeight)
			checkSpanningTree(t, tree, vertices)
		})
	}
}

// TestMinimumSpanningTree_MatchesBruteForce cross-checks the algorithm
// against exhaustive spanning-tree enumeration on a six-vertex graph that
// has several non-optimal spanning trees.
func TestMinimumSpanningTree_MatchesBruteForce(t *testing.T) {
	vertices := []string{"a", "b", "c", "d", "e", "f"}
	edges := []edge{
		{"a", "b", 4}, {"a", "c", 2},
		{"b", "c", 1}, {"b", "d", 5},
		{"c", "d", 8}, {"c", "e", 10},
		{"d", "e", 2}, {"d", "f", 6},
		{"e", "f", 3},
	}
	want := bruteForceMST(vertices, edges)
	require.Positive(t, want, "fixture must be connected")

	for name, g := range undirectedEngines() {
		t.Run(name, func(t *testing.T) {
			build(t, g, vertices, edges)

			tree, err := prim.MinimumSpanningTree(g)
			require.NoError(t, err)
			assert.Equal(t, want, tree.TotalWeight)
			checkSpanningTree(t, tree, vertices)
		})
	}
}

// TestMinimumSpanningTree_RootChoice: any root yields the same total weight.
func TestMinimumSpanningTree_RootChoice(t *testing.T) {
	vertices := []string{"a", "b", "c", "d"}
	edges := []edge{
		{"a", "b", 1}, {"b", "c", 2}, {"c", "d", 1}, {"a", "d", 5}, {"b", "d", 4},
	}
	for name, g := range undirectedEngines() {
		t.Run(name, func(t *testing.T) {
			build(t, g, vertices, edges)
			for _, root := range vertices {
				tree, err := prim.MinimumSpanningTree(g, prim.WithRoot(root))
				require.NoError(t, err)
				assert.Equal(t, 4.0, tree.TotalWeight, "root %v", root)
				checkSpanningTree(t, tree, vertices)
			}
		})
	}
}

func TestMinimumSpanningTree_Disconnected(t *testing.T) {
	for name, g := range undirectedEngines() {
		t.Run(name, func(t *testing.T) {
			build(t, g,
				[]string{"a", "b", "c", "d"},
				[]edge{{"a", "b", 1}, {"c", "d", 1}})

			tree, err := prim.MinimumSpanningTree(g)
			require.ErrorIs(t, err, prim.ErrDisconnected)
			assert.Nil(t, tree)
		})
	}
}

func TestMinimumSpanningTree_SingleVertex(t *testing.T) {
	for name, g := range undirectedEngines() {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, g.AddVertex("only"))

			tree, err := prim.MinimumSpanningTree(g)
			require.NoError(t, err)
			assert.Empty(t, tree.Edges)
			assert.Zero(t, tree.TotalWeight)
		})
	}
}

func TestMinimumSpanningTree_Validation(t *testing.T) {
	t.Run("nil graph", func(t *testing.T) {
		_, err := prim.MinimumSpanningTree[string](nil)
		require.ErrorIs(t, err, prim.ErrInvalidGraph)
	})

	t.Run("directed graph", func(t *testing.T) {
		g := core.NewListGraph[string](core.WithDirected(true), core.WithWeighted())
		_, err := prim.MinimumSpanningTree[string](g)
		require.ErrorIs(t, err, prim.ErrInvalidGraph)
	})

	t.Run("unweighted graph", func(t *testing.T) {
		g := core.NewListGraph[string]()
		_, err := prim.MinimumSpanningTree[string](g)
		require.ErrorIs(t, err, prim.ErrInvalidGraph)
	})

	t.Run("empty graph", func(t *testing.T) {
		g := core.NewListGraph[string](core.WithWeighted())
		_, err := prim.MinimumSpanningTree[string](g)
		require.ErrorIs(t, err, prim.ErrDisconnected)
	})

	t.Run("unknown root", func(t *testing.T) {
		g := core.NewListGraph[string](core.WithWeighted())
		require.NoError(t, g.AddVertex("a"))
		_, err := prim.MinimumSpanningTree(g, prim.WithRoot("ghost"))
		require.ErrorIs(t, err, core.ErrVertexNotFound)
	})
}
