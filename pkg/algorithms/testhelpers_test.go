package algorithms

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dd0wney/graphmetrics/pkg/graph"
)

// newTestGraph builds a graph from edge pairs.
func newTestGraph(t *testing.T, mode graph.Mode, edges ...[2]int) *graph.Graph {
	t.Helper()

	var b strings.Builder
	for _, e := range edges {
		fmt.Fprintf(&b, "%d %d\n", e[0], e[1])
	}

	g, err := graph.ReadEdgeList(strings.NewReader(b.String()), mode)
	if err != nil {
		t.Fatalf("Failed to build test graph: %v", err)
	}
	return g
}

// pathGraph builds the path 0-1-...-(k-1).
func pathGraph(t *testing.T, k int) *graph.Graph {
	t.Helper()

	edges := make([][2]int, 0, k-1)
	for i := 0; i < k-1; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	return newTestGraph(t, graph.Undirected, edges...)
}

// starGraph builds a star with the given center and leaf count.
func starGraph(t *testing.T, leaves int) *graph.Graph {
	t.Helper()

	edges := make([][2]int, 0, leaves)
	for i := 1; i <= leaves; i++ {
		edges = append(edges, [2]int{0, i})
	}
	return newTestGraph(t, graph.Undirected, edges...)
}

// twoTrianglesWithBridge builds triangles 0-1-2 and 3-4-5 joined by the
// bridge (2,3).
func twoTrianglesWithBridge(t *testing.T) *graph.Graph {
	t.Helper()

	return newTestGraph(t, graph.Undirected,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2},
		[2]int{3, 4}, [2]int{4, 5}, [2]int{3, 5},
		[2]int{2, 3},
	)
}

func almostEqual(a, b, tol float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= tol
}
