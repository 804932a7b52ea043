package algorithms

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dd0wney/graphmetrics/pkg/graph"
)

func TestGirvanNewman_EmptyGraph(t *testing.T) {
	g, err := graph.ReadEdgeList(strings.NewReader(""), graph.Undirected)
	if err != nil {
		t.Fatalf("ReadEdgeList failed: %v", err)
	}

	_, err = GirvanNewman(g, nil)
	if !errors.Is(err, graph.ErrEmptyGraph) {
		t.Errorf("Expected ErrEmptyGraph, got %v", err)
	}
}

func TestGirvanNewman_BridgeRemovedFirst(t *testing.T) {
	g := twoTrianglesWithBridge(t)

	result, err := GirvanNewman(g, nil)
	if err != nil {
		t.Fatalf("GirvanNewman failed: %v", err)
	}

	if len(result.Steps) == 0 {
		t.Fatal("Expected at least one removal step")
	}
	if result.Steps[0].Removed != (EdgeKey{2, 3}) {
		t.Errorf("Expected bridge (2,3) removed first, got %v", result.Steps[0].Removed)
	}

	wantPartition := Partition{{0, 1, 2}, {3, 4, 5}}
	if !reflect.DeepEqual(result.Steps[0].Partition, wantPartition) {
		t.Errorf("Expected two triangles after bridge removal, got %v",
			result.Steps[0].Partition)
	}
}

func TestGirvanNewman_ModularityPicksTriangles(t *testing.T) {
	g := twoTrianglesWithBridge(t)

	result, err := GirvanNewman(g, ModularityJudge(g))
	if err != nil {
		t.Fatalf("GirvanNewman failed: %v", err)
	}

	want := Partition{{0, 1, 2}, {3, 4, 5}}
	if !reflect.DeepEqual(result.Best, want) {
		t.Errorf("Expected the two triangles as best partition, got %v", result.Best)
	}

	// Q for two clean triangles over m=7: 12/14 - 2*(7/14)^2
	wantQ := 12.0/14.0 - 0.5
	if !almostEqual(result.BestScore, wantQ, 1e-9) {
		t.Errorf("Expected modularity %f, got %f", wantQ, result.BestScore)
	}
}

func TestGirvanNewman_RunsToEdgeExhaustion(t *testing.T) {
	g := pathGraph(t, 4)

	result, err := GirvanNewman(g, nil)
	if err != nil {
		t.Fatalf("GirvanNewman failed: %v", err)
	}

	if len(result.Steps) != 3 {
		t.Fatalf("Expected 3 removal steps for 3 edges, got %d", len(result.Steps))
	}

	// Final partition is all singletons
	final := result.Steps[len(result.Steps)-1].Partition
	if len(final) != 4 {
		t.Errorf("Expected 4 singleton communities, got %d", len(final))
	}
	for _, community := range final {
		if len(community) != 1 {
			t.Errorf("Expected singleton, got %v", community)
		}
	}
}

func TestGirvanNewman_Deterministic(t *testing.T) {
	// A 4-cycle is fully symmetric, so every edge ties; the lowest canonical
	// pair must win every time
	g := newTestGraph(t, graph.Undirected,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{0, 3},
	)

	first, err := GirvanNewman(g, nil)
	if err != nil {
		t.Fatalf("GirvanNewman failed: %v", err)
	}
	second, err := GirvanNewman(g, nil)
	if err != nil {
		t.Fatalf("GirvanNewman failed: %v", err)
	}

	if first.Steps[0].Removed != (EdgeKey{0, 1}) {
		t.Errorf("Expected tie-break to pick (0,1), got %v", first.Steps[0].Removed)
	}
	for i := range first.Steps {
		if first.Steps[i].Removed != second.Steps[i].Removed {
			t.Errorf("Step %d: removal order differs between runs: %v vs %v",
				i, first.Steps[i].Removed, second.Steps[i].Removed)
		}
	}
}

func TestGirvanNewman_OriginalGraphUntouched(t *testing.T) {
	g := twoTrianglesWithBridge(t)
	edgesBefore := g.NumEdges()

	if _, err := GirvanNewman(g, nil); err != nil {
		t.Fatalf("GirvanNewman failed: %v", err)
	}

	if g.NumEdges() != edgesBefore {
		t.Error("Detection must not mutate the canonical graph")
	}
	if g.Degree(2) != 3 {
		t.Errorf("Expected node 2 degree 3 after detection, got %d", g.Degree(2))
	}
}

func TestModularity_EdgelessGraph(t *testing.T) {
	g := newTestGraph(t, graph.Undirected)

	if q := Modularity(g, Partition{}); q != 0 {
		t.Errorf("Expected 0 modularity for edgeless graph, got %f", q)
	}
}

func TestModularity_SingleCommunityIsZero(t *testing.T) {
	// All nodes in one community: Q = 2m/2m - (2m/2m)^2 = 0
	g := twoTrianglesWithBridge(t)

	q := Modularity(g, Partition{{0, 1, 2, 3, 4, 5}})
	if !almostEqual(q, 0, 1e-9) {
		t.Errorf("Expected 0 modularity for the trivial partition, got %f", q)
	}
}

func TestModularity_PureFunction(t *testing.T) {
	g := twoTrianglesWithBridge(t)
	p := Partition{{0, 1, 2}, {3, 4, 5}}

	first := Modularity(g, p)
	second := Modularity(g, p)
	if first != second {
		t.Errorf("Modularity should be deterministic: %f vs %f", first, second)
	}
}
