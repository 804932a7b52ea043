package graph

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func workingFrom(t *testing.T, input string) *WorkingGraph {
	t.Helper()

	g, err := ReadEdgeList(strings.NewReader(input), Undirected)
	if err != nil {
		t.Fatalf("ReadEdgeList failed: %v", err)
	}
	return NewWorking(g)
}

func TestWorkingGraph_RemoveEdge(t *testing.T) {
	w := workingFrom(t, "0 1\n1 2\n")

	if !w.HasEdge(0, 1) || !w.HasEdge(1, 0) {
		t.Fatal("Expected edge (0,1) in both directions")
	}

	if err := w.RemoveEdge(0, 1); err != nil {
		t.Fatalf("RemoveEdge failed: %v", err)
	}
	if w.HasEdge(0, 1) || w.HasEdge(1, 0) {
		t.Error("Edge (0,1) should be gone from both endpoints")
	}
	if w.NumEdges() != 1 {
		t.Errorf("Expected 1 edge remaining, got %d", w.NumEdges())
	}
}

func TestWorkingGraph_RemoveMissingEdge(t *testing.T) {
	w := workingFrom(t, "0 1\n")

	err := w.RemoveEdge(0, 2)
	if err == nil {
		t.Fatal("Expected error removing missing edge")
	}
	if !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("Expected ErrEdgeNotFound, got %v", err)
	}
}

func TestWorkingGraph_RemoveEdgeOutOfRange(t *testing.T) {
	w := workingFrom(t, "0 1\n1 2\n")

	for _, pair := range [][2]int{{-1, 0}, {0, 3}, {5, 7}} {
		err := w.RemoveEdge(pair[0], pair[1])
		if !errors.Is(err, ErrNodeRange) {
			t.Errorf("RemoveEdge(%d, %d): expected ErrNodeRange, got %v",
				pair[0], pair[1], err)
		}
	}
}

func TestWorkingGraph_DuplicatesCollapse(t *testing.T) {
	w := workingFrom(t, "0 1\n0 1\n")

	if w.NumEdges() != 1 {
		t.Errorf("Expected duplicate edges to collapse to 1, got %d", w.NumEdges())
	}
	// One removal clears the pair completely
	if err := w.RemoveEdge(0, 1); err != nil {
		t.Fatalf("RemoveEdge failed: %v", err)
	}
	if w.HasEdge(0, 1) {
		t.Error("Edge should be fully removed")
	}
}

func TestWorkingGraph_Components(t *testing.T) {
	// Two components plus the isolated node 5 (dense range from edge 4 6)
	w := workingFrom(t, "0 1\n1 2\n3 4\n4 6\n")

	got := w.Components()
	want := [][]int{{0, 1, 2}, {3, 4, 6}, {5}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Components mismatch: got %v, want %v", got, want)
	}
}

func TestWorkingGraph_ComponentsAfterRemoval(t *testing.T) {
	w := workingFrom(t, "0 1\n1 2\n")

	if err := w.RemoveEdge(1, 2); err != nil {
		t.Fatalf("RemoveEdge failed: %v", err)
	}

	got := w.Components()
	want := [][]int{{0, 1}, {2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Components mismatch after removal: got %v, want %v", got, want)
	}
}

func TestWorkingGraph_OriginalUntouched(t *testing.T) {
	g, err := ReadEdgeList(strings.NewReader("0 1\n1 2\n"), Undirected)
	if err != nil {
		t.Fatalf("ReadEdgeList failed: %v", err)
	}

	w := NewWorking(g)
	if err := w.RemoveEdge(0, 1); err != nil {
		t.Fatalf("RemoveEdge failed: %v", err)
	}

	if g.Degree(0) != 1 || g.Degree(1) != 2 {
		t.Error("Removing a working edge must not mutate the canonical graph")
	}
}
