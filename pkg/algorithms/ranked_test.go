package algorithms

import (
	"testing"
)

func TestTopNodes_Ordering(t *testing.T) {
	scores := []float64{0.2, 0.9, 0.1, 0.9, 0.5}

	top := TopNodes(scores, 3)

	if len(top) != 3 {
		t.Fatalf("Expected 3 ranked nodes, got %d", len(top))
	}
	// Equal scores break toward the lower node id
	if top[0].NodeID != 1 || top[1].NodeID != 3 || top[2].NodeID != 4 {
		t.Errorf("Unexpected ranking: %v", top)
	}
}

func TestTopNodes_RequestLargerThanGraph(t *testing.T) {
	top := TopNodes([]float64{0.3, 0.1}, 10)

	if len(top) != 2 {
		t.Errorf("Expected 2 ranked nodes, got %d", len(top))
	}
	if top[0].NodeID != 0 {
		t.Errorf("Expected node 0 first, got %d", top[0].NodeID)
	}
}

func TestTopNodes_ZeroCount(t *testing.T) {
	if top := TopNodes([]float64{0.5}, 0); top != nil {
		t.Errorf("Expected nil for n=0, got %v", top)
	}
}

func TestTopNodes_TieEvictionIsDeterministic(t *testing.T) {
	// Three tied minimum entries in a full heap; the arriving higher score
	// must evict the highest tied id, never an arbitrary one.
	scores := []float64{5, 5, 5, 7}

	top := TopNodes(scores, 2)

	if top[0].NodeID != 3 || top[1].NodeID != 0 {
		t.Errorf("Expected nodes 3 then 0, got %v", top)
	}
}

func TestTopEdges_Ordering(t *testing.T) {
	scores := map[EdgeKey]float64{
		{0, 1}: 2.0,
		{1, 2}: 5.0,
		{0, 3}: 5.0,
		{2, 3}: 1.0,
	}

	top := TopEdges(scores, 3)

	if len(top) != 3 {
		t.Fatalf("Expected 3 ranked edges, got %d", len(top))
	}
	// Ties break toward the lowest canonical pair
	if top[0].Edge != (EdgeKey{0, 3}) || top[1].Edge != (EdgeKey{1, 2}) {
		t.Errorf("Unexpected ranking: %v", top)
	}
	if top[2].Edge != (EdgeKey{0, 1}) {
		t.Errorf("Expected (0,1) third, got %v", top[2].Edge)
	}
}

func TestTopEdges_TiesStableAcrossMapIterationOrder(t *testing.T) {
	// Every edge ties, more edges than slots. Map iteration order changes
	// between calls, so repeated runs catch any order dependence in the
	// selection.
	scores := map[EdgeKey]float64{
		{0, 1}: 3.0,
		{0, 2}: 3.0,
		{1, 2}: 3.0,
		{1, 3}: 3.0,
		{2, 3}: 3.0,
		{4, 5}: 3.0,
	}
	want := []EdgeKey{{0, 1}, {0, 2}, {1, 2}}

	for run := 0; run < 20; run++ {
		top := TopEdges(scores, 3)
		if len(top) != 3 {
			t.Fatalf("Run %d: expected 3 ranked edges, got %d", run, len(top))
		}
		for i, re := range top {
			if re.Edge != want[i] {
				t.Fatalf("Run %d: expected %v at rank %d, got %v", run, want[i], i, re.Edge)
			}
		}
	}
}
