package parallel

import (
	"reflect"
	"sync"
	"testing"
)

func TestRanges_CoversWholeSpace(t *testing.T) {
	ranges := Ranges(10, 3)

	covered := make([]bool, 10)
	for _, r := range ranges {
		for i := r.Start; i < r.End; i++ {
			if covered[i] {
				t.Errorf("Source %d covered twice", i)
			}
			covered[i] = true
		}
	}
	for i, c := range covered {
		if !c {
			t.Errorf("Source %d uncovered", i)
		}
	}
}

func TestRanges_Deterministic(t *testing.T) {
	first := Ranges(1000, 7)
	second := Ranges(1000, 7)

	if !reflect.DeepEqual(first, second) {
		t.Error("Range assignment must be identical across calls")
	}
}

func TestRanges_MoreWorkersThanSources(t *testing.T) {
	ranges := Ranges(3, 16)

	if len(ranges) > 3 {
		t.Errorf("Expected at most 3 ranges, got %d", len(ranges))
	}
	total := 0
	for _, r := range ranges {
		total += r.End - r.Start
	}
	if total != 3 {
		t.Errorf("Expected 3 sources covered, got %d", total)
	}
}

func TestRanges_EmptySpace(t *testing.T) {
	if ranges := Ranges(0, 4); len(ranges) != 0 {
		t.Errorf("Expected no ranges for n=0, got %v", ranges)
	}
}

func TestForEachSource_RunsEveryRange(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[int]bool)

	ForEachSource(100, 4, func(r SourceRange) {
		mu.Lock()
		defer mu.Unlock()
		for i := r.Start; i < r.End; i++ {
			seen[i] = true
		}
	})

	if len(seen) != 100 {
		t.Errorf("Expected 100 sources processed, got %d", len(seen))
	}
}

func TestForEachSource_InlineSingleWorker(t *testing.T) {
	count := 0
	// workers=1 must run inline, so unsynchronized writes are safe
	ForEachSource(50, 1, func(r SourceRange) {
		count += r.End - r.Start
	})

	if count != 50 {
		t.Errorf("Expected 50 sources processed, got %d", count)
	}
}
