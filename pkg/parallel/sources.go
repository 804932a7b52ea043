package parallel

import (
	"runtime"
	"sync"
)

// SourceRange is one contiguous slice [Start, End) of the source-node space,
// always handled by the same worker index so per-range floating-point
// accumulation order is fixed run-to-run.
type SourceRange struct {
	Worker int
	Start  int
	End    int
}

// Ranges splits [0, n) into up to workers contiguous ranges. The assignment
// is deterministic: range i always covers the same ids for a given (n,
// workers) pair.
func Ranges(n, workers int) []SourceRange {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		return nil
	}

	// Overflow-safe ceiling division
	chunk := int((int64(n) + int64(workers) - 1) / int64(workers))
	if chunk < 1 {
		chunk = 1
	}

	ranges := make([]SourceRange, 0, workers)
	for i, start := 0, 0; start < n; i, start = i+1, start+chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		ranges = append(ranges, SourceRange{Worker: i, Start: start, End: end})
	}
	return ranges
}

// ForEachSource runs fn once per range of [0, n), fanning the ranges out
// over a bounded worker pool. fn receives its range and must confine all
// writes to state owned by that range; callers merge per-range results in
// range order after ForEachSource returns. workers <= 1 runs everything
// inline on the calling goroutine.
func ForEachSource(n, workers int, fn func(r SourceRange)) {
	ranges := Ranges(n, workers)
	if len(ranges) == 0 {
		return
	}

	if len(ranges) == 1 || workers == 1 {
		for _, r := range ranges {
			fn(r)
		}
		return
	}

	pool, err := NewWorkerPool(len(ranges))
	if err != nil {
		// Range count exceeding MaxWorkers is not reachable from Ranges;
		// fall back to inline execution rather than dropping work.
		for _, r := range ranges {
			fn(r)
		}
		return
	}
	defer pool.Close()

	var wg sync.WaitGroup
	for _, r := range ranges {
		r := r
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			fn(r)
		})
	}
	wg.Wait()
}
