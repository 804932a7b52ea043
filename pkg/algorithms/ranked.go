package algorithms

import (
	"container/heap"
	"sort"
)

// RankedNode holds a node with its centrality score.
type RankedNode struct {
	NodeID int     `json:"node_id"`
	Score  float64 `json:"score"`
}

// RankedEdge holds a ranked edge with its betweenness score.
type RankedEdge struct {
	Edge  EdgeKey `json:"edge"`
	Score float64 `json:"score"`
}

// rankedNodeHeap implements a min-heap for RankedNode. The ordering is total
// so equal-score evictions stay deterministic: among ties the larger node id
// is the worse entry and sits at the root.
type rankedNodeHeap []RankedNode

func (h rankedNodeHeap) Len() int { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].NodeID > h[j].NodeID
}
func (h rankedNodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rankedNodeHeap) Push(x any) {
	*h = append(*h, x.(RankedNode))
}

func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopNodes returns the top n nodes by score using a min-heap, sorted by score
// descending with node id ascending as the deterministic tie-break.
func TopNodes(scores []float64, n int) []RankedNode {
	if n <= 0 {
		return nil
	}

	h := make(rankedNodeHeap, 0, n)
	heap.Init(&h)

	for id, score := range scores {
		rn := RankedNode{NodeID: id, Score: score}
		if h.Len() < n {
			heap.Push(&h, rn)
		} else if score > h[0].Score || (score == h[0].Score && id < h[0].NodeID) {
			heap.Pop(&h)
			heap.Push(&h, rn)
		}
	}

	result := make([]RankedNode, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedNode)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].NodeID < result[j].NodeID
	})

	return result
}

// rankedEdgeHeap implements a min-heap for RankedEdge with the same total
// ordering idea as rankedNodeHeap: among equal scores the larger canonical
// pair is the worse entry. Score maps iterate in random order, so without the
// tie-break the surviving edges would vary run to run.
type rankedEdgeHeap []RankedEdge

func (h rankedEdgeHeap) Len() int { return len(h) }
func (h rankedEdgeHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[j].Edge.Less(h[i].Edge)
}
func (h rankedEdgeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rankedEdgeHeap) Push(x any) {
	*h = append(*h, x.(RankedEdge))
}

func (h *rankedEdgeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopEdges returns the top n edges by score, sorted by score descending with
// the lowest canonical pair winning ties.
func TopEdges(scores map[EdgeKey]float64, n int) []RankedEdge {
	if n <= 0 {
		return nil
	}

	h := make(rankedEdgeHeap, 0, n)
	heap.Init(&h)

	for key, score := range scores {
		re := RankedEdge{Edge: key, Score: score}
		if h.Len() < n {
			heap.Push(&h, re)
		} else if score > h[0].Score || (score == h[0].Score && key.Less(h[0].Edge)) {
			heap.Pop(&h)
			heap.Push(&h, re)
		}
	}

	result := make([]RankedEdge, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedEdge)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].Edge.Less(result[j].Edge)
	})

	return result
}
