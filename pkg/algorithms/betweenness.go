package algorithms

import (
	"github.com/dd0wney/graphmetrics/pkg/graph"
	"github.com/dd0wney/graphmetrics/pkg/parallel"
)

// EdgeKey identifies an undirected edge by its canonical endpoint pair,
// U < V (U == V for self-loops).
type EdgeKey struct {
	U, V int
}

// NewEdgeKey canonicalizes an endpoint pair.
func NewEdgeKey(u, v int) EdgeKey {
	if u > v {
		u, v = v, u
	}
	return EdgeKey{U: u, V: v}
}

// Less orders edge keys by U, then V.
func (e EdgeKey) Less(other EdgeKey) bool {
	if e.U != other.U {
		return e.U < other.U
	}
	return e.V < other.V
}

// brandesRange runs the Brandes pass for sources in [start, end),
// accumulating node dependencies into nodeBC and, when edgeBC is non-nil,
// edge dependencies onto canonical pairs. Both accumulators are owned by the
// caller and must not be shared across concurrent ranges.
func brandesRange(adj [][]int, start, end int, nodeBC []float64, edgeBC map[EdgeKey]float64) {
	st := newTraversalState(len(adj))

	for s := start; s < end; s++ {
		bfsFrom(adj, s, st)

		// Dependency accumulation in decreasing-distance order: the
		// discovery stack is non-decreasing in distance, so walk it backward.
		for i := len(st.stack) - 1; i >= 0; i-- {
			w := st.stack[i]
			if st.sigma[w] == 0 {
				// Unreachable under traversal invariants; skip rather than
				// divide by zero on malformed predecessor bookkeeping.
				continue
			}
			for _, v := range st.pred[w] {
				contribution := (st.sigma[v] / st.sigma[w]) * (1.0 + st.delta[w])
				st.delta[v] += contribution
				if edgeBC != nil {
					edgeBC[NewEdgeKey(v, w)] += contribution
				}
			}
			if w != s {
				nodeBC[w] += st.delta[w]
			}
		}
	}
}

// brandes runs the full all-sources pass over adj, fanned out across
// deterministic source ranges. Per-range accumulators are merged in range
// order so float summation order is fixed run-to-run.
func brandes(adj [][]int, workers int, wantEdges bool) ([]float64, map[EdgeKey]float64) {
	n := len(adj)
	ranges := parallel.Ranges(n, workers)

	nodeParts := make([][]float64, len(ranges))
	edgeParts := make([]map[EdgeKey]float64, len(ranges))

	parallel.ForEachSource(n, workers, func(r parallel.SourceRange) {
		nodePart := make([]float64, n)
		var edgePart map[EdgeKey]float64
		if wantEdges {
			edgePart = make(map[EdgeKey]float64)
		}
		brandesRange(adj, r.Start, r.End, nodePart, edgePart)
		nodeParts[r.Worker] = nodePart
		edgeParts[r.Worker] = edgePart
	})

	nodeBC := make([]float64, n)
	var edgeBC map[EdgeKey]float64
	if wantEdges {
		edgeBC = make(map[EdgeKey]float64)
	}
	for i := range nodeParts {
		if nodeParts[i] == nil {
			continue
		}
		for v, d := range nodeParts[i] {
			nodeBC[v] += d
		}
		for key, d := range edgeParts[i] {
			edgeBC[key] += d
		}
	}
	return nodeBC, edgeBC
}

// NodeBetweenness computes betweenness centrality for every node: the total
// dependency of all sources on the node, halved for undirected graphs since
// each endpoint pair is counted from both directions. workers <= 0 uses one
// worker per CPU.
func NodeBetweenness(g *graph.Graph, workers int) ([]float64, error) {
	if g.NumNodes() == 0 {
		return nil, graph.ErrEmptyGraph
	}

	nodeBC, _ := brandes(g.Adjacency(), workers, false)
	if g.Mode() == graph.Undirected {
		for i := range nodeBC {
			nodeBC[i] /= 2.0
		}
	}
	return nodeBC, nil
}

// EdgeBetweenness computes betweenness centrality for every edge, keyed by
// canonical endpoint pair. Halved for undirected graphs like the node
// variant.
func EdgeBetweenness(g *graph.Graph, workers int) (map[EdgeKey]float64, error) {
	if g.NumNodes() == 0 {
		return nil, graph.ErrEmptyGraph
	}

	_, edgeBC := brandes(g.Adjacency(), workers, true)
	if g.Mode() == graph.Undirected {
		for key := range edgeBC {
			edgeBC[key] /= 2.0
		}
	}
	return edgeBC, nil
}
