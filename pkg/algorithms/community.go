package algorithms

import (
	"sort"

	"github.com/dd0wney/graphmetrics/pkg/graph"
)

// Partition is a list of disjoint communities covering every node id of the
// graph it was derived from. Communities are sorted internally and ordered
// by smallest member.
type Partition [][]int

// CommunityStep records one edge removal of the divisive loop and the
// partition it produced.
type CommunityStep struct {
	Removed   EdgeKey
	Partition Partition
}

// GirvanNewmanResult holds the full removal sequence. Best/BestScore are
// populated only when a judge was supplied.
type GirvanNewmanResult struct {
	Initial   Partition
	Steps     []CommunityStep
	Best      Partition
	BestScore float64
}

// PartitionJudge scores a candidate partition; higher is better. Modularity
// against the original graph is the usual choice, see ModularityJudge.
type PartitionJudge func(Partition) float64

// GirvanNewman runs divisive community detection: repeatedly compute edge
// betweenness on a working copy, remove the highest-scoring edge (ties broken
// toward the lowest canonical pair for reproducibility), and record the
// connected components of the reduced graph. The loop ends when no edges
// remain. The original graph is never modified.
func GirvanNewman(g *graph.Graph, judge PartitionJudge) (*GirvanNewmanResult, error) {
	if g.NumNodes() == 0 {
		return nil, graph.ErrEmptyGraph
	}

	working := graph.NewWorking(g)
	result := &GirvanNewmanResult{
		Initial: working.Components(),
	}
	if judge != nil {
		result.Best = result.Initial
		result.BestScore = judge(result.Initial)
	}

	// Each iteration removes exactly one edge, so the initial edge count
	// bounds the loop.
	edgeBudget := working.NumEdges()
	for i := 0; i < edgeBudget; i++ {
		edgeBC := workingEdgeBetweenness(working)
		if len(edgeBC) == 0 {
			break
		}

		target, ok := maxEdge(edgeBC)
		if !ok {
			break
		}
		if err := working.RemoveEdge(target.U, target.V); err != nil {
			return nil, err
		}

		step := CommunityStep{
			Removed:   target,
			Partition: working.Components(),
		}
		result.Steps = append(result.Steps, step)

		if judge != nil {
			if score := judge(step.Partition); score > result.BestScore {
				result.BestScore = score
				result.Best = step.Partition
			}
		}
	}

	return result, nil
}

// workingEdgeBetweenness runs the Brandes edge pass over the current working
// graph. Neighbor sets are materialized as sorted slices first so float
// accumulation order is deterministic.
func workingEdgeBetweenness(w *graph.WorkingGraph) map[EdgeKey]float64 {
	n := w.NumNodes()
	adj := make([][]int, n)
	for u := 0; u < n; u++ {
		set := w.Neighbors(u)
		if len(set) == 0 {
			continue
		}
		nbrs := make([]int, 0, len(set))
		for v := range set {
			nbrs = append(nbrs, v)
		}
		sort.Ints(nbrs)
		adj[u] = nbrs
	}

	nodeBC := make([]float64, n)
	edgeBC := make(map[EdgeKey]float64)
	brandesRange(adj, 0, n, nodeBC, edgeBC)

	// Working graphs are always undirected
	for key := range edgeBC {
		edgeBC[key] /= 2.0
	}
	return edgeBC
}

// maxEdge selects the highest-scoring edge, breaking score ties toward the
// lowest canonical pair.
func maxEdge(edgeBC map[EdgeKey]float64) (EdgeKey, bool) {
	var best EdgeKey
	bestScore := 0.0
	found := false
	for key, score := range edgeBC {
		if !found || score > bestScore || (score == bestScore && key.Less(best)) {
			best = key
			bestScore = score
			found = true
		}
	}
	return best, found
}

// Modularity scores a partition against the original, unmodified graph:
// Q = (1/2m) sum over same-community pairs of (A_ij - k_i*k_j/2m). Returns 0
// for edgeless graphs. Pure function; safe to close over as a judge.
func Modularity(g *graph.Graph, p Partition) float64 {
	n := g.NumNodes()
	adj := g.Adjacency()

	twoM := 0.0
	for u := 0; u < n; u++ {
		twoM += float64(len(adj[u]))
	}
	if twoM == 0 {
		return 0.0
	}

	member := make([]int, n)
	for i := range member {
		member[i] = -1
	}
	for c, community := range p {
		for _, u := range community {
			member[u] = c
		}
	}

	// Internal adjacency entries per community, plus community degree sums.
	internal := make([]float64, len(p))
	degreeSum := make([]float64, len(p))
	for u := 0; u < n; u++ {
		c := member[u]
		if c < 0 {
			continue
		}
		degreeSum[c] += float64(len(adj[u]))
		for _, v := range adj[u] {
			if member[v] == c {
				internal[c]++
			}
		}
	}

	q := 0.0
	for c := range p {
		q += internal[c]/twoM - (degreeSum[c]/twoM)*(degreeSum[c]/twoM)
	}
	return q
}

// ModularityJudge returns a PartitionJudge scoring against g.
func ModularityJudge(g *graph.Graph) PartitionJudge {
	return func(p Partition) float64 {
		return Modularity(g, p)
	}
}
