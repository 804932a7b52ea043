package algorithms

import (
	"github.com/dd0wney/graphmetrics/pkg/graph"
	"github.com/dd0wney/graphmetrics/pkg/parallel"
)

// Closeness computes closeness centrality for every node as
// reached/sum-of-distances over the node's own component (the
// reachable-subset convention): nodes in a small isolated component score
// against that component only, not the full graph. Nodes reaching nothing
// score 0. workers <= 0 uses one worker per CPU.
func Closeness(g *graph.Graph, workers int) ([]float64, error) {
	n := g.NumNodes()
	if n == 0 {
		return nil, graph.ErrEmptyGraph
	}

	adj := g.Adjacency()
	scores := make([]float64, n)

	parallel.ForEachSource(n, workers, func(r parallel.SourceRange) {
		st := newTraversalState(n)
		for s := r.Start; s < r.End; s++ {
			reached, sum := bfsDistances(adj, s, st)
			if reached >= 1 && sum > 0 {
				scores[s] = float64(reached) / float64(sum)
			}
		}
	})

	return scores, nil
}
