package algorithms

import (
	"github.com/dd0wney/graphmetrics/pkg/graph"
)

// DegreeCentrality returns the raw adjacency-list degree of every node.
func DegreeCentrality(g *graph.Graph) ([]float64, error) {
	n := g.NumNodes()
	if n == 0 {
		return nil, graph.ErrEmptyGraph
	}

	scores := make([]float64, n)
	for u := 0; u < n; u++ {
		scores[u] = float64(g.Degree(u))
	}
	return scores, nil
}

// DegreeCentralityNormalized returns degree scaled by 1/(N-1), the fraction
// of other nodes each node touches. A single-node graph scores 0.
func DegreeCentralityNormalized(g *graph.Graph) ([]float64, error) {
	scores, err := DegreeCentrality(g)
	if err != nil {
		return nil, err
	}

	if n := g.NumNodes(); n > 1 {
		for u := range scores {
			scores[u] /= float64(n - 1)
		}
	} else {
		for u := range scores {
			scores[u] = 0
		}
	}
	return scores, nil
}
