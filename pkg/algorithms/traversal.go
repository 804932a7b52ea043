// Package algorithms implements the centrality and community-detection passes
// over an in-memory graph: Brandes node/edge betweenness, closeness,
// power-iteration eigenvector and PageRank solvers, and Girvan-Newman
// divisive community detection.
package algorithms

// traversalState holds the per-source scratch arrays for one unweighted BFS:
// distances, shortest-path counts, predecessor lists, and the discovery-order
// stack consumed by dependency accumulation. Allocated once per worker and
// reset between sources.
type traversalState struct {
	dist  []int     // -1 = unreached
	sigma []float64 // number of shortest paths from the source
	pred  [][]int   // predecessors on shortest paths
	stack []int     // discovery order, non-decreasing distance
	queue []int
	delta []float64
}

func newTraversalState(n int) *traversalState {
	return &traversalState{
		dist:  make([]int, n),
		sigma: make([]float64, n),
		pred:  make([][]int, n),
		stack: make([]int, 0, n),
		queue: make([]int, 0, n),
		delta: make([]float64, n),
	}
}

func (st *traversalState) reset() {
	for i := range st.dist {
		st.dist[i] = -1
		st.sigma[i] = 0
		st.pred[i] = st.pred[i][:0]
		st.delta[i] = 0
	}
	st.stack = st.stack[:0]
	st.queue = st.queue[:0]
}

// bfsFrom runs an unweighted BFS from source, filling st. A node w first
// discovered from v gets dist[w] = dist[v]+1 exactly once; every edge (v,w)
// with dist[w] == dist[v]+1 contributes sigma[w] += sigma[v] and records v as
// a predecessor, so sigma counts all distinct shortest paths. Unreached nodes
// keep dist -1 and sigma 0.
func bfsFrom(adj [][]int, source int, st *traversalState) {
	st.reset()
	st.dist[source] = 0
	st.sigma[source] = 1
	st.queue = append(st.queue, source)

	for head := 0; head < len(st.queue); head++ {
		v := st.queue[head]
		st.stack = append(st.stack, v)

		for _, w := range adj[v] {
			if st.dist[w] < 0 {
				st.dist[w] = st.dist[v] + 1
				st.queue = append(st.queue, w)
			}
			if st.dist[w] == st.dist[v]+1 {
				st.sigma[w] += st.sigma[v]
				st.pred[w] = append(st.pred[w], v)
			}
		}
	}
}

// bfsDistances runs the distance-only BFS used by closeness, reusing dist and
// queue from st. Returns the reached node count (excluding the source) and
// the distance sum.
func bfsDistances(adj [][]int, source int, st *traversalState) (reached int, sum int) {
	for i := range st.dist {
		st.dist[i] = -1
	}
	st.queue = st.queue[:0]

	st.dist[source] = 0
	st.queue = append(st.queue, source)

	for head := 0; head < len(st.queue); head++ {
		v := st.queue[head]
		for _, w := range adj[v] {
			if st.dist[w] < 0 {
				st.dist[w] = st.dist[v] + 1
				st.queue = append(st.queue, w)
				reached++
				sum += st.dist[w]
			}
		}
	}
	return reached, sum
}
