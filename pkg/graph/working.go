package graph

import "sort"

// WorkingGraph is a mutable, set-indexed copy of a Graph used by divisive
// community detection. Neighbor sets give O(1) edge removal; the canonical
// Graph it was built from is never touched. Duplicate parallel edges collapse
// into one set entry.
type WorkingGraph struct {
	nbrs []map[int]struct{}
}

// NewWorking builds a mutable working copy of g.
func NewWorking(g *Graph) *WorkingGraph {
	n := g.NumNodes()
	w := &WorkingGraph{nbrs: make([]map[int]struct{}, n)}
	for u := 0; u < n; u++ {
		w.nbrs[u] = make(map[int]struct{}, len(g.adj[u]))
		for _, v := range g.adj[u] {
			w.nbrs[u][v] = struct{}{}
		}
	}
	return w
}

// NumNodes returns the dense id range size.
func (w *WorkingGraph) NumNodes() int {
	return len(w.nbrs)
}

// NumEdges returns the number of distinct undirected edges remaining.
func (w *WorkingGraph) NumEdges() int {
	count := 0
	for u, set := range w.nbrs {
		for v := range set {
			if v >= u {
				count++
			}
		}
	}
	return count
}

// HasEdge reports whether the edge (u,v) is present.
func (w *WorkingGraph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(w.nbrs) {
		return false
	}
	_, ok := w.nbrs[u][v]
	return ok
}

// Neighbors returns the neighbor set of node u. Owned by the WorkingGraph.
func (w *WorkingGraph) Neighbors(u int) map[int]struct{} {
	if u < 0 || u >= len(w.nbrs) {
		return nil
	}
	return w.nbrs[u]
}

// RemoveEdge deletes the undirected edge (u,v) from both endpoint sets.
// Returns ErrNodeRange for endpoints outside the dense id range and
// ErrEdgeNotFound if the edge is not present.
func (w *WorkingGraph) RemoveEdge(u, v int) error {
	n := len(w.nbrs)
	if u < 0 || u >= n || v < 0 || v >= n {
		return NewError("RemoveEdge").Edge().Cause(ErrNodeRange)
	}
	if !w.HasEdge(u, v) {
		return NewError("RemoveEdge").Edge().Cause(ErrEdgeNotFound)
	}
	delete(w.nbrs[u], v)
	delete(w.nbrs[v], u)
	return nil
}

// Components returns the connected components of the current working graph
// as sorted node-id slices, ordered by their smallest member. BFS with an
// explicit queue; no recursion.
func (w *WorkingGraph) Components() [][]int {
	n := len(w.nbrs)
	visited := make([]bool, n)
	var components [][]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true

		component := []int{start}
		queue := []int{start}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for v := range w.nbrs[u] {
				if !visited[v] {
					visited[v] = true
					component = append(component, v)
					queue = append(queue, v)
				}
			}
		}

		sort.Ints(component)
		components = append(components, component)
	}

	return components
}
