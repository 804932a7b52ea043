// Package graph holds the in-memory adjacency-list representation used by all
// analytics passes. A Graph is built once from an edge stream and never
// mutated; community detection works on a WorkingGraph copy with O(1) edge
// removal.
package graph

// Mode selects how edges from the input stream are inserted.
type Mode int

const (
	// Undirected inserts every edge in both directions.
	Undirected Mode = iota
	// Directed inserts a single direction. Used only for rank propagation.
	Directed
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	switch m {
	case Undirected:
		return "undirected"
	case Directed:
		return "directed"
	default:
		return "unknown"
	}
}

// Graph is a dense adjacency-list graph over node ids [0, N). N is the
// largest observed id plus one, so isolated nodes below the maximum id exist
// with empty neighbor lists. Duplicate edges and self-loops are kept as-is.
type Graph struct {
	mode    Mode
	adj     [][]int
	edges   int
	skipped int
}

// Statistics summarises a loaded graph.
type Statistics struct {
	NodeCount    int
	EdgeCount    int // accepted input edges, duplicates included
	SkippedLines int // malformed input lines dropped during ingestion
}

// Mode returns the edge-insertion mode the graph was built with.
func (g *Graph) Mode() Mode {
	return g.mode
}

// NumNodes returns N, the size of the dense id range.
func (g *Graph) NumNodes() int {
	return len(g.adj)
}

// NumEdges returns the number of accepted input edges.
func (g *Graph) NumEdges() int {
	return g.edges
}

// Degree returns the adjacency-list length of node u: the degree for
// undirected graphs, the out-degree for directed ones. Out-of-range ids
// report zero.
func (g *Graph) Degree(u int) int {
	if u < 0 || u >= len(g.adj) {
		return 0
	}
	return len(g.adj[u])
}

// Neighbors returns the neighbor list of node u. The slice is owned by the
// Graph and must not be modified.
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= len(g.adj) {
		return nil
	}
	return g.adj[u]
}

// Adjacency returns the full adjacency structure. Shared, read-only.
func (g *Graph) Adjacency() [][]int {
	return g.adj
}

// Stats returns ingestion statistics for the graph.
func (g *Graph) Stats() Statistics {
	return Statistics{
		NodeCount:    len(g.adj),
		EdgeCount:    g.edges,
		SkippedLines: g.skipped,
	}
}
