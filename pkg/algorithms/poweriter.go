package algorithms

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/dd0wney/graphmetrics/pkg/graph"
)

// PowerIterationOptions configures the shared iterative solver.
type PowerIterationOptions struct {
	MaxIterations int
	Tolerance     float64 // L1 convergence threshold
}

// DefaultEigenvectorOptions returns the default eigenvector configuration.
func DefaultEigenvectorOptions() PowerIterationOptions {
	return PowerIterationOptions{
		MaxIterations: 200,
		Tolerance:     1e-6,
	}
}

// PowerIterationResult contains the solver output. Hitting the iteration cap
// is not an error: Scores then holds the best-effort estimate and Converged
// is false.
type PowerIterationResult struct {
	Scores     []float64
	Iterations int
	Converged  bool
}

// PageRankOptions configures the PageRank solver.
type PageRankOptions struct {
	DampingFactor float64 // Usually 0.85
	MaxIterations int
	Tolerance     float64 // L1 convergence threshold
}

// DefaultPageRankOptions returns the default PageRank configuration.
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		DampingFactor: 0.85,
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// powerIterate drives the shared fixed-point loop. step fills next from x;
// the loop stops when the L1 difference drops below tol or after maxIter
// steps, whichever comes first, and returns the last computed vector either
// way.
func powerIterate(x []float64, step func(x, next []float64), maxIter int, tol float64) *PowerIterationResult {
	next := make([]float64, len(x))
	iterations := 0
	converged := false

	for iterations < maxIter {
		iterations++
		step(x, next)

		diff := 0.0
		for i := range x {
			diff += math.Abs(next[i] - x[i])
		}

		x, next = next, x
		if diff < tol {
			converged = true
			break
		}
	}

	return &PowerIterationResult{
		Scores:     x,
		Iterations: iterations,
		Converged:  converged,
	}
}

// EigenvectorCentrality computes eigenvector centrality by power iteration:
// each step sums neighbor scores and L2-normalizes the result. Zero options
// fields fall back to defaults.
func EigenvectorCentrality(g *graph.Graph, opts PowerIterationOptions) (*PowerIterationResult, error) {
	n := g.NumNodes()
	if n == 0 {
		return nil, graph.ErrEmptyGraph
	}

	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultEigenvectorOptions().MaxIterations
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultEigenvectorOptions().Tolerance
	}

	adj := g.Adjacency()
	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / float64(n)
	}

	step := func(x, next []float64) {
		for i := 0; i < n; i++ {
			sum := 0.0
			for _, v := range adj[i] {
				sum += x[v]
			}
			next[i] = sum
		}
		if norm := floats.Norm(next, 2); norm > 0 {
			floats.Scale(1.0/norm, next)
		}
	}

	return powerIterate(x, step, opts.MaxIterations, opts.Tolerance), nil
}

// PageRank computes PageRank on a directed graph: each step pushes d*x[v]/
// outdeg(v) along v's out-edges on top of the (1-d)/N base mass. Nodes with
// no out-edges contribute nothing to others; their mass is not redistributed,
// so score totals drift below 1 on graphs with dangling nodes. Callers
// needing stochastic PageRank must remap dangling mass themselves.
func PageRank(g *graph.Graph, opts PageRankOptions) (*PowerIterationResult, error) {
	n := g.NumNodes()
	if n == 0 {
		return nil, graph.ErrEmptyGraph
	}

	def := DefaultPageRankOptions()
	if opts.DampingFactor <= 0 || opts.DampingFactor >= 1 {
		opts.DampingFactor = def.DampingFactor
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = def.MaxIterations
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = def.Tolerance
	}

	adj := g.Adjacency()
	d := opts.DampingFactor
	base := (1.0 - d) / float64(n)

	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / float64(n)
	}

	step := func(x, next []float64) {
		for i := 0; i < n; i++ {
			next[i] = base
		}
		for v := 0; v < n; v++ {
			out := len(adj[v])
			if out == 0 {
				continue
			}
			share := d * x[v] / float64(out)
			for _, w := range adj[v] {
				next[w] += share
			}
		}
	}

	return powerIterate(x, step, opts.MaxIterations, opts.Tolerance), nil
}
