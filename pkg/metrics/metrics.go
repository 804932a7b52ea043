// Package metrics exposes Prometheus instrumentation for graph loading and
// algorithm runs. Recording is optional everywhere; a nil *Registry is safe
// to call.
package metrics

import (
	"time"
)

// RecordGraph updates the graph gauges after a load.
func (r *Registry) RecordGraph(nodes, edges, skipped int) {
	if r == nil {
		return
	}
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
	r.GraphSkippedLines.Set(float64(skipped))
}

// RecordComponents updates the component count gauge.
func (r *Registry) RecordComponents(n int) {
	if r == nil {
		return
	}
	r.GraphComponents.Set(float64(n))
}

// RecordAlgorithm records an algorithm run with its duration.
func (r *Registry) RecordAlgorithm(algorithm, status string, duration time.Duration) {
	if r == nil {
		return
	}
	r.AlgorithmRunsTotal.WithLabelValues(algorithm, status).Inc()
	r.AlgorithmDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
}

// RecordSources adds completed BFS source passes for an algorithm.
func (r *Registry) RecordSources(algorithm string, n int) {
	if r == nil {
		return
	}
	r.SourcesProcessed.WithLabelValues(algorithm).Add(float64(n))
}

// RecordPowerIteration records a solver run.
func (r *Registry) RecordPowerIteration(algorithm string, iterations int, converged bool) {
	if r == nil {
		return
	}
	r.PowerIterationSteps.WithLabelValues(algorithm).Observe(float64(iterations))
	if !converged {
		r.PowerIterationNonConverged.WithLabelValues(algorithm).Inc()
	}
}

// RecordEdgeRemoval counts one divisive-detection edge removal and the
// candidate partition it produced.
func (r *Registry) RecordEdgeRemoval() {
	if r == nil {
		return
	}
	r.CommunityEdgeRemovals.Inc()
	r.CommunityPartitions.Inc()
}
