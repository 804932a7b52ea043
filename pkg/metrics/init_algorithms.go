package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAlgorithmMetrics() {
	r.AlgorithmRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphmetrics_algorithm_runs_total",
			Help: "Number of algorithm runs by algorithm and status",
		},
		[]string{"algorithm", "status"},
	)

	r.AlgorithmDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphmetrics_algorithm_duration_seconds",
			Help:    "Algorithm run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
		[]string{"algorithm"},
	)

	r.SourcesProcessed = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphmetrics_sources_processed_total",
			Help: "Number of BFS source passes completed by algorithm",
		},
		[]string{"algorithm"},
	)

	r.PowerIterationSteps = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphmetrics_power_iteration_steps",
			Help:    "Iterations taken by the power-iteration solver",
			Buckets: prometheus.LinearBuckets(10, 20, 10),
		},
		[]string{"algorithm"},
	)

	r.PowerIterationNonConverged = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphmetrics_power_iteration_nonconverged_total",
			Help: "Power-iteration runs that hit the iteration cap without converging",
		},
		[]string{"algorithm"},
	)

	r.CommunityEdgeRemovals = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphmetrics_community_edge_removals_total",
			Help: "Edges removed by divisive community detection",
		},
	)

	r.CommunityPartitions = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphmetrics_community_partitions_total",
			Help: "Candidate partitions produced by divisive community detection",
		},
	)
}
