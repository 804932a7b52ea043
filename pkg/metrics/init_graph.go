package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphmetrics_graph_nodes_total",
			Help: "Number of nodes in the loaded graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphmetrics_graph_edges_total",
			Help: "Number of accepted edges in the loaded graph",
		},
	)

	r.GraphComponents = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphmetrics_graph_components",
			Help: "Number of connected components in the loaded graph",
		},
	)

	r.GraphSkippedLines = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphmetrics_graph_skipped_lines",
			Help: "Number of malformed edge-list lines skipped during ingestion",
		},
	)
}
