package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Graph Metrics
	GraphNodesTotal   prometheus.Gauge
	GraphEdgesTotal   prometheus.Gauge
	GraphComponents   prometheus.Gauge
	GraphSkippedLines prometheus.Gauge

	// Algorithm Metrics
	AlgorithmRunsTotal *prometheus.CounterVec
	AlgorithmDuration  *prometheus.HistogramVec
	SourcesProcessed   *prometheus.CounterVec

	// Power-Iteration Metrics
	PowerIterationSteps        *prometheus.HistogramVec
	PowerIterationNonConverged *prometheus.CounterVec

	// Community Detection Metrics
	CommunityEdgeRemovals prometheus.Counter
	CommunityPartitions   prometheus.Counter

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initGraphMetrics()
	r.initAlgorithmMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
