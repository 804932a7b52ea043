package main

import (
	"fmt"
	"time"

	"github.com/dd0wney/graphmetrics/pkg/algorithms"
	"github.com/dd0wney/graphmetrics/pkg/config"
	"github.com/dd0wney/graphmetrics/pkg/graph"
	"github.com/dd0wney/graphmetrics/pkg/logging"
	"github.com/dd0wney/graphmetrics/pkg/metrics"
)

// Runner executes one batch analytics run: load the graph, run each selected
// metric, write its result file, and record timings.
type Runner struct {
	cfg      *config.Config
	logger   logging.Logger
	registry *metrics.Registry

	undirected *graph.Graph
	directed   *graph.Graph
}

// Run executes the configured metrics in order.
func (r *Runner) Run() error {
	selected := r.cfg.SelectedMetrics()

	for _, name := range selected {
		timer := logging.StartTimer(r.logger, "metric complete", logging.Algorithm(name))
		start := time.Now()

		err := r.runMetric(name)

		status := "success"
		if err != nil {
			status = "error"
		}
		r.registry.RecordAlgorithm(name, status, time.Since(start))

		if err != nil {
			timer.EndError(err)
			return fmt.Errorf("metric %s: %w", name, err)
		}
		timer.End()
	}

	return nil
}

// loadUndirected loads (once) the symmetric graph used by everything except
// PageRank.
func (r *Runner) loadUndirected() (*graph.Graph, error) {
	if r.undirected != nil {
		return r.undirected, nil
	}

	g, err := graph.LoadFile(r.cfg.Input, graph.Undirected)
	if err != nil {
		return nil, err
	}
	r.afterLoad(g)

	components := graph.NewWorking(g).Components()
	r.registry.RecordComponents(len(components))

	r.undirected = g
	return g, nil
}

// loadDirected loads (once) the single-direction graph PageRank propagates
// over.
func (r *Runner) loadDirected() (*graph.Graph, error) {
	if r.directed != nil {
		return r.directed, nil
	}

	g, err := graph.LoadFile(r.cfg.Input, graph.Directed)
	if err != nil {
		return nil, err
	}
	r.afterLoad(g)

	r.directed = g
	return g, nil
}

func (r *Runner) afterLoad(g *graph.Graph) {
	stats := g.Stats()
	r.registry.RecordGraph(stats.NodeCount, stats.EdgeCount, stats.SkippedLines)
	r.logger.Info("graph loaded",
		logging.Path(r.cfg.Input),
		logging.String("mode", g.Mode().String()),
		logging.NodeCount(stats.NodeCount),
		logging.EdgeCount(stats.EdgeCount),
		logging.Int("skipped_lines", stats.SkippedLines),
	)
	if stats.SkippedLines > 0 {
		r.logger.Warn("malformed edge lines skipped",
			logging.Count(stats.SkippedLines))
	}
}

func (r *Runner) runMetric(name string) error {
	switch name {
	case "betweenness":
		g, err := r.loadUndirected()
		if err != nil {
			return err
		}
		scores, err := algorithms.NodeBetweenness(g, r.cfg.Workers)
		if err != nil {
			return err
		}
		r.registry.RecordSources(name, g.NumNodes())
		r.summarizeNodes(name, scores)
		return writeScores(r.cfg.OutputDir, name, scores)

	case "edge-betweenness":
		g, err := r.loadUndirected()
		if err != nil {
			return err
		}
		scores, err := algorithms.EdgeBetweenness(g, r.cfg.Workers)
		if err != nil {
			return err
		}
		r.registry.RecordSources(name, g.NumNodes())
		return writeEdgeScores(r.cfg.OutputDir, name, scores)

	case "closeness":
		g, err := r.loadUndirected()
		if err != nil {
			return err
		}
		scores, err := algorithms.Closeness(g, r.cfg.Workers)
		if err != nil {
			return err
		}
		r.registry.RecordSources(name, g.NumNodes())
		r.summarizeNodes(name, scores)
		return writeScores(r.cfg.OutputDir, name, scores)

	case "degree":
		g, err := r.loadUndirected()
		if err != nil {
			return err
		}
		scores, err := algorithms.DegreeCentrality(g)
		if err != nil {
			return err
		}
		r.summarizeNodes(name, scores)
		return writeScores(r.cfg.OutputDir, name, scores)

	case "eigenvector":
		g, err := r.loadUndirected()
		if err != nil {
			return err
		}
		opts := algorithms.PowerIterationOptions{
			MaxIterations: r.cfg.MaxIterations,
			Tolerance:     r.cfg.Tolerance,
		}
		result, err := algorithms.EigenvectorCentrality(g, opts)
		if err != nil {
			return err
		}
		r.afterPowerIteration(name, result)
		r.summarizeNodes(name, result.Scores)
		return writeScores(r.cfg.OutputDir, name, result.Scores)

	case "pagerank":
		g, err := r.loadDirected()
		if err != nil {
			return err
		}
		result, err := algorithms.PageRank(g, algorithms.PageRankOptions{
			DampingFactor: r.cfg.Damping,
			MaxIterations: r.cfg.MaxIterations,
			Tolerance:     r.cfg.Tolerance,
		})
		if err != nil {
			return err
		}
		r.afterPowerIteration(name, result)
		r.summarizeNodes(name, result.Scores)
		return writeScores(r.cfg.OutputDir, name, result.Scores)

	case "communities":
		g, err := r.loadUndirected()
		if err != nil {
			return err
		}
		result, err := algorithms.GirvanNewman(g, algorithms.ModularityJudge(g))
		if err != nil {
			return err
		}
		for range result.Steps {
			r.registry.RecordEdgeRemoval()
		}
		r.logger.Info("divisive detection complete",
			logging.Count(len(result.Steps)),
			logging.Int("communities", len(result.Best)),
			logging.Float64("modularity", result.BestScore),
		)
		return writePartition(r.cfg.OutputDir, "communities", result.Best)

	case "labelprop":
		g, err := r.loadUndirected()
		if err != nil {
			return err
		}
		partition, err := algorithms.LabelPropagation(g, r.cfg.MaxIterations, r.cfg.Seed)
		if err != nil {
			return err
		}
		r.logger.Info("label propagation complete",
			logging.Int("communities", len(partition)),
		)
		return writePartition(r.cfg.OutputDir, "labelprop", partition)

	default:
		return fmt.Errorf("unknown metric %q", name)
	}
}

func (r *Runner) afterPowerIteration(name string, result *algorithms.PowerIterationResult) {
	r.registry.RecordPowerIteration(name, result.Iterations, result.Converged)
	if !result.Converged {
		r.logger.Warn("power iteration hit the cap, returning best-effort estimate",
			logging.Algorithm(name),
			logging.Iterations(result.Iterations),
		)
	}
}

func (r *Runner) summarizeNodes(name string, scores []float64) {
	if r.cfg.TopN <= 0 {
		return
	}
	printTopTable(name, algorithms.TopNodes(scores, r.cfg.TopN))
}
