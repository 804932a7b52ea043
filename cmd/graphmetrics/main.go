package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd0wney/graphmetrics/pkg/config"
	"github.com/dd0wney/graphmetrics/pkg/logging"
	"github.com/dd0wney/graphmetrics/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file")
	input := flag.String("input", "", "Edge-list file (plain, .snappy or .sz)")
	metricsList := flag.String("metrics", "", "Comma-separated metrics to run (default: all)")
	outputDir := flag.String("out", "", "Output directory for result files")
	workers := flag.Int("workers", -1, "Worker count for per-source passes (0 = one per CPU)")
	damping := flag.Float64("damping", 0, "PageRank damping factor")
	tolerance := flag.Float64("tolerance", 0, "Power-iteration convergence threshold")
	maxIterations := flag.Int("max-iterations", 0, "Power-iteration cap")
	seed := flag.Int64("seed", 0, "Label-propagation shuffle seed")
	topN := flag.Int("top", 0, "Print a top-N summary table per metric")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := buildConfig(*configPath, func(c *config.Config) {
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "input":
				c.Input = *input
			case "metrics":
				c.Metrics = splitMetrics(*metricsList)
			case "out":
				c.OutputDir = *outputDir
			case "workers":
				c.Workers = *workers
			case "damping":
				c.Damping = *damping
			case "tolerance":
				c.Tolerance = *tolerance
			case "max-iterations":
				c.MaxIterations = *maxIterations
			case "seed":
				c.Seed = *seed
			case "top":
				c.TopN = *topN
			case "metrics-addr":
				c.MetricsAddr = *metricsAddr
			case "log-level":
				c.LogLevel = *logLevel
			}
		})
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel)).
		With(logging.String("run_id", uuid.NewString()))

	registry := metrics.DefaultRegistry()
	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, registry, logger)
	}

	runner := &Runner{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
	}
	if err := runner.Run(); err != nil {
		logger.Error("run failed", logging.Error(err))
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

// buildConfig loads the optional config file, applies flag overrides, then
// validates the merged result.
func buildConfig(path string, override func(*config.Config)) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	override(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func splitMetrics(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func serveMetrics(addr string, registry *metrics.Registry, logger logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(
		registry.GetPrometheusRegistry(),
		promhttp.HandlerOpts{},
	))

	logger.Info("metrics endpoint listening", logging.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics endpoint failed", logging.Error(err))
	}
}
