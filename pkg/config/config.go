// Package config loads and validates the batch-run configuration consumed by
// the graphmetrics CLI. Values come from an optional YAML file with CLI flags
// layered on top; validation happens once, after all overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// KnownMetrics lists the metric names a run may select.
var KnownMetrics = []string{
	"betweenness",
	"edge-betweenness",
	"closeness",
	"eigenvector",
	"pagerank",
	"degree",
	"communities",
	"labelprop",
}

// Config describes one batch analytics run.
type Config struct {
	// Input is the edge-list path. ".snappy"/".sz" files are decompressed.
	Input string `yaml:"input" validate:"required"`
	// Metrics selects which passes to run; empty means all of them.
	Metrics []string `yaml:"metrics" validate:"omitempty,dive,oneof=betweenness edge-betweenness closeness eigenvector pagerank degree communities labelprop"`
	// OutputDir receives one CSV (or community listing) per metric.
	OutputDir string `yaml:"output_dir" validate:"required"`

	Workers       int     `yaml:"workers" validate:"gte=0"`
	Damping       float64 `yaml:"damping" validate:"gt=0,lt=1"`
	Tolerance     float64 `yaml:"tolerance" validate:"gt=0"`
	MaxIterations int     `yaml:"max_iterations" validate:"gte=1"`
	Seed          int64   `yaml:"seed"`

	// TopN > 0 prints a ranked summary table per metric.
	TopN int `yaml:"top" validate:"gte=0"`
	// MetricsAddr, when set, serves Prometheus metrics on that address.
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		OutputDir:     "results",
		Workers:       0, // one per CPU
		Damping:       0.85,
		Tolerance:     1e-6,
		MaxIterations: 100,
		Seed:          1,
		LogLevel:      "info",
	}
}

// Load reads a YAML file over the defaults. The result is not validated;
// call Validate after applying flag overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config cannot be nil")
	}
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// SelectedMetrics returns the metric names to run, expanding an empty
// selection to every known metric.
func (c *Config) SelectedMetrics() []string {
	if len(c.Metrics) == 0 {
		return append([]string(nil), KnownMetrics...)
	}
	return c.Metrics
}

// formatValidationError flattens validator errors into one readable message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed '%s' constraint", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
