package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/vecexpr/internal/bench"
)

// BenchConfig is the file form of the bench command flags.
//
//	iterations: 10000
//	dimension: 4
//	strategies: [eager, lazy, program]
//	metrics: true
//	per_accumulate: false
type BenchConfig struct {
	Iterations    int      `yaml:"iterations"`
	Dimension     int      `yaml:"dimension"`
	Strategies    []string `yaml:"strategies"`
	Metrics       bool     `yaml:"metrics"`
	PerAccumulate bool     `yaml:"per_accumulate"`
}

// DefaultBenchConfig returns the reference workload settings.
func DefaultBenchConfig() BenchConfig {
	return BenchConfig{
		Iterations: bench.DefaultIterations,
		Dimension:  4,
	}
}

// LoadBenchConfig reads a YAML config file on top of the defaults.
// Unknown keys are rejected.
func LoadBenchConfig(path string) (BenchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BenchConfig{}, fmt.Errorf("read config: %w", err)
	}
	return ParseBenchConfig(data)
}

// ParseBenchConfig decodes YAML config data on top of the defaults.
func ParseBenchConfig(data []byte) (BenchConfig, error) {
	cfg := DefaultBenchConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return BenchConfig{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks the config values.
func (c BenchConfig) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: got %d", bench.ErrInvalidIterations, c.Iterations)
	}
	if _, err := bench.ParseStrategies(c.Strategies); err != nil {
		return err
	}
	return nil
}
