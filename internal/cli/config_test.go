package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecexpr/internal/bench"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadBenchConfig(t *testing.T) {
	path := writeConfig(t, `
iterations: 250
dimension: 16
strategies: [lazy, program]
metrics: true
per_accumulate: true
`)

	cfg, err := LoadBenchConfig(path)
	require.NoError(t, err)
	assert.Equal(t, BenchConfig{
		Iterations:    250,
		Dimension:     16,
		Strategies:    []string{"lazy", "program"},
		Metrics:       true,
		PerAccumulate: true,
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestParseBenchConfigDefaults(t *testing.T) {
	cfg, err := ParseBenchConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultBenchConfig(), cfg)

	cfg, err = ParseBenchConfig([]byte("dimension: 8\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Dimension)
	assert.Equal(t, bench.DefaultIterations, cfg.Iterations)
}

func TestParseBenchConfigErrors(t *testing.T) {
	_, err := ParseBenchConfig([]byte("iterations: 10\nthreads: 4\n"))
	assert.ErrorContains(t, err, "threads")

	_, err = ParseBenchConfig([]byte("iterations: [1\n"))
	assert.Error(t, err)

	_, err = LoadBenchConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}

func TestBenchConfigValidate(t *testing.T) {
	cfg := DefaultBenchConfig()
	cfg.Iterations = 0
	assert.ErrorIs(t, cfg.Validate(), bench.ErrInvalidIterations)

	cfg = DefaultBenchConfig()
	cfg.Strategies = []string{"simd"}
	assert.ErrorIs(t, cfg.Validate(), bench.ErrUnknownStrategy)
}
