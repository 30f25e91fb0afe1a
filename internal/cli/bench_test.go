package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecexpr/internal/bench"
)

func TestBenchCommandJSON(t *testing.T) {
	stdout, _, err := execute(t, "bench", "--format", "json", "-n", "100", "--strategy", "lazy", "--strategy", "program")
	require.NoError(t, err)

	var report bench.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Len(t, report.Results, 2)

	assert.Equal(t, bench.StrategyLazy, report.Results[0].Strategy)
	assert.Equal(t, bench.StrategyProgram, report.Results[1].Strategy)
	for _, res := range report.Results {
		assert.Equal(t, 4, res.Dimension)
		assert.Equal(t, 100, res.Iterations)
		assert.Equal(t, bench.Expected(100), res.First)
		assert.Equal(t, 4*bench.Expected(100), res.Checksum)
		assert.NotEmpty(t, res.RunID)
	}
}

func TestBenchCommandText(t *testing.T) {
	stdout, _, err := execute(t, "bench", "--format", "text", "-n", "10", "--dim", "8")
	require.NoError(t, err)

	assert.Contains(t, stdout, "vecexpr bench")
	for _, s := range bench.AllStrategies() {
		assert.Contains(t, stdout, string(s))
	}
	assert.Contains(t, stdout, "31")
}

func TestBenchCommandMetrics(t *testing.T) {
	_, stderr, err := execute(t, "bench", "--format", "json", "-n", "10", "--metrics", "--per-accumulate", "--strategy", "eager")
	require.NoError(t, err)

	assert.Contains(t, stderr, "vecexpr_runs_total")
	assert.Contains(t, stderr, `strategy="eager"`)
	assert.Contains(t, stderr, "vecexpr_accumulate_total")
}

func TestBenchCommandConfig(t *testing.T) {
	path := writeConfig(t, "iterations: 5\ndimension: 2\nstrategies: [eager]\n")

	t.Run("file values", func(t *testing.T) {
		stdout, _, err := execute(t, "bench", "--format", "json", "--config", path)
		require.NoError(t, err)

		var report bench.Report
		require.NoError(t, json.Unmarshal([]byte(stdout), &report))
		require.Len(t, report.Results, 1)
		assert.Equal(t, 5, report.Results[0].Iterations)
		assert.Equal(t, 2, report.Results[0].Dimension)
	})

	t.Run("flags override file", func(t *testing.T) {
		stdout, _, err := execute(t, "bench", "--format", "json", "--config", path, "-n", "7")
		require.NoError(t, err)

		var report bench.Report
		require.NoError(t, json.Unmarshal([]byte(stdout), &report))
		require.Len(t, report.Results, 1)
		assert.Equal(t, 7, report.Results[0].Iterations)
		assert.Equal(t, bench.Expected(7), report.Results[0].First)
	})
}

func TestBenchCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero iterations", []string{"-n", "0"}},
		{"unknown strategy", []string{"--strategy", "simd"}},
		{"unsupported dimension", []string{"--dim", "7"}},
		{"missing config", []string{"--config", "does-not-exist.yaml"}},
		{"positional argument", []string{"extra"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"bench", "--format", "json"}, tc.args...)
			_, _, err := execute(t, args...)
			require.Error(t, err)
			if tc.name != "positional argument" {
				assert.Equal(t, ExitCommandError, GetExitCode(err))
			}
		})
	}
}
