package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecexpr/internal/bench"
)

func TestEvalCommandText(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", nil, "[4 4 4 4]\n"},
		{"eager", []string{"--strategy", "eager"}, "[4 4 4 4]\n"},
		{"program", []string{"--strategy", "program", "-n", "10000"}, "[30001 30001 30001 30001]\n"},
		{"dimension", []string{"--dim", "2", "-n", "3"}, "[10 10]\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"eval", "--format", "text"}, tc.args...)
			stdout, _, err := execute(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, stdout)
		})
	}
}

func TestEvalCommandJSON(t *testing.T) {
	stdout, _, err := execute(t, "eval", "--format", "json", "--dim", "3", "-n", "2")
	require.NoError(t, err)

	var res EvalResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, EvalResult{
		Strategy:   bench.StrategyLazy,
		Dimension:  3,
		Iterations: 2,
		Values:     []float64{7, 7, 7},
	}, res)
}

func TestEvalCommandErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--dim", "5"},
		{"--iterations=-1"},
		{"--strategy", "simd"},
	} {
		_, _, err := execute(t, append([]string{"eval", "--format", "json"}, args...)...)
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	}
}

func TestFormatValues(t *testing.T) {
	assert.Equal(t, "[]", formatValues(nil))
	assert.Equal(t, "[1.5 -2 30001]", formatValues([]float64{1.5, -2, 30001}))
}
