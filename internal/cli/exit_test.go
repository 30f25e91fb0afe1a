package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", cause, ExitFailure},
		{"exit error", NewExitError(ExitCommandError, "bad flag"), ExitCommandError},
		{"wrapped exit error", fmt.Errorf("run: %w", WrapExitError(ExitFailure, "mismatch", cause)), ExitFailure},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetExitCode(tc.err))
		})
	}
}

func TestExitErrorMessage(t *testing.T) {
	cause := errors.New("boom")

	assert.Equal(t, "bad flag", NewExitError(ExitCommandError, "bad flag").Error())

	wrapped := WrapExitError(ExitFailure, "bench failed", cause)
	assert.Equal(t, "bench failed: boom", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}
