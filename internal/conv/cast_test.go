//go:build amd64 || arm64

package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid max", func(t *testing.T) {
		got, err := IntToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		var oe *OverflowError
		require.True(t, errors.As(err, &oe))
		assert.Equal(t, "negative", oe.Reason)
		assert.Equal(t, "uint32", oe.Target)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := IntToUint32(math.MaxUint32 + 1)
		assert.EqualError(t, err, "integer overflow: 4294967296 cannot be converted to uint32 (too large)")
	})
}

func TestUint64ToInt(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := Uint64ToInt(10000)
		assert.NoError(t, err)
		assert.Equal(t, 10000, got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := Uint64ToInt(uint64(math.MaxInt))
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToInt(math.MaxUint64)
		assert.Error(t, err)
	})
}

func TestPositiveInt(t *testing.T) {
	got, err := PositiveInt(4, "dimension")
	assert.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = PositiveInt(0, "iterations")
	assert.EqualError(t, err, "iterations must be positive, got 0")

	_, err = PositiveInt(-3, "iterations")
	assert.Error(t, err)
}
