package vecexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	a, err := New[int, D4](1, 2, 3, 4)
	require.NoError(t, err)
	b, err := New[int, D4](10, 20, 30, 40)
	require.NoError(t, err)

	s := Sum(a, b)
	assert.Equal(t, []int{11, 22, 33, 44}, s.Values())
	assert.NotSame(t, a, s)
	assert.Equal(t, []int{1, 2, 3, 4}, a.Values())
}

func TestAddAssign(t *testing.T) {
	sum := Ones[float64, D4]()
	a := Ones[float64, D4]()
	b := Ones[float64, D4]()
	c := Ones[float64, D4]()
	d := Zeros[float64, D4]()

	sum.AddAssign(Sum(Sum(Sum(a, b), c), d))
	assert.Equal(t, []float64{4, 4, 4, 4}, sum.Values())
}

func TestSumAllocates(t *testing.T) {
	a := Ones[float64, D64]()
	b := Ones[float64, D64]()

	allocs := testing.AllocsPerRun(10, func() {
		_ = Sum(a, b)
	})
	assert.GreaterOrEqual(t, allocs, 1.0)
}
