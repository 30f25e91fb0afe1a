package testutil

import (
	"math/rand"
	"sync"
)

// Element is the set of element types the generators can produce.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillUniform fills dst with values drawn uniformly from [minVal, maxVal).
// Locks only once per call. For integer element types the values are
// truncated toward zero.
func FillUniform[T Element](r *RNG, dst []T, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = T(minVal + r.rand.Float64()*span)
	}
}

// Uniform returns n values drawn uniformly from [minVal, maxVal).
func Uniform[T Element](r *RNG, n int, minVal, maxVal float64) []T {
	out := make([]T, n)
	FillUniform(r, out, minVal, maxVal)
	return out
}

// UniformVectors generates num random vectors of the given dimension.
// Uses a single backing array for efficiency.
func UniformVectors[T Element](r *RNG, num, dimensions int, minVal, maxVal float64) [][]T {
	data := Uniform[T](r, num*dimensions, minVal, maxVal)
	vectors := make([][]T, num)
	for i := range num {
		vectors[i] = data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
	}
	return vectors
}

// ElementwiseSum computes the element-wise sum of vectors the eager way.
// It is the ground truth for lazy evaluation tests.
// All vectors must have the same length.
func ElementwiseSum[T Element](vectors ...[]T) []T {
	if len(vectors) == 0 {
		return nil
	}
	out := make([]T, len(vectors[0]))
	for _, v := range vectors {
		for i := range out {
			out[i] += v[i]
		}
	}
	return out
}

// Repeat returns v accumulated k times onto base: base[i] + k*v[i].
func Repeat[T Element](base, v []T, k int) []T {
	out := make([]T, len(base))
	copy(out, base)
	for range k {
		for i := range out {
			out[i] += v[i]
		}
	}
	return out
}
