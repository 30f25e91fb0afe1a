// Package testutil provides testing utilities for vecexpr.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random vectors and computing
// eager ground-truth results to compare lazy evaluation against.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vals := testutil.Uniform[float64](rng, 16, -1, 1)
//	vecs := testutil.UniformVectors[int](rng, 4, 16, -100, 100)
//
// # Ground Truth
//
//	want := testutil.ElementwiseSum(a, b, c, d)
//	want = testutil.Repeat(initial, want, iterations)
package testutil
