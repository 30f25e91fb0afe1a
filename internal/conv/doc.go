// Package conv provides checked integer conversions.
//
// Use cases:
//   - Turning arena slot indices into fixed-width handles
//   - Validating counts read from flags and config files
//
// For conversions that are provably safe by construction (loop indices,
// bounded counters), use direct type casts instead.
package conv
