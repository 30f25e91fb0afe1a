// Package cpuinfo reports the host CPU vector extensions.
//
// Evaluation in vecexpr is scalar. The feature set is recorded next to
// benchmark results so that timings from different machines can be compared.
//
// Set VECEXPR_ISA to pretend a lower ISA is the best one available, which
// keeps reports stable across CI runners.
package cpuinfo
