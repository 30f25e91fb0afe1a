// Package bench times repeated evaluation of the four-operand sum
//
//	sum += (a + b) + (c + d)    a = b = c = ones, d = zeros, sum = ones
//
// under three strategies:
//
//   - eager: Sum/AddAssign, one temporary vector per operator
//   - lazy: a Node tree rebuilt every iteration and accumulated into sum
//   - program: a Builder arena built once and accumulated every iteration
//
// After K iterations every element of sum equals 1 + 3K for every strategy.
package bench
