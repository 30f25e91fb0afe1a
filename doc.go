// Package vecexpr evaluates element-wise arithmetic over fixed-size vectors
// without materializing temporary vectors.
//
// Eager vector arithmetic allocates a new vector for every operator in a
// chain like a+b+c+d. vecexpr instead represents the chain as an unevaluated
// expression tree and evaluates the whole tree element by element, directly
// into a destination vector, exactly once.
//
// # Quick Start
//
//	a := vecexpr.Ones[float64, vecexpr.D4]()
//	b := vecexpr.Ones[float64, vecexpr.D4]()
//	c := vecexpr.Ones[float64, vecexpr.D4]()
//	d := vecexpr.Zeros[float64, vecexpr.D4]()
//
//	sum := vecexpr.Ones[float64, vecexpr.D4]()
//	vecexpr.Accumulate(sum, vecexpr.Add(a.Add(b), c.Add(d))) // sum = [4 4 4 4]
//
// # Dimensions
//
// The vector length is a type parameter (D4, D16, ... or any type
// implementing Dim). Combining vectors of different dimensions is a compile
// error, so there is no runtime size check.
//
// # Expression Trees
//
//   - Vector: leaf operand and evaluation destination
//   - Node: lazy binary operation over two Evaluables, built with Add.
//     The operand types are type parameters, so building and evaluating a
//     Node allocates nothing
//   - Builder/Program: the same trees stored in a reusable arena and
//     addressed by Handle; rebuilding and evaluating allocate nothing
//
// Accumulate and Assign are the only operations that evaluate anything.
// The destination must not appear inside the expression it receives.
//
// # Baseline
//
// Sum and AddAssign implement the eager strategy for comparison.
package vecexpr
