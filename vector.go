package vecexpr

import "fmt"

// Vector is a fixed-size numeric vector and the leaf of every expression tree.
//
// The element storage is allocated once by the constructor and never resized.
// A Vector is also the destination of an evaluation: Accumulate and Assign
// are the only places where an expression tree is actually evaluated.
//
// Copying a Vector value, or its pointer, shares the element storage. Clone
// is the only way to obtain an independent copy.
type Vector[T Number, D Dim] struct {
	elems []T
}

// Zeros returns a vector with every element set to the additive identity.
func Zeros[T Number, D Dim]() *Vector[T, D] {
	return Fill[T, D](Zero[T]())
}

// Ones returns a vector with every element set to the multiplicative identity.
func Ones[T Number, D Dim]() *Vector[T, D] {
	return Fill[T, D](One[T]())
}

// Fill returns a vector with every element set to x.
func Fill[T Number, D Dim](x T) *Vector[T, D] {
	v := &Vector[T, D]{elems: make([]T, mustLen[D]())}
	for i := range v.elems {
		v.elems[i] = x
	}
	return v
}

// New returns a vector holding a copy of values.
// len(values) must equal the dimension of D.
func New[T Number, D Dim](values ...T) (*Vector[T, D], error) {
	n := mustLen[D]()
	if len(values) != n {
		return nil, &ErrDimensionMismatch{Expected: n, Actual: len(values)}
	}
	v := &Vector[T, D]{elems: make([]T, n)}
	copy(v.elems, values)
	return v, nil
}

// Eval returns the element at index i.
func (v *Vector[T, D]) Eval(i int) T {
	return v.elems[i]
}

// Dim implements Evaluable.
func (v *Vector[T, D]) Dim() D {
	var d D
	return d
}

// Len returns the number of elements.
func (v *Vector[T, D]) Len() int {
	return len(v.elems)
}

// At returns the element at index i.
func (v *Vector[T, D]) At(i int) T {
	return v.elems[i]
}

// Set stores x at index i.
func (v *Vector[T, D]) Set(i int, x T) {
	v.elems[i] = x
}

// Values returns a copy of the elements.
func (v *Vector[T, D]) Values() []T {
	out := make([]T, len(v.elems))
	copy(out, v.elems)
	return out
}

// Clone returns an independent copy of v.
func (v *Vector[T, D]) Clone() *Vector[T, D] {
	return &Vector[T, D]{elems: v.Values()}
}

// Add returns the lazy element-wise sum of v and other.
// Nothing is evaluated until the result reaches Accumulate or Assign.
// To combine v with a Node, use the package-level Add.
func (v *Vector[T, D]) Add(other *Vector[T, D]) Node[T, D, *Vector[T, D], *Vector[T, D]] {
	return Add[T, D](v, other)
}

// String formats the elements like a Go slice, e.g. "[1 1 1 1]".
func (v *Vector[T, D]) String() string {
	return fmt.Sprint(v.elems)
}
