package vecexpr

// Sum returns a new vector holding a + b, computed immediately.
//
// Sum is the eager baseline: a chain like Sum(Sum(a, b), c) allocates one
// temporary vector per operator. Use Add and Accumulate to avoid that.
func Sum[T Number, D Dim](a, b *Vector[T, D]) *Vector[T, D] {
	out := Zeros[T, D]()
	for i := range out.elems {
		out.elems[i] = a.elems[i] + b.elems[i]
	}
	return out
}

// AddAssign adds a materialized vector to v in place.
func (v *Vector[T, D]) AddAssign(other *Vector[T, D]) {
	for i := range v.elems {
		v.elems[i] += other.elems[i]
	}
}
