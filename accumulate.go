package vecexpr

// Accumulate evaluates expr once per index and adds the result to dst in
// place:
//
//	dst[i] += expr.Eval(i)  for i in [0, N)
//
// This is where evaluation happens. It performs exactly N tree evaluations and
// N additions. The expression type is a type parameter, so a Node passed here
// is not boxed and nothing is allocated. expr is not modified.
//
// expr must not read from dst. Accumulating an expression that contains the
// destination yields unspecified results.
func Accumulate[T Number, D Dim, E Evaluable[T, D]](dst *Vector[T, D], expr E) {
	elems := dst.elems
	for i := range elems {
		elems[i] += expr.Eval(i)
	}
}

// Assign evaluates expr once per index and overwrites dst:
//
//	dst[i] = expr.Eval(i)  for i in [0, N)
//
// The aliasing rule of Accumulate applies.
func Assign[T Number, D Dim, E Evaluable[T, D]](dst *Vector[T, D], expr E) {
	elems := dst.elems
	for i := range elems {
		elems[i] = expr.Eval(i)
	}
}
