package vecexpr

// Evaluable produces the value at a single element index without
// materializing a full vector.
//
// Vectors are leaf Evaluables; Node and Program are composite ones. Any of
// them can be used wherever an element-wise readable source is expected.
type Evaluable[T Number, D Dim] interface {
	// Eval returns the element at index i.
	//
	// SAFETY: i must be in [0, D.Len()). The index is not checked beyond what
	// the Go runtime does for slice access. Eval has no side effects and may
	// be called any number of times in any order.
	Eval(i int) T

	// Dim returns the zero value of the dimension type. It exists so that
	// Evaluables of different dimensions are distinct interface types.
	Dim() D
}

// depther is implemented by composite Evaluables that know their tree depth.
type depther interface {
	Depth() int
}

// depthOf returns the expression depth of e. Leaves have depth 0.
func depthOf(e any) int {
	if d, ok := e.(depther); ok {
		return d.Depth()
	}
	return 0
}
