package vecexpr

import "fmt"

// Op identifies the element-wise operator of a Node.
//
// Nodes are generic over the operator tag instead of having one node type per
// operator. New operators only need a constant here and a case in Apply.
type Op uint8

const (
	// OpAdd is element-wise addition.
	OpAdd Op = iota
)

// Apply combines two element values.
func Apply[T Number](op Op, a, b T) T {
	switch op {
	case OpAdd:
		return a + b
	default:
		panic(fmt.Sprintf("vecexpr: unknown operator %d", op))
	}
}

// Symbol returns the infix symbol used when rendering expressions.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	default:
		return "?"
	}
}

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "Add"
	default:
		return fmt.Sprintf("Unknown(%d)", o)
	}
}
