package vecexpr

import (
	"fmt"
	"strings"
)

// Node is a composite Evaluable: a binary operator applied to two operands.
//
// The operand types are type parameters, so a Node stores its operands by
// value (vectors by pointer) and nested nodes are never boxed into
// interfaces. Building a Node evaluates nothing and allocates nothing:
//
//	expr := vecexpr.Add(a.Add(b), c.Add(d)) // ((a + b) + (c + d))
//	vecexpr.Accumulate(sum, expr)
//
// A Node reads its operands at evaluation time, so it observes any writes made
// to them after construction. It is meant to be built and consumed within a
// single evaluation.
type Node[T Number, D Dim, L Evaluable[T, D], R Evaluable[T, D]] struct {
	left  L
	right R
	op    Op
}

// Add returns the lazy element-wise sum of left and right.
// T and D are inferred from the operands.
func Add[T Number, D Dim, L Evaluable[T, D], R Evaluable[T, D]](left L, right R) Node[T, D, L, R] {
	return Node[T, D, L, R]{left: left, right: right, op: OpAdd}
}

// Eval returns left.Eval(i) op right.Eval(i). The left operand is always
// evaluated first.
func (n Node[T, D, L, R]) Eval(i int) T {
	l := n.left.Eval(i)
	r := n.right.Eval(i)
	return Apply(n.op, l, r)
}

// Dim implements Evaluable.
func (n Node[T, D, L, R]) Dim() D {
	var d D
	return d
}

// Op returns the operator of the node.
func (n Node[T, D, L, R]) Op() Op {
	return n.op
}

// Left returns the left operand.
func (n Node[T, D, L, R]) Left() L {
	return n.left
}

// Right returns the right operand.
func (n Node[T, D, L, R]) Right() R {
	return n.right
}

// Depth returns the height of the expression tree. A node over two leaves
// has depth 1.
func (n Node[T, D, L, R]) Depth() int {
	return 1 + max(depthOf(n.left), depthOf(n.right))
}

// String renders the expression in fully parenthesized infix form.
func (n Node[T, D, L, R]) String() string {
	var sb strings.Builder
	writeExpr(&sb, n)
	return sb.String()
}

func writeExpr(sb *strings.Builder, e any) {
	switch x := e.(type) {
	case interface {
		Op() Op
		operands() (any, any)
	}:
		l, r := x.operands()
		sb.WriteByte('(')
		writeExpr(sb, l)
		sb.WriteByte(' ')
		sb.WriteString(x.Op().Symbol())
		sb.WriteByte(' ')
		writeExpr(sb, r)
		sb.WriteByte(')')
	case fmt.Stringer:
		sb.WriteString(x.String())
	default:
		fmt.Fprint(sb, x)
	}
}

func (n Node[T, D, L, R]) operands() (any, any) {
	return n.left, n.right
}
