package vecexpr

import (
	"errors"
	"fmt"
)

var (
	// ErrArenaFull is returned when a Builder has reached its capacity.
	ErrArenaFull = errors.New("expression arena is full")

	// ErrNilVector is returned when a nil vector is registered as an operand.
	ErrNilVector = errors.New("nil vector operand")

	// ErrStaleProgram is the panic value of evaluating a Program whose
	// Builder has been reset.
	ErrStaleProgram = errors.New("program used after builder reset")
)

// ErrDimensionMismatch indicates that a value count does not match the
// dimension of the vector type.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates a non-positive dimension.
//
// The underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

// NewErrInvalidDimension returns an *ErrInvalidDimension wrapping cause.
func NewErrInvalidDimension(dim int, cause error) *ErrInvalidDimension {
	return &ErrInvalidDimension{Dimension: dim, cause: cause}
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }

// ErrInvalidHandle indicates a null handle, one issued by another Builder or
// one issued before the last Reset.
type ErrInvalidHandle struct {
	Handle Handle
	Reason string
}

func (e *ErrInvalidHandle) Error() string {
	if e.Handle == NullHandle {
		return "invalid handle: null"
	}
	return fmt.Sprintf("invalid handle %#x: %s", uint64(e.Handle), e.Reason)
}

// ErrArenaOverflow indicates that the arena outgrew the handle space.
//
// The underlying error can be accessed via errors.Unwrap.
type ErrArenaOverflow struct {
	cause error
}

func (e *ErrArenaOverflow) Error() string {
	return fmt.Sprintf("expression arena overflow: %v", e.cause)
}

func (e *ErrArenaOverflow) Unwrap() error { return e.cause }

// Is reports ErrArenaFull as a match so callers need a single check.
func (e *ErrArenaOverflow) Is(target error) bool {
	return target == ErrArenaFull
}
