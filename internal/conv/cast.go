package conv

import (
	"fmt"
	"math"
)

// OverflowError reports a value that does not fit the target integer type.
type OverflowError struct {
	Value  string
	Target string
	Reason string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("integer overflow: %s cannot be converted to %s (%s)", e.Value, e.Target, e.Reason)
}

func overflow[V int | uint64](v V, target, reason string) error {
	return &OverflowError{Value: fmt.Sprint(v), Target: target, Reason: reason}
}

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, overflow(v, "uint32", "negative")
	}
	if uint64(v) > math.MaxUint32 {
		return 0, overflow(v, "uint32", "too large")
	}
	return uint32(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, overflow(v, "int", "too large")
	}
	return int(v), nil
}

// PositiveInt returns v if it is strictly positive.
// It is used for counts read from flags and config files.
func PositiveInt(v int, name string) (int, error) {
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, v)
	}
	return v, nil
}
