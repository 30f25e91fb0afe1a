package vecexpr

// Dim fixes the length of a vector at the type level.
//
// Implementations are zero-size types whose Len method returns a constant:
//
//	type D3 struct{}
//
//	func (D3) Len() int { return 3 }
//
// Because the dimension is part of the type, combining a Vector[T, D4] with a
// Vector[T, D8] does not compile. Len must return a positive value; the
// constructors panic with *ErrInvalidDimension otherwise.
type Dim interface {
	Len() int
}

// Predeclared dimensions.
type (
	D1    struct{}
	D2    struct{}
	D3    struct{}
	D4    struct{}
	D8    struct{}
	D16   struct{}
	D32   struct{}
	D64   struct{}
	D128  struct{}
	D256  struct{}
	D512  struct{}
	D1024 struct{}
)

func (D1) Len() int    { return 1 }
func (D2) Len() int    { return 2 }
func (D3) Len() int    { return 3 }
func (D4) Len() int    { return 4 }
func (D8) Len() int    { return 8 }
func (D16) Len() int   { return 16 }
func (D32) Len() int   { return 32 }
func (D64) Len() int   { return 64 }
func (D128) Len() int  { return 128 }
func (D256) Len() int  { return 256 }
func (D512) Len() int  { return 512 }
func (D1024) Len() int { return 1024 }

// Len returns the dimension carried by D.
func Len[D Dim]() int {
	var d D
	return d.Len()
}

// mustLen returns the dimension of D and panics if it is not positive.
func mustLen[D Dim]() int {
	n := Len[D]()
	if n <= 0 {
		panic(&ErrInvalidDimension{Dimension: n})
	}
	return n
}
