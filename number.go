package vecexpr

// Number is the set of element types a Vector can hold.
//
// Every member has an additive identity T(0), a multiplicative identity T(1)
// and supports + and +=.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Zero returns the additive identity of T.
func Zero[T Number]() T {
	return T(0)
}

// One returns the multiplicative identity of T.
func One[T Number]() T {
	return T(1)
}
