package utils

// Number constrains a type parameter to the built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Between returns a predicate reporting whether a value lies within
// [lo, hi], both inclusive. Handy as a FilterValues predicate.
func Between[T Number](lo, hi T) func(T) bool {
	return func(v T) bool {
		return lo <= v && v <= hi
	}
}

// NotZero returns a predicate reporting whether a value differs from the
// zero value of its type.
func NotZero[T comparable]() func(T) bool {
	return func(v T) bool {
		var zero T
		return v != zero
	}
}
