package vec

import "cmp"

// Equal reports whether a and b hold equal elements in the same order.
// A vector compared against itself is equal without an element walk.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a == b {
		return true
	}
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.buf.get(i) != b.buf.get(i) {
			return false
		}
	}
	return true
}

// EqualFunc is Equal for element types that are not comparable; eq reports
// whether two elements are equal.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a == b {
		return true
	}
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf.get(i), b.buf.get(i)) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically: the first differing position
// decides, and when one sequence is a prefix of the other the shorter one
// orders first. The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a.buf.get(i), b.buf.get(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}

// CompareFunc is Compare for element types outside cmp.Ordered; compare
// must return a negative, zero or positive result like cmp.Compare.
func CompareFunc[T any](a, b *Vector[T], compare func(x, y T) int) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := compare(a.buf.get(i), b.buf.get(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}

// Less reports whether a orders strictly before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessEqual reports whether a orders before b or equals it.
func LessEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater reports whether a orders strictly after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterEqual reports whether a orders after b or equals it.
func GreaterEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
