package vec

// Checked element access. Get and Set treat an out-of-range index as a
// broken caller contract and panic; At and SetAt treat it as a runtime
// condition and report it as a *RangeError. The two tiers behave
// identically for in-range indexes.

// At returns the element at index i, or a *RangeError if i is outside
// [0, Len()). This is the only recoverable failure the vector reports;
// every other misuse panics.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, &RangeError{Index: i, Len: v.size}
	}
	return v.buf.get(i), nil
}

// SetAt overwrites the element at index i, or returns a *RangeError if i is
// outside [0, Len()).
func (v *Vector[T]) SetAt(i int, value T) error {
	if i < 0 || i >= v.size {
		return &RangeError{Index: i, Len: v.size}
	}
	v.buf.set(i, value)
	return nil
}
