package vec

// buffer is the exclusive owner of a contiguous block of element slots.
// It hands out unchecked slot access and transfers ownership in O(1) via
// swap; it never inspects which slots are live. Bounds discipline is the
// engine's job, not the buffer's.
type buffer[T any] struct {
	slots []T
}

// newBuffer allocates a buffer of n zero-valued slots.
// A non-positive n yields a buffer with no storage.
func newBuffer[T any](n int) buffer[T] {
	if n <= 0 {
		return buffer[T]{}
	}
	return buffer[T]{slots: make([]T, n)}
}

// cap returns the number of allocated slots.
func (b *buffer[T]) cap() int {
	return len(b.slots)
}

// get reads slot i without bounds checking beyond the slice's own.
func (b *buffer[T]) get(i int) T {
	return b.slots[i]
}

// set writes slot i without bounds checking beyond the slice's own.
func (b *buffer[T]) set(i int, v T) {
	b.slots[i] = v
}

// swap exchanges storage ownership with other in O(1). No elements are
// copied or moved; the two owners simply trade blocks.
func (b *buffer[T]) swap(other *buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// shiftRight opens a hole at slot i by moving slots [i, end) one slot
// toward the back. The caller guarantees end < cap.
func (b *buffer[T]) shiftRight(i, end int) {
	copy(b.slots[i+1:end+1], b.slots[i:end])
}

// shiftLeft closes the hole at slot i by moving slots (i, end) one slot
// toward the front.
func (b *buffer[T]) shiftLeft(i, end int) {
	copy(b.slots[i:end-1], b.slots[i+1:end])
}

// copyInto copies the first n slots into dst, which must have capacity
// for them. Used when the engine adopts a larger buffer.
func (b *buffer[T]) copyInto(dst *buffer[T], n int) {
	copy(dst.slots[:n], b.slots[:n])
}

// zeroFill resets slots [from, to) to the zero value of T.
func (b *buffer[T]) zeroFill(from, to int) {
	clear(b.slots[from:to])
}
