// Package vec implements a generic dynamic array with explicit control over
// the split between logical length and allocated capacity.
package vec

import (
	"fmt"
	"iter"
)

// Vector is a growable contiguous sequence of elements of type T. It owns a
// single buffer of Cap() slots of which the first Len() hold live elements.
// Not goroutine-safe; callers needing concurrent access must synchronize
// externally.
//
// The zero value is an empty vector ready for use.
type Vector[T any] struct {
	buf  buffer[T]
	size int
}

// New creates an empty vector with no allocated storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize creates a vector of n zero-valued elements with capacity n.
// Panics if n is negative.
func NewSize[T any](n int) *Vector[T] {
	if n < 0 {
		panic(fmt.Sprintf("vec: NewSize with negative size %d", n))
	}
	return &Vector[T]{buf: newBuffer[T](n), size: n}
}

// NewFill creates a vector of n copies of value with capacity n.
// Panics if n is negative.
func NewFill[T any](n int, value T) *Vector[T] {
	v := NewSize[T](n)
	for i := 0; i < n; i++ {
		v.buf.set(i, value)
	}
	return v
}

// Of creates a vector holding items in order, with capacity equal to the
// number of items. The items are copied; the vector never aliases the
// caller's storage.
func Of[T any](items ...T) *Vector[T] {
	v := NewSize[T](len(items))
	for i, item := range items {
		v.buf.set(i, item)
	}
	return v
}

// NewReserved creates an empty vector whose storage is pre-allocated to the
// reservation's capacity. Unlike NewSize, no elements are materialized:
// Len() is 0 and Cap() is r.Capacity().
func NewReserved[T any](r Reservation) *Vector[T] {
	return &Vector[T]{buf: newBuffer[T](r.capacity)}
}

// Clone returns an independent copy of v holding the same elements. The
// clone's capacity equals v's capacity, not merely its length, so a clone of
// a vector with headroom keeps that headroom. Mutating the clone never
// affects v.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{buf: newBuffer[T](v.Cap()), size: v.size}
	v.buf.copyInto(&c.buf, v.size)
	return c
}

// Move creates a vector that takes ownership of src's buffer in O(1),
// leaving src empty with zero capacity. No elements are copied.
func Move[T any](src *Vector[T]) *Vector[T] {
	dst := &Vector[T]{}
	dst.Swap(src)
	return dst
}

// CopyFrom replaces v's contents with a copy of rhs. Copying from itself is
// a no-op. An empty rhs clears v in place, keeping v's storage; otherwise
// a full copy of rhs is built and swapped in, so a failure partway through
// can never leave v half-written.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	if rhs.IsEmpty() {
		v.Clear()
		return
	}
	tmp := rhs.Clone()
	v.Swap(tmp)
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated element slots. Cap never decreases
// except through Swap or Move.
func (v *Vector[T]) Cap() int {
	return v.buf.cap()
}

// IsEmpty reports whether the vector holds no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// growForAppend extends the live range by one slot, reallocating per the
// doubling policy when the buffer is full.
func (v *Vector[T]) growForAppend() {
	if v.size == v.Cap() {
		v.Resize(v.size + 1)
	} else {
		v.size++
	}
}

// PushBack appends value. When the buffer is full the capacity grows to
// max(Cap()*2, Len()+1), so a fresh vector's first push allocates one slot
// and later growths double. Amortized O(1).
func (v *Vector[T]) PushBack(value T) {
	v.growForAppend()
	v.buf.set(v.size-1, value)
}

// Insert places value at position i, shifting the elements at and after i
// one slot toward the back, and returns the position of the inserted
// element. i == Len() appends. Panics if i is outside [0, Len()].
//
// Positions are plain offsets into the live range, so the returned position
// stays meaningful across the reallocation Insert may trigger.
func (v *Vector[T]) Insert(i int, value T) int {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vec: Insert position %d out of range [0, %d]", i, v.size))
	}
	v.growForAppend()
	v.buf.shiftRight(i, v.size-1)
	v.buf.set(i, value)
	return i
}

// PopBack removes the last element without inspecting it. The slot's value
// is left behind in the dead region of the buffer. Panics if the vector is
// empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.size--
}

// Erase removes the element at position i, shifting every later element one
// slot toward the front, and returns i, which now addresses the element
// that followed the removed one (or equals Len() if the last element was
// removed). Panics if i is outside [0, Len()).
func (v *Vector[T]) Erase(i int) int {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: Erase position %d out of range [0, %d)", i, v.size))
	}
	v.buf.shiftLeft(i, v.size)
	v.size--
	return i
}

// Swap exchanges contents, length and capacity with other in O(1) by
// trading buffer ownership. No elements are copied.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.swap(&other.buf)
	v.size, other.size = other.size, v.size
}

// Reserve grows the capacity to exactly newCapacity, copying the live
// elements into the fresh buffer. Len() is unchanged. A newCapacity at or
// below Cap() is a no-op; capacity never shrinks.
func (v *Vector[T]) Reserve(newCapacity int) {
	if newCapacity <= v.Cap() {
		return
	}
	fresh := newBuffer[T](newCapacity)
	v.buf.copyInto(&fresh, v.size)
	v.buf.swap(&fresh)
}

// Resize sets the length to newSize. Growing within capacity zero-fills the
// slots entering the live range; growing past capacity reallocates to
// max(Cap()*2, newSize) and the new tail comes up zero-valued. Shrinking
// only lowers the length, leaving capacity and the abandoned values in
// place. Panics if newSize is negative.
func (v *Vector[T]) Resize(newSize int) {
	if newSize < 0 {
		panic(fmt.Sprintf("vec: Resize with negative size %d", newSize))
	}
	if newSize <= v.Cap() {
		if newSize > v.size {
			v.buf.zeroFill(v.size, newSize)
		}
	} else {
		fresh := newBuffer[T](max(v.Cap()*2, newSize))
		v.buf.copyInto(&fresh, v.size)
		v.buf.swap(&fresh)
	}
	v.size = newSize
}

// Clear drops all live elements by setting the length to zero. Storage is
// retained for reuse; Cap() is unchanged.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Get returns the element at index i. This is the unchecked hot-path
// accessor: an index outside [0, Len()) is a contract breach and panics.
// Use At to get an error instead.
func (v *Vector[T]) Get(i int) T {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.size))
	}
	return v.buf.get(i)
}

// Set overwrites the element at index i. Like Get, bounds are the caller's
// contract: an index outside [0, Len()) panics.
func (v *Vector[T]) Set(i int, value T) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.size))
	}
	v.buf.set(i, value)
}

// All returns an iterator over index/element pairs of the live range.
// An empty vector yields an empty sequence. The vector must not be mutated
// during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.get(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.get(i)) {
				return
			}
		}
	}
}
