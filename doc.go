// Package vec implements a generic dynamic array (growable vector) for Go.
//
// # Overview
//
// A Vector owns a single contiguous buffer and tracks two quantities
// separately: the length (live elements) and the capacity (allocated
// slots). Appends reuse spare capacity until the buffer fills, then the
// capacity doubles, giving amortized O(1) appends. This is useful for:
//
//   - Building sequences of unknown final size without per-append allocation
//   - Pre-sizing storage for a known workload via Reserve
//   - Positional insertion and removal with explicit cost (O(n) shifts)
//   - Value-style container semantics (Clone, CopyFrom, ordering operators)
//
// # Basic Usage
//
//	v := vec.Of(1, 2, 3)
//	v.PushBack(4)          // grows capacity 3 -> 6
//	v.Insert(1, 10)        // v is now {1, 10, 2, 3, 4}
//	v.Erase(0)             // v is now {10, 2, 3, 4}
//
//	// Pre-allocate without materializing elements
//	w := vec.NewReserved[int](vec.Reserve(128))
//	for i := 0; i < 100; i++ {
//		w.PushBack(i) // never reallocates
//	}
//
// # Checked and Unchecked Access
//
// Element access comes in two tiers with different failure contracts.
// Get and Set are the hot-path accessors: an out-of-range index is a
// programming error and panics. At and SetAt are the defensive accessors:
// an out-of-range index returns a *RangeError matching ErrOutOfRange.
//
//	x := v.Get(0)             // panics if v is empty
//	x, err := v.At(10)        // err if 10 >= v.Len()
//	if errors.Is(err, vec.ErrOutOfRange) { ... }
//
// # Growth and Positions
//
// Capacity never shrinks; Clear, PopBack and a shrinking Resize only lower
// the length and keep the storage for reuse. Positions are integer offsets
// into the live range [0, Len()), so a position survives the reallocation
// an Insert or PushBack may trigger; it only goes stale when a removal or
// shrink moves the length below it.
//
// # Thread Safety
//
// Vector performs no internal synchronization and is not safe for
// concurrent mutation or read-while-write. Callers needing concurrent
// access must provide external locking.
//
// # Performance Characteristics
//
//   - PushBack: O(1) amortized
//   - Insert, Erase: O(n) element shift
//   - Swap, Move, Clear, PopBack: O(1)
//   - Clone, CopyFrom, Reserve, growing Resize: O(n)
//
// # Metrics
//
// The vector reports its storage accounting for monitoring growth behavior:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Spare slots: %d\n", m.Spare)
package vec
