package vec

// Buffer is a single contiguous allocation of exactly Cap() zero-valued
// elements of T, exclusively owned by one Vector at a time. It has no
// resizing logic of its own: a Vector that needs more room allocates a
// fresh Buffer, migrates elements, and takes ownership via Swap.
//
// A Buffer with capacity 0 holds no allocation at all (Data returns nil),
// never a zero-length one.
type Buffer[T any] struct {
	data []T
}

// NewBuffer allocates storage for exactly n elements of T, each set to the
// zero value. Negative n is treated as 0. For n == 0 no allocation is made.
// Allocation that cannot be satisfied aborts the process; a Buffer is never
// observable in a half-constructed state.
func NewBuffer[T any](n int) *Buffer[T] {
	b := &Buffer[T]{}
	if n > 0 {
		b.data = make([]T, n)
	}
	return b
}

// Data returns the backing storage, or nil if the capacity is 0.
// Callers must not retain the slice across a Swap.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Cap returns the number of allocated slots.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// At returns the element at index i without bounds checking beyond the
// runtime's own. i must be in [0, Cap()).
func (b *Buffer[T]) At(i int) T {
	return b.data[i]
}

// Set stores v at index i without bounds checking beyond the runtime's own.
// i must be in [0, Cap()).
func (b *Buffer[T]) Set(i int, v T) {
	b.data[i] = v
}

// Swap exchanges the owned allocation with other's in O(1). No elements are
// migrated; only ownership moves. Each buffer ends up with exactly one owner
// for its (possibly nil) allocation.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
}
