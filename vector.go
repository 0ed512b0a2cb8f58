package vec

import (
	"iter"

	"github.com/pkg/errors"
)

// ReserveHint is an immutable request to pre-allocate capacity without
// populating elements. It carries no ownership; it is consumed only by
// NewReserve.
type ReserveHint struct {
	capacity int
}

// Reserve returns a hint asking for at least n slots of capacity.
// Negative n is treated as 0.
func Reserve(n int) ReserveHint {
	if n < 0 {
		n = 0
	}
	return ReserveHint{capacity: n}
}

// Capacity returns the requested capacity.
func (h ReserveHint) Capacity() int {
	return h.capacity
}

// Vector is a generic dynamic array: contiguous storage, index-ordered
// elements, amortized O(1) append. It owns exactly one Buffer at a time;
// every mutating operation either writes within existing capacity or
// allocates a replacement Buffer, migrates the elements, and takes
// ownership via an O(1) swap.
//
// Invariants: 0 <= Len() <= Cap(); elements at [0, Len()) are the logical
// sequence; slots at [Len(), Cap()) are unspecified placeholders. Capacity
// never shrinks except through Swap with a smaller vector.
//
// The zero value is a ready-to-use empty vector with capacity 0.
// Not goroutine-safe; concurrent reads are fine only without a concurrent
// writer.
type Vector[T any] struct {
	buf  Buffer[T]
	size int
}

// New returns an empty vector with capacity 0.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize returns a vector of n zero-valued elements, with capacity exactly n.
// Negative n is treated as 0.
func NewSize[T any](n int) *Vector[T] {
	if n < 0 {
		n = 0
	}
	v := &Vector[T]{size: n}
	v.buf.Swap(NewBuffer[T](n))
	return v
}

// NewFill returns a vector of n elements, each a copy of value, with
// capacity exactly n. Negative n is treated as 0.
func NewFill[T any](n int, value T) *Vector[T] {
	v := NewSize[T](n)
	data := v.buf.Data()
	for i := range data {
		data[i] = value
	}
	return v
}

// Of returns a vector holding elems in order, with capacity exactly
// len(elems).
func Of[T any](elems ...T) *Vector[T] {
	v := NewSize[T](len(elems))
	copy(v.buf.Data(), elems)
	return v
}

// NewReserve returns an empty vector whose capacity is pre-sized to
// h.Capacity(). Subsequent pushes reuse that capacity without reallocating
// until it is exceeded.
func NewReserve[T any](h ReserveHint) *Vector[T] {
	v := &Vector[T]{}
	v.buf.Swap(NewBuffer[T](h.Capacity()))
	return v
}

// Len returns the number of logically present elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.buf.Cap()
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Get returns the element at index i without a logical bounds check.
// i must be in [0, Len()); behavior outside that contract is undefined
// (the runtime panics past the allocation, and slots between Len() and
// Cap() hold unspecified placeholders).
func (v *Vector[T]) Get(i int) T {
	return v.buf.At(i)
}

// Set stores value at index i without a logical bounds check.
// Same contract as Get.
func (v *Vector[T]) Set(i int, value T) {
	v.buf.Set(i, value)
}

// At returns the element at index i, or an error wrapping ErrOutOfRange
// when i is not in [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "index %d, len %d", i, v.size)
	}
	return v.buf.At(i), nil
}

// SetAt stores value at index i, or returns an error wrapping ErrOutOfRange
// when i is not in [0, Len()).
func (v *Vector[T]) SetAt(i int, value T) error {
	if i < 0 || i >= v.size {
		return errors.Wrapf(ErrOutOfRange, "index %d, len %d", i, v.size)
	}
	v.buf.Set(i, value)
	return nil
}

// Clear logically empties the vector. Capacity is kept and the vacated
// slots are not touched.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize sets the length to n. Shrinking is purely logical. Growing within
// capacity zeroes the newly exposed slots, which may hold stale values from
// earlier shrinks. Growing past capacity allocates per the doubling policy,
// migrates the existing elements, and zeroes the remainder up to n.
// Negative n is treated as 0.
func (v *Vector[T]) Resize(n int) {
	switch {
	case n <= v.size:
		if n < 0 {
			n = 0
		}
		v.size = n
	case n <= v.buf.Cap():
		data := v.buf.Data()
		clear(data[v.size:n])
		v.size = n
	default:
		// A fresh buffer is already zero-valued past the migrated prefix.
		v.grow(NextCapacity(v.buf.Cap(), n))
		v.size = n
	}
}

// PushBack appends value, growing per the doubling policy when full
// (capacity 0 grows to exactly 1). Amortized O(1).
func (v *Vector[T]) PushBack(value T) {
	if v.size == v.buf.Cap() {
		v.grow(NextCapacity(v.buf.Cap(), v.size+1))
	}
	v.buf.Set(v.size, value)
	v.size++
}

// PopBack removes the last element. A no-op on an empty vector.
// The vacated slot is not touched.
func (v *Vector[T]) PopBack() {
	if v.size > 0 {
		v.size--
	}
}

// Insert places value at position i, shifting elements at and after i one
// slot right, and returns i. i must be in [0, Len()]; anything else panics.
// When full, capacity doubles (capacity 0 becomes 1) and the prefix and
// suffix are migrated around the new element into the replacement buffer
// before ownership swaps, so a failed allocation can never leave a
// partially shifted sequence.
func (v *Vector[T]) Insert(i int, value T) int {
	if i < 0 || i > v.size {
		panic("vec: Insert position out of range")
	}
	if v.size == v.buf.Cap() {
		next := NewBuffer[T](NextCapacity(v.buf.Cap(), v.size+1))
		data := v.buf.Data()
		dst := next.Data()
		copy(dst, data[:i])
		dst[i] = value
		copy(dst[i+1:], data[i:v.size])
		v.buf.Swap(next)
	} else {
		data := v.buf.Data()
		copy(data[i+1:v.size+1], data[i:v.size])
		data[i] = value
	}
	v.size++
	return i
}

// Erase removes the element at position i, shifting the suffix left, and
// returns the position now holding the following element (== i; equal to
// Len() when the last element was removed). The vector must be non-empty
// and i in [0, Len()); anything else panics.
func (v *Vector[T]) Erase(i int) int {
	if v.size == 0 {
		panic("vec: Erase on empty vector")
	}
	if i < 0 || i >= v.size {
		panic("vec: Erase position out of range")
	}
	data := v.buf.Data()
	copy(data[i:v.size-1], data[i+1:v.size])
	v.size--
	return i
}

// Reserve grows capacity to exactly n, migrating all elements, when n
// exceeds the current capacity. Otherwise a no-op. Length is unchanged
// either way.
func (v *Vector[T]) Reserve(n int) {
	if n > v.buf.Cap() {
		v.grow(n)
	}
}

// Swap exchanges storage, length, and capacity with other in O(1).
// No element-wise work is done; only ownership moves.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
}

// Clone returns a deep copy with independent storage sized to exactly
// Len() — spare capacity is not carried over.
func (v *Vector[T]) Clone() *Vector[T] {
	c := NewSize[T](v.size)
	copy(c.buf.Data(), v.buf.Data()[:v.size])
	return c
}

// CopyFrom replaces the contents with a deep copy of other, copy-then-swap,
// so it is safe when v and other are the same vector.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Swap(other.Clone())
}

// Slice returns the logical elements [0, Len()) as a read-write view of the
// backing storage, or nil for a vector with capacity 0. Any operation that
// reallocates (growth) or shifts (Insert, Erase) invalidates the view.
func (v *Vector[T]) Slice() []T {
	if v.buf.Data() == nil {
		return nil
	}
	return v.buf.Data()[:v.size]
}

// All returns an index/value iterator over the logical elements, in index
// order. Mutating the vector during iteration invalidates it.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.At(i)) {
				return
			}
		}
	}
}

// Values returns a value-only iterator over the logical elements, in index
// order. Same invalidation contract as All.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.At(i)) {
				return
			}
		}
	}
}

// grow replaces the owned buffer with one of capacity newCap, migrating the
// logical elements. The replacement is fully built before ownership swaps.
func (v *Vector[T]) grow(newCap int) {
	next := NewBuffer[T](newCap)
	copy(next.Data(), v.buf.Data()[:v.size])
	v.buf.Swap(next)
}
