// Package vec implements a generic dynamic-array container with explicit
// capacity management.
//
// # Overview
//
// A Vector is contiguous, index-ordered storage with amortized O(1) append
// and an explicit size/capacity split. Unlike a built-in slice, growth and
// reallocation are part of the contract rather than hidden behind append:
// capacity changes only through the documented doubling policy or an
// explicit Reserve, ownership of the backing storage is exchanged in O(1)
// via Swap, and a deep copy is always a deliberate Clone or CopyFrom.
// This is useful for:
//
//   - Code that needs to reason about when reallocation happens
//   - Pre-sizing hot-path buffers and verifying they never regrow
//   - Porting code written against an explicit vector contract
//
// # Basic Usage
//
//	v := vec.Of(1, 2, 3)
//	v.PushBack(4)
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
//	// Pre-size capacity without populating elements
//	w := vec.NewReserve[string](vec.Reserve(64))
//
// # Growth Policy
//
// When an operation needs more room than the current capacity, the new
// capacity is max(required, 2*current). A vector growing from capacity 0
// gets exactly the required amount, so the first single-element push or
// insert lands on capacity 1. Reserve is exact: it reallocates to the
// requested capacity, not a doubled one. Capacity never shrinks except by
// swapping with a smaller vector. NextCapacity exposes the policy as a
// pure function.
//
// # Error Handling
//
// At and SetAt are the checked accessors; they return an error wrapping
// ErrOutOfRange for an index outside [0, Len()). Get and Set are unchecked
// and carry a contract instead: indexes outside [0, Len()) are undefined
// behavior. Insert and Erase panic on positions outside their contract.
// Allocation that cannot be satisfied aborts the process; growth paths
// fully build the replacement buffer before swapping ownership, so no
// partially mutated vector is ever observable.
//
// # Thread Safety
//
// Vector is not safe for concurrent mutation. Concurrent read-only access
// is safe only while no goroutine mutates the vector.
//
// # Performance Characteristics
//
//   - PushBack: O(1) amortized
//   - Insert, Erase: O(n) shift
//   - Swap: O(1)
//   - Clone, CopyFrom: O(n)
//   - Get, Set, At, SetAt: O(1)
//
// # Metrics
//
// Metrics returns a snapshot of storage statistics:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Spare slots: %d\n", m.Spare)
package vec
