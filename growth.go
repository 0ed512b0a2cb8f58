package vec

// NextCapacity decides the capacity of the replacement buffer when a vector
// needs room for required elements. It is a pure function so the policy can
// be tested independently of storage mechanics.
//
// The policy doubles: the result is max(required, 2*current). When current
// is 0 that collapses to exactly required, which is how a single-element
// insertion into a zero-capacity vector lands on capacity 1. Capacity never
// shrinks: required <= current returns current unchanged.
func NextCapacity(current, required int) int {
	if required <= current {
		return current
	}
	if doubled := current * 2; doubled > required {
		return doubled
	}
	return required
}
