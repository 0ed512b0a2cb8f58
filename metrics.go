package vec

// Metrics returns a snapshot of the vector's storage statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.Len(),
		Cap:         v.Cap(),
		Spare:       v.Cap() - v.Len(),
		Utilization: v.Utilization(),
	}
}

// Spare returns the number of allocated slots not logically occupied.
// That many pushes are guaranteed not to reallocate.
func (v *Vector[T]) Spare() int {
	return v.Cap() - v.Len()
}

// Utilization returns the ratio of occupied slots to allocated slots
// (0.0 to 1.0). Returns 0.0 for a vector with no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.Cap() == 0 {
		return 0
	}
	return float64(v.Len()) / float64(v.Cap())
}

// VectorMetrics contains statistical information about a vector's storage.
type VectorMetrics struct {
	Len         int     // Logically present elements
	Cap         int     // Allocated slots
	Spare       int     // Allocated but unoccupied slots
	Utilization float64 // Ratio of occupied to allocated slots (0.0-1.0)
}
