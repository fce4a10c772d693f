package vec

// Spare returns the number of slots available before the next reallocation.
func (v *Vector[T]) Spare() int {
	return v.Cap() - v.size
}

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 for a vector with no storage.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Metrics returns a snapshot of the vector's storage accounting.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.Len(),
		Cap:         v.Cap(),
		Spare:       v.Spare(),
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector's storage.
type VectorMetrics struct {
	Len         int     // Live elements
	Cap         int     // Allocated slots
	Spare       int     // Slots free before the next reallocation
	Utilization float64 // Ratio of live elements to allocated slots (0.0-1.0)
}
