package vec

// Reservation is an immutable tag carrying a requested capacity. It exists
// to keep "allocate n empty slots" distinct from "construct n elements":
// NewSize materializes elements, NewReserved consumes a Reservation and
// materializes none.
type Reservation struct {
	capacity int
}

// Reserve returns a Reservation requesting capacity slots. Pass the result
// to NewReserved. A non-positive capacity reserves no storage.
func Reserve(capacity int) Reservation {
	return Reservation{capacity: capacity}
}

// Capacity returns the requested capacity.
func (r Reservation) Capacity() int {
	return r.capacity
}
