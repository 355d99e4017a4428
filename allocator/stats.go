package allocator

// Stats counts what went through a Tracker.
type Stats struct {
	Allocations   int64
	Deallocations int64
	Failures      int64
	// SlotsInUse is the total length of the buffers allocated and not yet
	// deallocated.
	SlotsInUse int64
	Constructs int64
	Destroys   int64
}

// Live returns the number of elements constructed and not yet destroyed.
func (s Stats) Live() int64 {
	return s.Constructs - s.Destroys
}

// Buffers returns the number of buffers allocated and not yet deallocated.
func (s Stats) Buffers() int64 {
	return s.Allocations - s.Deallocations
}

// Add returns the field-wise sum of s and other.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Allocations:   s.Allocations + other.Allocations,
		Deallocations: s.Deallocations + other.Deallocations,
		Failures:      s.Failures + other.Failures,
		SlotsInUse:    s.SlotsInUse + other.SlotsInUse,
		Constructs:    s.Constructs + other.Constructs,
		Destroys:      s.Destroys + other.Destroys,
	}
}
