package deque

// slot is storage for one element inside either the inline array or the heap
// buffer. Every write to a slot goes through these methods, so a slot in the
// live window always holds exactly one constructed element and a slot outside
// it always holds the zero value.
type slot[T any] struct {
	p *T
}

func (s slot[T]) construct(a Allocator[T], v T) {
	a.Construct(s.p, v)
}

func (s slot[T]) read() T {
	return *s.p
}

func (s slot[T]) destroy(a Allocator[T]) {
	a.Destroy(s.p)
	var zero T
	*s.p = zero
}

// moveOut destroys the slot and returns the element it held.
func (s slot[T]) moveOut(a Allocator[T]) T {
	v := *s.p
	s.destroy(a)
	return v
}

// relocate moves the element in src into the empty slot dst. The source is
// read before anything is written, and dst must not be src.
func relocate[T any](a Allocator[T], dst, src slot[T]) {
	dst.construct(a, *src.p)
	src.destroy(a)
}
