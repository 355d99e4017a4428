package deque

import "github.com/pkg/errors"

// Allocator supplies heap buffers to a Deque and is told about every element
// construction and destruction inside it.
//
// The Deque guarantees that every element placed in a slot gets exactly one
// Construct call and, when it leaves that slot, exactly one Destroy call.
// Relocating an element during growth, shrinking, insertion or erasure is a
// Construct into the new slot followed by a Destroy of the old one, so the
// number of Construct calls minus Destroy calls always equals the number of
// live elements.
//
// Allocate must return a slice of exactly n elements or an error wrapping
// ErrAllocationFailure. Destroy may inspect the slot; the Deque zeroes the slot
// afterwards so that the garbage collector can reclaim what it referenced.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(buf []T)
	Construct(slot *T, v T)
	Destroy(slot *T)
}

// HeapAllocator is the default Allocator. It allocates with make and leaves
// releasing memory to the garbage collector.
type HeapAllocator[T any] struct{}

// Allocate returns a new zeroed slice of n elements.
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrAllocationFailure, "cannot allocate %d slots", n)
	}
	return make([]T, n), nil
}

// Deallocate does nothing; the buffer becomes garbage once the Deque drops it.
func (HeapAllocator[T]) Deallocate([]T) {}

// Construct stores v in the slot.
func (HeapAllocator[T]) Construct(slot *T, v T) { *slot = v }

// Destroy does nothing; the Deque zeroes the slot.
func (HeapAllocator[T]) Destroy(*T) {}
