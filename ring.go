package deque

import "iter"

const (
	ringInitialCapacity = 8
	ringMinCapacity     = 8
)

// RingQueue is a heap-backed queue that appends at the back and removes from
// either end. It shares the Deque storage engine but has no inline storage and
// never shrinks below its minimum capacity, 8 unless WithMinCapacity says
// otherwise.
//
// To create a RingQueue instance, you must use NewRingQueue.
type RingQueue[T any] struct {
	q *Deque[T, [0]T]
}

// NewRingQueue creates an empty RingQueue with room for 8 elements. Options
// are applied after the defaults, so WithCapacity and WithMinCapacity override
// them.
func NewRingQueue[T any](opts ...Option[T]) (*RingQueue[T], error) {
	opts = append([]Option[T]{
		WithCapacity[T](ringInitialCapacity),
		WithMinCapacity[T](ringMinCapacity),
	}, opts...)
	q, err := New[T, [0]T](opts...)
	if err != nil {
		return nil, err
	}
	return &RingQueue[T]{q: q}, nil
}

// Len returns the number of elements in the RingQueue or 0 if nil.
func (r *RingQueue[T]) Len() int {
	if r == nil {
		return 0
	}
	return r.q.Len()
}

// Cap returns the length of the heap buffer.
func (r *RingQueue[T]) Cap() int { return r.q.Cap() }

// Empty returns whether the RingQueue is empty.
func (r *RingQueue[T]) Empty() bool { return r.q.Empty() }

// PushBack puts t at the back, doubling the buffer if it is full.
func (r *RingQueue[T]) PushBack(t T) error { return r.q.PushBack(t) }

// EmplaceBack builds a new element at the back by running init on a zero T.
func (r *RingQueue[T]) EmplaceBack(init func(*T)) error { return r.q.EmplaceBack(init) }

// Front returns the oldest element, or ErrEmptyQueue.
func (r *RingQueue[T]) Front() (T, error) { return r.q.Front() }

// Back returns the newest element, or ErrEmptyQueue.
func (r *RingQueue[T]) Back() (T, error) { return r.q.Back() }

// At returns the i-th element, or an error wrapping ErrIndexOutOfRange.
func (r *RingQueue[T]) At(i int) (T, error) { return r.q.At(i) }

// AtUnsafe returns the i-th element without checking i.
func (r *RingQueue[T]) AtUnsafe(i int) T { return r.q.AtUnsafe(i) }

// PopFront removes and returns the oldest element, or ErrEmptyQueue.
func (r *RingQueue[T]) PopFront() (T, error) { return r.q.PopFront() }

// PopBack removes and returns the newest element, or ErrEmptyQueue.
func (r *RingQueue[T]) PopBack() (T, error) { return r.q.PopBack() }

// Clear destroys every element.
func (r *RingQueue[T]) Clear() { r.q.Clear() }

// Reset destroys every element and returns the buffer to the Allocator. The
// next push allocates a buffer of the minimum capacity again.
func (r *RingQueue[T]) Reset() { r.q.Reset() }

// ShrinkToFit reallocates to the smallest power of two holding every element,
// never below the minimum capacity.
func (r *RingQueue[T]) ShrinkToFit() error { return r.q.ShrinkToFit() }

// Clone returns a deep copy of the RingQueue.
func (r *RingQueue[T]) Clone() (*RingQueue[T], error) {
	q, err := r.q.Clone()
	if err != nil {
		return nil, err
	}
	return &RingQueue[T]{q: q}, nil
}

// Move returns a new RingQueue that took over the buffer of r. r is left
// empty and ready for reuse.
func (r *RingQueue[T]) Move() *RingQueue[T] {
	return &RingQueue[T]{q: r.q.Move()}
}

// CopyFrom replaces the contents of r with a copy of src.
func (r *RingQueue[T]) CopyFrom(src *RingQueue[T]) error { return r.q.CopyFrom(src.q) }

// MoveFrom replaces the contents of r with those of src, leaving src empty.
func (r *RingQueue[T]) MoveFrom(src *RingQueue[T]) { r.q.MoveFrom(src.q) }

// All returns an iterator over index-value pairs, oldest first.
func (r *RingQueue[T]) All() iter.Seq2[int, T] { return r.q.All() }

// Values returns an iterator over the values, oldest first.
func (r *RingQueue[T]) Values() iter.Seq[T] { return r.q.Values() }
