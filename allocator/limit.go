package allocator

import (
	"github.com/pkg/errors"

	"github.com/lucasgdosr/deque/v2"
)

// Limited wraps an Allocator with a budget of slots. Allocations that would
// take the slots in use past the limit fail with an error wrapping
// deque.ErrAllocationFailure.
type Limited[T any] struct {
	next  deque.Allocator[T]
	limit int
	inUse int
}

var _ deque.Allocator[int] = (*Limited[int])(nil)

// NewLimited wraps next, or a deque.HeapAllocator if next is nil, with a
// budget of limit slots.
func NewLimited[T any](next deque.Allocator[T], limit int) *Limited[T] {
	if next == nil {
		next = deque.HeapAllocator[T]{}
	}
	return &Limited[T]{next: next, limit: limit}
}

// SetLimit changes the budget. Buffers already handed out are kept.
func (l *Limited[T]) SetLimit(limit int) { l.limit = limit }

// InUse returns the slots allocated and not yet deallocated.
func (l *Limited[T]) InUse() int { return l.inUse }

// Allocate fails if n more slots would exceed the budget.
func (l *Limited[T]) Allocate(n int) ([]T, error) {
	if n > l.limit-l.inUse {
		return nil, errors.Wrapf(deque.ErrAllocationFailure, "%d slots over budget of %d with %d in use", n, l.limit, l.inUse)
	}
	buf, err := l.next.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.inUse += len(buf)
	return buf, nil
}

// Deallocate returns buf to the budget.
func (l *Limited[T]) Deallocate(buf []T) {
	l.inUse -= len(buf)
	l.next.Deallocate(buf)
}

// Construct forwards to the wrapped Allocator.
func (l *Limited[T]) Construct(slot *T, v T) { l.next.Construct(slot, v) }

// Destroy forwards to the wrapped Allocator.
func (l *Limited[T]) Destroy(slot *T) { l.next.Destroy(slot) }
