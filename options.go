package deque

// Option configures a Deque or a RingQueue at construction time.
type Option[T any] func(*options[T])

type options[T any] struct {
	capacity    int
	minCapacity int
	alloc       Allocator[T]
	width       int
}

// WithCapacity asks for room for at least n elements up front. The capacity
// is rounded up to a power of two and never goes below the inline capacity.
func WithCapacity[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.capacity = n
	}
}

// WithMinCapacity sets a floor, rounded up to a power of two, below which the
// Deque never shrinks. A floor above the inline capacity makes the Deque
// heap-backed from New on. Reset and moves still hand the buffer back and
// leave the Deque inline; its next growth goes straight to the floor.
func WithMinCapacity[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.minCapacity = n
	}
}

// WithAllocator replaces the default HeapAllocator. A nil Allocator is ignored.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(o *options[T]) {
		if a != nil {
			o.alloc = a
		}
	}
}

// WithCursorWidth sets the width in bits of the read and write cursors, which
// bounds MaxSize. Valid widths are 8, 16, 32 and 64. The default is 32.
func WithCursorWidth[T any](bits int) Option[T] {
	return func(o *options[T]) {
		o.width = bits
	}
}

func applyOptions[T any](opts ...Option[T]) *options[T] {
	o := &options[T]{width: defaultWidth}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options[T]) validate() error {
	if o.capacity < 0 || o.minCapacity < 0 {
		return ErrNegativeCapacity
	}
	switch o.width {
	case 8, 16, 32, 64:
		return nil
	default:
		return ErrInvalidCursorWidth
	}
}
