package deque

import "github.com/pkg/errors"

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrEmptyQueue is returned when reading or popping an end of an empty Deque.
// The Deque is never modified when this error is returned.
var ErrEmptyQueue = errors.New("empty queue")

// ErrIndexOutOfRange is returned by the checked accessors and by positional
// insert and erase when an index or range falls outside the live elements.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrAllocationFailure is returned when the Allocator cannot supply a buffer.
// Allocator implementations must return errors that wrap it. The Deque is left
// exactly as it was before the failing call.
var ErrAllocationFailure = errors.New("allocation failure")

// ErrMaxSizeExceeded is returned when an insertion would take the Deque past
// MaxSize for its cursor width.
var ErrMaxSizeExceeded = errors.New("maximum size exceeded")

// ErrNegativeCapacity is returned when asking for a negative capacity.
var ErrNegativeCapacity = errors.New("capacity cannot be negative")

// ErrInvalidCursorWidth is returned when the cursor width is not 8, 16, 32 or
// 64 bits.
var ErrInvalidCursorWidth = errors.New("cursor width must be 8, 16, 32 or 64")

func indexError(i int, n uint64) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d with length %d", i, n)
}

func rangeError(first, last int, n uint64) error {
	return errors.Wrapf(ErrIndexOutOfRange, "range [%d, %d) with length %d", first, last, n)
}
