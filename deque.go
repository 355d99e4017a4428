// Package deque provides double-ended queues backed by power-of-two ring
// buffers. Deque keeps its first few elements inside the struct itself and
// only asks its Allocator for a heap buffer once they no longer fit.
// RingQueue is the heap-only variant with a minimum capacity.
package deque

import (
	"iter"

	"github.com/pkg/errors"
)

// Inline lists the array types a Deque can use as inline storage. The length
// of the array is the inline capacity. It must be zero or a power of two,
// because the same mask addresses the inline array and the heap buffer.
type Inline[T any] interface {
	~[0]T | ~[1]T | ~[2]T | ~[4]T | ~[8]T | ~[16]T | ~[32]T | ~[64]T
}

// Deque is a double-ended queue that can be used for either LIFO or FIFO
// ordering, or something in between, with random access and positional insert
// and erase.
//
// The second type parameter is the inline storage. A Deque[string, [4]string]
// holds up to four strings without allocating. Past that, it moves its
// elements to a heap buffer obtained from its Allocator, doubling the buffer
// whenever it fills up. Removing elements may shrink it back, down to the
// inline array, but the only guaranteed way to reclaim memory is ShrinkToFit.
//
// The zero value is an empty Deque using the HeapAllocator and 32-bit
// cursors. Use New for any other configuration. A Deque must not be copied
// by value once used: the copy would share the heap buffer but not the inline
// array. Use Clone and Move instead.
//
// A Deque is not safe for concurrent use.
type Deque[T any, I Inline[T]] struct {
	inline      I
	heap        []T
	read, write uint64
	floor       uint64
	alloc       Allocator[T]
	width       uint8
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// New creates an empty Deque. Without options it is inline-backed and does
// not allocate. WithCapacity rounds the requested capacity up to a power of
// two, never below the inline capacity, and allocates if that exceeds it.
func New[T any, I Inline[T]](opts ...Option[T]) (*Deque[T, I], error) {
	o := applyOptions(opts...)
	if err := o.validate(); err != nil {
		return nil, err
	}

	d := &Deque[T, I]{alloc: o.alloc, width: uint8(o.width)}
	if o.minCapacity > 0 {
		d.floor = ceilPow2(uint64(o.minCapacity))
	}
	var want uint64
	if o.capacity > 0 {
		want = ceilPow2(uint64(o.capacity))
	}
	if max(want, d.floor) > d.maxSize()+1 {
		return nil, errors.Wrapf(ErrMaxSizeExceeded, "capacity %d with %d-bit cursors", max(want, d.floor), d.bits())
	}
	if err := d.resize(want); err != nil {
		return nil, err
	}
	return d, nil
}

// FromSlice creates a Deque sized for s and copies every element of s into
// it. Memory is not shared with s.
func FromSlice[T any, I Inline[T]](s []T, opts ...Option[T]) (*Deque[T, I], error) {
	opts = append([]Option[T]{WithCapacity[T](len(s))}, opts...)
	d, err := New[T, I](opts...)
	if err != nil {
		return nil, err
	}
	if err := d.Append(s...); err != nil {
		d.Reset()
		return nil, err
	}
	return d, nil
}

// Collect creates a Deque holding the values of seq in order.
func Collect[T any, I Inline[T]](seq iter.Seq[T], opts ...Option[T]) (*Deque[T, I], error) {
	d, err := New[T, I](opts...)
	if err != nil {
		return nil, err
	}
	for v := range seq {
		if err := d.PushBack(v); err != nil {
			d.Reset()
			return nil, err
		}
	}
	return d, nil
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T, I]) Len() int {
	if d == nil {
		return 0
	}
	return int(d.len())
}

// Empty returns whether the Deque is empty.
func (d *Deque[T, I]) Empty() bool { return d.len() == 0 }

// Full returns whether the Deque is full. Pushing to a full Deque reallocates.
func (d *Deque[T, I]) Full() bool { return d.len() == d.cap() }

// Cap returns the current capacity: the inline capacity while inline-backed,
// otherwise the length of the heap buffer.
func (d *Deque[T, I]) Cap() int { return int(d.cap()) }

// InlineCap returns the number of elements the Deque holds without a heap
// buffer.
func (d *Deque[T, I]) InlineCap() int { return int(d.inlineCap()) }

// HeapBacked returns whether the elements currently live in a heap buffer.
func (d *Deque[T, I]) HeapBacked() bool { return d.heap != nil }

// MaxSize returns the largest length the cursor width can represent.
func (d *Deque[T, I]) MaxSize() int { return int(d.maxSize()) }

// PushBack puts t at the back of the Deque. Use PushBack and PopFront for FIFO
// ordering, or PushBack and PopBack for LIFO ordering.
//
// If the Deque is full, its capacity doubles first. The error wraps
// ErrAllocationFailure or ErrMaxSizeExceeded, and the Deque is unchanged.
func (d *Deque[T, I]) PushBack(t T) error {
	if err := d.grow(1); err != nil {
		return err
	}
	d.at(d.write).construct(d.allocator(), t)
	d.write = (d.write + 1) & d.wrap()
	return nil
}

// PushFront puts t at the front of the Deque, growing it if full.
func (d *Deque[T, I]) PushFront(t T) error {
	if err := d.grow(1); err != nil {
		return err
	}
	d.read = (d.read - 1) & d.wrap()
	d.at(d.read).construct(d.allocator(), t)
	return nil
}

// Append puts every argument at the back of the Deque, in order. It
// reallocates at most once, no matter how many arguments, and either appends
// all of them or none.
func (d *Deque[T, I]) Append(ts ...T) error {
	if err := d.grow(uint64(len(ts))); err != nil {
		return err
	}
	a := d.allocator()
	for _, t := range ts {
		d.at(d.write).construct(a, t)
		d.write = (d.write + 1) & d.wrap()
	}
	return nil
}

// EmplaceBack builds a new element at the back of the Deque by running init
// on a zero T. A nil init leaves the element zero.
func (d *Deque[T, I]) EmplaceBack(init func(*T)) error {
	return d.PushBack(build(init))
}

// EmplaceFront builds a new element at the front of the Deque by running init
// on a zero T.
func (d *Deque[T, I]) EmplaceFront(init func(*T)) error {
	return d.PushFront(build(init))
}

// Front returns the first element, or ErrEmptyQueue.
func (d *Deque[T, I]) Front() (t T, err error) {
	if d.Empty() {
		return t, ErrEmptyQueue
	}
	return d.at(d.read).read(), nil
}

// Back returns the last element, or ErrEmptyQueue.
func (d *Deque[T, I]) Back() (t T, err error) {
	if d.Empty() {
		return t, ErrEmptyQueue
	}
	return d.at(d.write - 1).read(), nil
}

// PopFront removes the first element and returns it. On an empty Deque it
// returns ErrEmptyQueue and changes nothing. The vacated slot is zeroed, and
// the Deque may shrink afterwards.
func (d *Deque[T, I]) PopFront() (t T, err error) {
	if d.Empty() {
		return t, ErrEmptyQueue
	}
	t = d.at(d.read).moveOut(d.allocator())
	d.read = (d.read + 1) & d.wrap()
	d.shrink()
	return t, nil
}

// PopBack removes the last element and returns it. On an empty Deque it
// returns ErrEmptyQueue and changes nothing.
func (d *Deque[T, I]) PopBack() (t T, err error) {
	if d.Empty() {
		return t, ErrEmptyQueue
	}
	d.write = (d.write - 1) & d.wrap()
	t = d.at(d.write).moveOut(d.allocator())
	d.shrink()
	return t, nil
}

// Clear destroys every element. Capacity is kept unless the shrink policy
// kicks in.
func (d *Deque[T, I]) Clear() {
	a := d.allocator()
	for i := range d.len() {
		d.logical(i).destroy(a)
	}
	d.read = d.write
	d.shrink()
}

// DropFront removes the n first elements, or every element if the Deque has
// fewer than n. If n is negative, no element is dropped. Dropped slots are
// zeroed, so it takes O(n).
func (d *Deque[T, I]) DropFront(n int) {
	if n <= 0 {
		return
	}
	k := min(uint64(n), d.len())
	a := d.allocator()
	for i := range k {
		d.logical(i).destroy(a)
	}
	d.read = (d.read + k) & d.wrap()
	d.shrink()
}

// DropBack removes the n last elements, or every element if the Deque has
// fewer than n. If n is negative, no element is dropped.
func (d *Deque[T, I]) DropBack(n int) {
	if n <= 0 {
		return
	}
	k := min(uint64(n), d.len())
	a := d.allocator()
	for i := d.len() - k; i < d.len(); i++ {
		d.logical(i).destroy(a)
	}
	d.write = (d.write - k) & d.wrap()
	d.shrink()
}

// Reset destroys every element and hands any heap buffer back to the
// Allocator, leaving the Deque empty and inline-backed. Call it when done
// with a Deque whose Allocator keeps accounts.
func (d *Deque[T, I]) Reset() {
	a := d.allocator()
	for i := range d.len() {
		d.logical(i).destroy(a)
	}
	if d.heap != nil {
		a.Deallocate(d.heap)
		d.heap = nil
	}
	d.read, d.write = 0, 0
}

// Reserve ensures there's enough capacity to add at least n more elements to
// the Deque, reallocating if necessary. It returns an error if n is negative.
func (d *Deque[T, I]) Reserve(n int) error {
	if n < 0 {
		return ErrNegativeCapacity
	}
	return d.grow(uint64(n))
}

// ShrinkToFit reallocates to the smallest power of two that holds every
// element, never below the inline or minimum capacity. An empty Deque goes
// back to its inline array. Calling it twice in a row is a no-op.
func (d *Deque[T, I]) ShrinkToFit() error {
	var target uint64
	if n := d.len(); n > 0 {
		target = ceilPow2(n)
	}
	return d.resize(target)
}

/*****************************************************************************
 * RANDOM ACCESS
 *****************************************************************************/

// At returns the i-th element, or an error wrapping ErrIndexOutOfRange.
func (d *Deque[T, I]) At(i int) (t T, err error) {
	if err := d.checkBounds(i); err != nil {
		return t, err
	}
	return d.AtUnsafe(i), nil
}

// AtUnsafe returns the i-th element without checking i. An out of range index
// returns garbage or panics.
func (d *Deque[T, I]) AtUnsafe(i int) T {
	return d.logical(uint64(i)).read()
}

// Ptr returns a pointer to the i-th element without checking i. The pointer
// is only valid until the next call that adds or removes elements.
func (d *Deque[T, I]) Ptr(i int) *T {
	return d.logical(uint64(i)).p
}

// Set writes t to the i-th position, or returns an error wrapping
// ErrIndexOutOfRange.
func (d *Deque[T, I]) Set(i int, t T) error {
	if err := d.checkBounds(i); err != nil {
		return err
	}
	d.SetUnsafe(i, t)
	return nil
}

// SetUnsafe writes t to the i-th position without checking i.
func (d *Deque[T, I]) SetUnsafe(i int, t T) {
	*d.logical(uint64(i)).p = t
}

// Swap swaps the elements in the i-th and j-th positions.
func (d *Deque[T, I]) Swap(i, j int) error {
	if err := d.checkBounds(i); err != nil {
		return err
	}
	if err := d.checkBounds(j); err != nil {
		return err
	}
	a, b := d.Ptr(i), d.Ptr(j)
	*a, *b = *b, *a
	return nil
}

func (d *Deque[T, I]) checkBounds(i int) error {
	if i < 0 || uint64(i) >= d.len() {
		return indexError(i, d.len())
	}
	return nil
}

func build[T any](init func(*T)) (t T) {
	if init != nil {
		init(&t)
	}
	return t
}
