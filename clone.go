package deque

import "github.com/pkg/errors"

/*****************************************************************************
 * COPY / MOVE
 *****************************************************************************/

// Clone returns a deep copy of the Deque with the same capacity, Allocator,
// cursor width and minimum capacity. Elements are copied by assignment.
func (d *Deque[T, I]) Clone() (*Deque[T, I], error) {
	c := &Deque[T, I]{}
	if err := c.CopyFrom(d); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the contents of d with a copy of src. The new storage is
// obtained before anything in d is released, so on error d is unchanged.
// Copying a Deque onto itself is a no-op.
func (d *Deque[T, I]) CopyFrom(src *Deque[T, I]) error {
	if d == src {
		return nil
	}
	a := src.allocator()
	var buf []T
	if src.heap != nil {
		n := len(src.heap)
		var err error
		if buf, err = a.Allocate(n); err != nil {
			return errors.Wrapf(err, "allocate %d slots", n)
		}
		if len(buf) != n {
			a.Deallocate(buf)
			return errors.Wrapf(ErrAllocationFailure, "got %d slots, asked for %d", len(buf), n)
		}
	}

	d.Reset()
	d.alloc, d.floor, d.width = src.alloc, src.floor, src.width
	d.heap = buf
	d.read, d.write = src.read, src.write
	for i := range src.len() {
		d.logical(i).construct(a, src.logical(i).read())
	}
	return nil
}

// Move returns a new Deque holding everything d held. A heap buffer changes
// hands without copying; inline elements are relocated one by one. d is left
// empty, inline-backed and ready for reuse.
func (d *Deque[T, I]) Move() *Deque[T, I] {
	m := &Deque[T, I]{}
	m.MoveFrom(d)
	return m
}

// MoveFrom releases the contents of d and takes over those of src, leaving
// src empty, inline-backed and ready for reuse. Moving a Deque onto itself is
// a no-op.
func (d *Deque[T, I]) MoveFrom(src *Deque[T, I]) {
	if d == src {
		return
	}
	d.Reset()
	d.alloc, d.floor, d.width = src.alloc, src.floor, src.width
	d.read, d.write = src.read, src.write
	if src.heap != nil {
		d.heap = src.heap
		src.heap = nil
	} else {
		a := src.allocator()
		for i := range src.len() {
			relocate(a, d.logical(i), src.logical(i))
		}
	}
	src.read, src.write = 0, 0
}
