package deque

import (
	"math/bits"

	"github.com/pkg/errors"
)

const defaultWidth = 32

/*****************************************************************************
 * INDEX / CAPACITY MODEL
 *****************************************************************************/

func (d *Deque[T, I]) bits() uint {
	if d.width == 0 {
		return defaultWidth
	}
	return uint(d.width)
}

// wrap is the cursor modulus minus one. Cursors are stored masked by it.
func (d *Deque[T, I]) wrap() uint64 { return ^uint64(0) >> (64 - d.bits()) }

func (d *Deque[T, I]) len() uint64       { return (d.write - d.read) & d.wrap() }
func (d *Deque[T, I]) maxSize() uint64   { return d.wrap() >> 1 }
func (d *Deque[T, I]) inlineCap() uint64 { return uint64(len(d.inline)) }
func (d *Deque[T, I]) minCap() uint64    { return max(d.inlineCap(), d.floor) }

// The heap buffer is non-nil exactly when the capacity differs from the
// inline capacity, so the active storage is always derivable from capacity.
func (d *Deque[T, I]) cap() uint64 {
	if d.heap != nil {
		return uint64(len(d.heap))
	}
	return d.inlineCap()
}

func (d *Deque[T, I]) allocator() Allocator[T] {
	if d.alloc == nil {
		return HeapAllocator[T]{}
	}
	return d.alloc
}

// at returns the slot for cursor c in the active storage.
func (d *Deque[T, I]) at(c uint64) slot[T] {
	phys := c & (d.cap() - 1)
	if d.heap != nil {
		return slot[T]{&d.heap[phys]}
	}
	return slot[T]{&d.inline[phys]}
}

// logical returns the slot of the i-th live element.
func (d *Deque[T, I]) logical(i uint64) slot[T] { return d.at(d.read + i) }

/*****************************************************************************
 * GROWTH / SHRINK POLICY
 *****************************************************************************/

// grow makes room for n more elements, doubling the capacity until they fit.
func (d *Deque[T, I]) grow(n uint64) error {
	size := d.len()
	if n > d.maxSize()-size {
		return errors.Wrapf(ErrMaxSizeExceeded, "length %d plus %d over %d", size, n, d.maxSize())
	}
	c := d.cap()
	if size+n <= c {
		return nil
	}
	for c < size+n {
		if c == 0 {
			c = 1
		} else {
			c <<= 1
		}
	}
	return d.resize(c)
}

// shrink halves the capacity while more than half of it would stay unused.
// It only runs when the live window starts at physical offset zero, so it is
// allowed to do nothing at all; ShrinkToFit is the deterministic variant.
func (d *Deque[T, I]) shrink() {
	c := d.cap()
	size := d.len()
	if c == 0 || d.read&(c-1) != 0 || c <= 2*size {
		return
	}
	target := c
	for target > 0 && target > 2*size {
		target >>= 1
	}
	// Below the floor, e.g. inline after Reset, there is nothing to shrink.
	if target = max(target, d.minCap()); target >= c {
		return
	}
	// A failed shrink leaves the Deque untouched, which is always valid.
	_ = d.resize(target)
}

// resize relocates every live element into storage of newCap slots, floored
// at the minimum capacity. The new buffer is allocated before any element
// moves, so an allocation failure leaves the Deque unchanged.
func (d *Deque[T, I]) resize(newCap uint64) error {
	newCap = max(newCap, d.minCap())
	oldCap := d.cap()
	if newCap == oldCap {
		return nil
	}

	a := d.allocator()
	var buf []T
	if newCap != d.inlineCap() {
		var err error
		if buf, err = a.Allocate(int(newCap)); err != nil {
			return errors.Wrapf(err, "allocate %d slots", newCap)
		}
		if uint64(len(buf)) != newCap {
			a.Deallocate(buf)
			return errors.Wrapf(ErrAllocationFailure, "got %d slots, asked for %d", len(buf), newCap)
		}
	}

	// Source slots are addressed through the old buffer and mask, destination
	// slots through the new buffer; the two are never mixed.
	old, oldMask := d.heap, oldCap-1
	n := d.len()
	for i := range n {
		src := (d.read + i) & oldMask
		var from, to slot[T]
		if old != nil {
			from = slot[T]{&old[src]}
		} else {
			from = slot[T]{&d.inline[src]}
		}
		if buf != nil {
			to = slot[T]{&buf[i]}
		} else {
			to = slot[T]{&d.inline[i]}
		}
		relocate(a, to, from)
	}

	if old != nil {
		a.Deallocate(old)
	}
	d.heap = buf
	d.read, d.write = 0, n
	return nil
}

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

func ceilPow2(x uint64) uint64 {
	// For our purposes, 0 is invalid.
	if x == 0 {
		return 1
	}
	msb := 63 - bits.LeadingZeros64(x)
	var result uint64 = 1 << msb
	if result < x {
		result <<= 1
	}
	return result
}
