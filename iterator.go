package deque

import (
	"cmp"
	"iter"
)

/*****************************************************************************
 * ITERATORS
 *****************************************************************************/

// Iterator is a random-access position in a Deque that can read and write the
// element it points at. Positions are logical indexes, so an Iterator keeps
// pointing at the same index, not the same element, across mutations.
//
// Iterators from different Deques are never equal and never ordered.
type Iterator[T any, I Inline[T]] struct {
	d *Deque[T, I]
	i int
}

// ConstIterator is the read-only view of an Iterator. An Iterator converts to
// a ConstIterator with Const, but not the other way around.
type ConstIterator[T any, I Inline[T]] struct {
	d *Deque[T, I]
	i int
}

// Begin returns an Iterator at the first element.
func (d *Deque[T, I]) Begin() Iterator[T, I] { return Iterator[T, I]{d, 0} }

// End returns an Iterator one past the last element.
func (d *Deque[T, I]) End() Iterator[T, I] { return Iterator[T, I]{d, d.Len()} }

// CBegin returns a ConstIterator at the first element.
func (d *Deque[T, I]) CBegin() ConstIterator[T, I] { return ConstIterator[T, I]{d, 0} }

// CEnd returns a ConstIterator one past the last element.
func (d *Deque[T, I]) CEnd() ConstIterator[T, I] { return ConstIterator[T, I]{d, d.Len()} }

// Index returns the logical index the Iterator points at.
func (it Iterator[T, I]) Index() int { return it.i }

// Valid returns whether the Iterator points at a live element.
func (it Iterator[T, I]) Valid() bool { return it.d != nil && it.i >= 0 && it.i < it.d.Len() }

// Get returns the element. The Iterator must be Valid.
func (it Iterator[T, I]) Get() T { return it.d.AtUnsafe(it.i) }

// Ptr returns a pointer to the element. The Iterator must be Valid.
func (it Iterator[T, I]) Ptr() *T { return it.d.Ptr(it.i) }

// Set overwrites the element. The Iterator must be Valid.
func (it Iterator[T, I]) Set(t T) { it.d.SetUnsafe(it.i, t) }

// Next returns the Iterator one position forward.
func (it Iterator[T, I]) Next() Iterator[T, I] { return it.Add(1) }

// Prev returns the Iterator one position backward.
func (it Iterator[T, I]) Prev() Iterator[T, I] { return it.Add(-1) }

// Add returns the Iterator n positions forward.
func (it Iterator[T, I]) Add(n int) Iterator[T, I] { return Iterator[T, I]{it.d, it.i + n} }

// Sub returns the Iterator n positions backward.
func (it Iterator[T, I]) Sub(n int) Iterator[T, I] { return Iterator[T, I]{it.d, it.i - n} }

// Distance returns the number of positions from other to it.
func (it Iterator[T, I]) Distance(other Iterator[T, I]) int { return it.i - other.i }

// Equal returns whether both Iterators point at the same position of the same
// Deque.
func (it Iterator[T, I]) Equal(other Iterator[T, I]) bool { return it.Const().Equal(other.Const()) }

// Less returns whether it comes before other in the same Deque.
func (it Iterator[T, I]) Less(other Iterator[T, I]) bool { return it.Const().Less(other.Const()) }

// Compare orders two Iterators. ok is false when they belong to different
// Deques.
func (it Iterator[T, I]) Compare(other Iterator[T, I]) (c int, ok bool) {
	return it.Const().Compare(other.Const())
}

// Const returns the read-only view of the Iterator.
func (it Iterator[T, I]) Const() ConstIterator[T, I] { return ConstIterator[T, I](it) }

// Index returns the logical index the ConstIterator points at.
func (it ConstIterator[T, I]) Index() int { return it.i }

// Valid returns whether the ConstIterator points at a live element.
func (it ConstIterator[T, I]) Valid() bool { return it.d != nil && it.i >= 0 && it.i < it.d.Len() }

// Get returns the element. The ConstIterator must be Valid.
func (it ConstIterator[T, I]) Get() T { return it.d.AtUnsafe(it.i) }

// Next returns the ConstIterator one position forward.
func (it ConstIterator[T, I]) Next() ConstIterator[T, I] { return it.Add(1) }

// Prev returns the ConstIterator one position backward.
func (it ConstIterator[T, I]) Prev() ConstIterator[T, I] { return it.Add(-1) }

// Add returns the ConstIterator n positions forward.
func (it ConstIterator[T, I]) Add(n int) ConstIterator[T, I] {
	return ConstIterator[T, I]{it.d, it.i + n}
}

// Sub returns the ConstIterator n positions backward.
func (it ConstIterator[T, I]) Sub(n int) ConstIterator[T, I] {
	return ConstIterator[T, I]{it.d, it.i - n}
}

// Distance returns the number of positions from other to it.
func (it ConstIterator[T, I]) Distance(other ConstIterator[T, I]) int { return it.i - other.i }

// Equal returns whether both ConstIterators point at the same position of the
// same Deque.
func (it ConstIterator[T, I]) Equal(other ConstIterator[T, I]) bool {
	return it.d == other.d && it.i == other.i
}

// Less returns whether it comes before other in the same Deque.
func (it ConstIterator[T, I]) Less(other ConstIterator[T, I]) bool {
	c, ok := it.Compare(other)
	return ok && c < 0
}

// Compare orders two ConstIterators. ok is false when they belong to
// different Deques.
func (it ConstIterator[T, I]) Compare(other ConstIterator[T, I]) (c int, ok bool) {
	if it.d != other.d {
		return 0, false
	}
	return cmp.Compare(it.i, other.i), true
}

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// All returns an iterator over index-value pairs in order. It has the same
// semantics as slices.All. If you don't need indexes, use Values instead.
// The length is checked again before every element.
func (d *Deque[T, I]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d == nil {
			return
		}
		for i := uint64(0); i < d.len(); i++ {
			if !yield(int(i), d.logical(i).read()) {
				return
			}
		}
	}
}

// Values returns an iterator over values only in order. Like All, it stops
// early rather than panicking if the Deque shrinks during iteration.
func (d *Deque[T, I]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if d == nil {
			return
		}
		for i := uint64(0); i < d.len(); i++ {
			if !yield(d.logical(i).read()) {
				return
			}
		}
	}
}
