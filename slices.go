package deque

import "cmp"

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// ToSlice allocates a slice holding a copy of every element, front to back.
func (d *Deque[T, I]) ToSlice() []T {
	s := make([]T, 0, d.Len())
	for t := range d.Values() {
		s = append(s, t)
	}
	return s
}

// CopySlice has the same semantics as the copy() built-in function. It copies
// elements in the Deque starting at the start index up until the buffer is
// full or the Deque is over, whichever happens first, and returns the number
// of elements copied. It panics if start is out of range.
func (d *Deque[T, I]) CopySlice(start int, buf []T) int {
	if start < 0 || start > d.Len() {
		panic(indexError(start, d.len()))
	}
	n := min(len(buf), d.Len()-start)
	for i := range n {
		buf[i] = d.logical(uint64(start + i)).read()
	}
	return n
}

// ForEach takes in a function that returns a bool and calls it in order for
// every element in the queue, or until the first call that returns false.
func (d *Deque[T, I]) ForEach(f func(T) bool) {
	for t := range d.Values() {
		if !f(t) {
			return
		}
	}
}

// IndexFunc returns the index of the first element that satisfies f in the
// Deque or -1 if none do. IndexFunc has the same semantics as
// slices.IndexFunc.
func (d *Deque[T, I]) IndexFunc(f func(T) bool) int {
	for i, t := range d.All() {
		if f(t) {
			return i
		}
	}
	return -1
}

// ContainsFunc returns whether an element satisfying f is in the Deque. It has
// the same semantics as slices.ContainsFunc.
func (d *Deque[T, I]) ContainsFunc(f func(T) bool) bool {
	return d.IndexFunc(f) >= 0
}

// EqualFunc returns whether both Deques have the same length and the same
// elements in the same order. Two nil Deques are equal, but an empty Deque and
// nil are not.
func (d *Deque[T, I]) EqualFunc(other *Deque[T, I], f func(T, T) bool) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.len() != other.len() {
		return false
	}
	for i := range d.len() {
		if !f(d.logical(i).read(), other.logical(i).read()) {
			return false
		}
	}
	return true
}

// Equal returns whether both Deques have the same length and the same elements
// in the same order. This must not be a method, otherwise Deque would be
// constrained to comparable elements.
func Equal[T comparable, I Inline[T]](d1, d2 *Deque[T, I]) bool {
	return d1.EqualFunc(d2, func(a, b T) bool { return a == b })
}

// Index returns the index of the first occurrence of t in the Deque or -1 if
// absent. It has the same semantics as slices.Index.
func Index[T comparable, I Inline[T]](d *Deque[T, I], t T) int {
	return d.IndexFunc(func(e T) bool { return e == t })
}

// Contains returns whether t is in the Deque.
func Contains[T comparable, I Inline[T]](d *Deque[T, I], t T) bool {
	return Index(d, t) >= 0
}

// Max returns the maximum element in the Deque. It has the same semantics as
// slices.Max, so it panics on an empty Deque.
func Max[T cmp.Ordered, I Inline[T]](d *Deque[T, I]) T {
	if d.Empty() {
		panic("deque.Max: empty Deque")
	}
	m := d.AtUnsafe(0)
	for t := range d.Values() {
		m = max(m, t)
	}
	return m
}

// MaxFunc returns the maximal element according to f. If there is more than
// one, it returns the first one, like slices.MaxFunc. It panics on an empty
// Deque.
func MaxFunc[T any, I Inline[T]](d *Deque[T, I], f func(a, b T) int) T {
	if d.Empty() {
		panic("deque.MaxFunc: empty Deque")
	}
	m := d.AtUnsafe(0)
	for t := range d.Values() {
		if f(t, m) > 0 {
			m = t
		}
	}
	return m
}

// Min returns the minimum element in the Deque. It has the same semantics as
// slices.Min, so it panics on an empty Deque.
func Min[T cmp.Ordered, I Inline[T]](d *Deque[T, I]) T {
	if d.Empty() {
		panic("deque.Min: empty Deque")
	}
	m := d.AtUnsafe(0)
	for t := range d.Values() {
		m = min(m, t)
	}
	return m
}

// MinFunc returns the minimal element according to f. If there is more than
// one, it returns the first one. It panics on an empty Deque.
func MinFunc[T any, I Inline[T]](d *Deque[T, I], f func(a, b T) int) T {
	if d.Empty() {
		panic("deque.MinFunc: empty Deque")
	}
	m := d.AtUnsafe(0)
	for t := range d.Values() {
		if f(t, m) < 0 {
			m = t
		}
	}
	return m
}
