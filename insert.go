package deque

/*****************************************************************************
 * POSITIONAL INSERT / ERASE
 *****************************************************************************/

// Insert puts t at position i, shifting the elements on the side of i nearer
// to an end of the Deque. i may equal Len, which appends. It costs
// O(min(i, Len-i)) plus any growth.
func (d *Deque[T, I]) Insert(i int, t T) error {
	return d.InsertN(i, 1, t)
}

// InsertN puts n copies of t at position i.
func (d *Deque[T, I]) InsertN(i, n int, t T) error {
	if i < 0 || uint64(i) > d.len() {
		return indexError(i, d.len())
	}
	if n < 0 {
		return ErrNegativeCapacity
	}
	if n == 0 {
		return nil
	}
	// Growth relocates from logical index 0, so it has to happen before the
	// gap is opened.
	if err := d.grow(uint64(n)); err != nil {
		return err
	}
	d.openGap(uint64(i), uint64(n))
	a := d.allocator()
	for k := range uint64(n) {
		d.logical(uint64(i)+k).construct(a, t)
	}
	return nil
}

// Emplace builds a new element at position i by running init on a zero T.
func (d *Deque[T, I]) Emplace(i int, init func(*T)) error {
	return d.InsertN(i, 1, build(init))
}

// openGap leaves logical positions [pos, pos+n) empty by moving the shorter
// side outwards. Capacity for n more elements must already be there.
func (d *Deque[T, I]) openGap(pos, n uint64) {
	a := d.allocator()
	size := d.len()
	if pos < size-pos {
		// Front side moves towards the front, lowest index first: each
		// destination was vacated n steps earlier or was never occupied.
		d.read = (d.read - n) & d.wrap()
		for i := range pos {
			relocate(a, d.logical(i), d.logical(i+n))
		}
		return
	}
	// Back side moves towards the back, highest index first.
	for i := size; i > pos; i-- {
		relocate(a, d.logical(i-1+n), d.logical(i-1))
	}
	d.write = (d.write + n) & d.wrap()
}

// Erase removes the element at position i and returns i, the position of the
// element that followed it.
func (d *Deque[T, I]) Erase(i int) (int, error) {
	return d.EraseRange(i, i+1)
}

// EraseRange removes the elements in [first, last) and returns first. The
// elements after last slide back to close the gap, and the Deque may shrink
// afterwards. An empty range is a no-op.
func (d *Deque[T, I]) EraseRange(first, last int) (int, error) {
	if first < 0 || first > last || uint64(last) > d.len() {
		return first, rangeError(first, last, d.len())
	}
	count := uint64(last - first)
	if count == 0 {
		return first, nil
	}

	a := d.allocator()
	for i := uint64(first); i < uint64(last); i++ {
		d.logical(i).destroy(a)
	}
	size := d.len()
	for i := uint64(last); i < size; i++ {
		relocate(a, d.logical(i-count), d.logical(i))
	}
	d.write = (d.write - count) & d.wrap()
	d.shrink()
	return first, nil
}
