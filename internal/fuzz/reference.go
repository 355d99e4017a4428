package fuzz

import (
	"github.com/gammazero/deque"

	dq "github.com/lucasgdosr/deque/v2"
)

// referenceName is the name of the Subject every other one is compared to.
const referenceName = "reference"

// reference is a Subject backed by github.com/gammazero/deque.
type reference struct {
	q, other *deque.Deque[uint32]
}

func newReference() *reference {
	return &reference{q: new(deque.Deque[uint32]), other: new(deque.Deque[uint32])}
}

func (r *reference) Name() string { return referenceName }

func (r *reference) PushBack(v uint32) error {
	r.q.PushBack(v)
	return nil
}

func (r *reference) PushFront(v uint32) error {
	r.q.PushFront(v)
	return nil
}

func (r *reference) EmplaceBack(v uint32) error  { return r.PushBack(v) }
func (r *reference) EmplaceFront(v uint32) error { return r.PushFront(v) }

func (r *reference) PopFront() (uint32, error) {
	if r.q.Len() == 0 {
		return 0, dq.ErrEmptyQueue
	}
	return r.q.PopFront(), nil
}

func (r *reference) PopBack() (uint32, error) {
	if r.q.Len() == 0 {
		return 0, dq.ErrEmptyQueue
	}
	return r.q.PopBack(), nil
}

func (r *reference) Front() (uint32, error) {
	if r.q.Len() == 0 {
		return 0, dq.ErrEmptyQueue
	}
	return r.q.Front(), nil
}

func (r *reference) Back() (uint32, error) {
	if r.q.Len() == 0 {
		return 0, dq.ErrEmptyQueue
	}
	return r.q.Back(), nil
}

func (r *reference) At(i int) (uint32, error) {
	if i < 0 || i >= r.q.Len() {
		return 0, dq.ErrIndexOutOfRange
	}
	return r.q.At(i), nil
}

func (r *reference) Insert(i, n int, v uint32) error {
	if i < 0 || i > r.q.Len() {
		return dq.ErrIndexOutOfRange
	}
	for range n {
		r.q.Insert(i, v)
	}
	return nil
}

func (r *reference) Erase(first, last int) error {
	if first < 0 || first > last || last > r.q.Len() {
		return dq.ErrIndexOutOfRange
	}
	for range last - first {
		r.q.Remove(first)
	}
	return nil
}

func (r *reference) ShrinkToFit() error { return nil }

func (r *reference) Exchange(Exchange) error {
	r.q, r.other = r.other, r.q
	return nil
}

func (r *reference) Len() int { return r.q.Len() }

func (r *reference) Snapshot() (primary, secondary []uint32) {
	return contents(r.q), contents(r.other)
}

func (r *reference) Live() int64 { return int64(r.q.Len() + r.other.Len()) }

func (r *reference) Close() {
	r.q.Clear()
	r.other.Clear()
}

func contents(q *deque.Deque[uint32]) []uint32 {
	s := make([]uint32, q.Len())
	for i := range s {
		s[i] = q.At(i)
	}
	return s
}
