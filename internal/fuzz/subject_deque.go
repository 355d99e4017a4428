package fuzz

import (
	"github.com/lucasgdosr/deque/v2"
	"github.com/lucasgdosr/deque/v2/allocator"
)

// dequeSubject drives two Deques sharing one Tracker, so that the Tracker's
// live count covers exactly the elements of both.
type dequeSubject[I deque.Inline[uint32]] struct {
	name     string
	q, other *deque.Deque[uint32, I]
	tracker  *allocator.Tracker[uint32]
}

func newDequeSubject[I deque.Inline[uint32]](name string, width int, tracker *allocator.Tracker[uint32]) (*dequeSubject[I], error) {
	opts := []deque.Option[uint32]{
		deque.WithAllocator[uint32](tracker),
		deque.WithCursorWidth[uint32](width),
	}
	q, err := deque.New[uint32, I](opts...)
	if err != nil {
		return nil, err
	}
	other, err := deque.New[uint32, I](opts...)
	if err != nil {
		return nil, err
	}
	return &dequeSubject[I]{name: name, q: q, other: other, tracker: tracker}, nil
}

func (s *dequeSubject[I]) Name() string { return s.name }

func (s *dequeSubject[I]) PushBack(v uint32) error  { return s.q.PushBack(v) }
func (s *dequeSubject[I]) PushFront(v uint32) error { return s.q.PushFront(v) }

func (s *dequeSubject[I]) EmplaceBack(v uint32) error {
	return s.q.EmplaceBack(func(p *uint32) { *p = v })
}

func (s *dequeSubject[I]) EmplaceFront(v uint32) error {
	return s.q.EmplaceFront(func(p *uint32) { *p = v })
}

func (s *dequeSubject[I]) PopFront() (uint32, error) { return s.q.PopFront() }
func (s *dequeSubject[I]) PopBack() (uint32, error)  { return s.q.PopBack() }
func (s *dequeSubject[I]) Front() (uint32, error)    { return s.q.Front() }
func (s *dequeSubject[I]) Back() (uint32, error)     { return s.q.Back() }
func (s *dequeSubject[I]) At(i int) (uint32, error)  { return s.q.At(i) }

func (s *dequeSubject[I]) Insert(i, n int, v uint32) error {
	if n == 1 && i%2 == 0 {
		return s.q.Emplace(i, func(p *uint32) { *p = v })
	}
	return s.q.InsertN(i, n, v)
}

func (s *dequeSubject[I]) Erase(first, last int) error {
	_, err := s.q.EraseRange(first, last)
	return err
}

func (s *dequeSubject[I]) ShrinkToFit() error { return s.q.ShrinkToFit() }

func (s *dequeSubject[I]) Exchange(kind Exchange) error {
	switch kind {
	case ExchangeSwap:
		tmp := s.q.Move()
		s.q.MoveFrom(s.other)
		s.other.MoveFrom(tmp)
	case ExchangeCopy:
		tmp, err := s.q.Clone()
		if err != nil {
			return err
		}
		defer tmp.Reset()
		if err := s.q.CopyFrom(s.other); err != nil {
			return err
		}
		return s.other.CopyFrom(tmp)
	case ExchangeMove:
		var tmp deque.Deque[uint32, I]
		tmp.MoveFrom(s.q)
		s.q.MoveFrom(s.other)
		s.other.MoveFrom(&tmp)
	case ExchangeCopyThenMove:
		tmp, err := s.q.Clone()
		if err != nil {
			return err
		}
		s.q.MoveFrom(s.other)
		s.other.MoveFrom(tmp)
	case ExchangeMoveThenCopy:
		tmp := s.q.Move()
		defer tmp.Reset()
		if err := s.q.CopyFrom(s.other); err != nil {
			return err
		}
		s.other.MoveFrom(tmp)
	}
	return nil
}

func (s *dequeSubject[I]) Len() int { return s.q.Len() }

func (s *dequeSubject[I]) Snapshot() (primary, secondary []uint32) {
	return s.q.ToSlice(), s.other.ToSlice()
}

func (s *dequeSubject[I]) Live() int64 { return s.tracker.Stats().Live() }

func (s *dequeSubject[I]) Close() {
	s.q.Reset()
	s.other.Reset()
}

func (s *dequeSubject[I]) Stats() allocator.Stats { return s.tracker.Stats() }
