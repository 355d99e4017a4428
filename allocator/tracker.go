package allocator

import (
	"github.com/sirupsen/logrus"

	"github.com/lucasgdosr/deque/v2"
)

// Tracker wraps an Allocator and counts everything that goes through it.
// Stats are always collected; Prometheus metrics and logging are optional.
//
// Since a Deque pairs every Construct with a Destroy, Stats().Live() equals
// the total length of the Deques sharing the Tracker, and Stats().SlotsInUse
// their total heap capacity.
type Tracker[T any] struct {
	next    deque.Allocator[T]
	stats   Stats
	metrics *trackerMetrics
	logger  logrus.FieldLogger
}

var _ deque.Allocator[int] = (*Tracker[int])(nil)

// NewTracker wraps next, or a deque.HeapAllocator if next is nil. It returns
// an error if the metrics cannot be registered.
func NewTracker[T any](next deque.Allocator[T], opts ...Option) (*Tracker[T], error) {
	o := applyOptions(opts...)
	if next == nil {
		next = deque.HeapAllocator[T]{}
	}
	t := &Tracker[T]{next: next, logger: o.logger}
	if o.registerer != nil {
		m, err := newTrackerMetrics(o.registerer, o.name)
		if err != nil {
			return nil, err
		}
		t.metrics = m
	}
	return t, nil
}

// Stats returns a snapshot of the counters.
func (t *Tracker[T]) Stats() Stats {
	return t.stats
}

// Allocate asks the wrapped Allocator for n slots.
func (t *Tracker[T]) Allocate(n int) ([]T, error) {
	buf, err := t.next.Allocate(n)
	if err != nil {
		t.stats.Failures++
		if t.metrics != nil {
			t.metrics.recordFailure()
		}
		if t.logger != nil {
			t.logger.WithError(err).WithField("slots", n).Warn("Buffer allocation failed")
		}
		return nil, err
	}
	t.stats.Allocations++
	t.stats.SlotsInUse += int64(len(buf))
	if t.metrics != nil {
		t.metrics.recordAllocate(len(buf))
	}
	if t.logger != nil {
		t.logger.WithFields(logrus.Fields{
			"slots":        len(buf),
			"slots_in_use": t.stats.SlotsInUse,
		}).Debug("Buffer allocated")
	}
	return buf, nil
}

// Deallocate hands buf back to the wrapped Allocator.
func (t *Tracker[T]) Deallocate(buf []T) {
	t.next.Deallocate(buf)
	t.stats.Deallocations++
	t.stats.SlotsInUse -= int64(len(buf))
	if t.metrics != nil {
		t.metrics.recordDeallocate(len(buf))
	}
	if t.logger != nil {
		t.logger.WithFields(logrus.Fields{
			"slots":        len(buf),
			"slots_in_use": t.stats.SlotsInUse,
		}).Debug("Buffer deallocated")
	}
}

// Construct counts and forwards an element construction.
func (t *Tracker[T]) Construct(slot *T, v T) {
	t.next.Construct(slot, v)
	t.stats.Constructs++
	if t.metrics != nil {
		t.metrics.recordConstruct()
	}
}

// Destroy counts and forwards an element destruction.
func (t *Tracker[T]) Destroy(slot *T) {
	t.next.Destroy(slot)
	t.stats.Destroys++
	if t.metrics != nil {
		t.metrics.recordDestroy()
	}
}
