package allocator

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type trackerMetrics struct {
	allocations   prometheus.Counter
	deallocations prometheus.Counter
	failures      prometheus.Counter
	constructs    prometheus.Counter
	destroys      prometheus.Counter

	slotsInUse prometheus.Gauge
	live       prometheus.Gauge
}

func newTrackerMetrics(registerer prometheus.Registerer, name string) (*trackerMetrics, error) {
	labels := prometheus.Labels{"allocator": name}
	counter := func(metric, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "deque",
			Subsystem:   "allocator",
			Name:        metric,
			ConstLabels: labels,
			Help:        help,
		})
	}
	gauge := func(metric, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "deque",
			Subsystem:   "allocator",
			Name:        metric,
			ConstLabels: labels,
			Help:        help,
		})
	}

	m := &trackerMetrics{
		allocations:   counter("allocations_total", "Total number of buffers allocated"),
		deallocations: counter("deallocations_total", "Total number of buffers deallocated"),
		failures:      counter("allocation_failures_total", "Total number of failed buffer allocations"),
		constructs:    counter("constructs_total", "Total number of elements constructed in a slot"),
		destroys:      counter("destroys_total", "Total number of elements destroyed in a slot"),
		slotsInUse:    gauge("slots_in_use", "Slots in buffers allocated and not yet deallocated"),
		live:          gauge("live_elements", "Elements constructed and not yet destroyed"),
	}

	for _, c := range []prometheus.Collector{
		m.allocations, m.deallocations, m.failures, m.constructs, m.destroys, m.slotsInUse, m.live,
	} {
		if err := registerer.Register(c); err != nil {
			return nil, errors.Wrapf(err, "register metrics for allocator %q", name)
		}
	}
	return m, nil
}

func (m *trackerMetrics) recordAllocate(n int) {
	m.allocations.Inc()
	m.slotsInUse.Add(float64(n))
}

func (m *trackerMetrics) recordDeallocate(n int) {
	m.deallocations.Inc()
	m.slotsInUse.Sub(float64(n))
}

func (m *trackerMetrics) recordFailure() {
	m.failures.Inc()
}

func (m *trackerMetrics) recordConstruct() {
	m.constructs.Inc()
	m.live.Inc()
}

func (m *trackerMetrics) recordDestroy() {
	m.destroys.Inc()
	m.live.Dec()
}
