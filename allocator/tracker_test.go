package allocator

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasgdosr/deque/v2"
)

func TestTrackerStats(t *testing.T) {
	tracker, err := NewTracker[int](nil)
	require.NoError(t, err)
	d, err := deque.New[int, [2]int](deque.WithAllocator[int](tracker))
	require.NoError(t, err)

	require.NoError(t, d.Append(1, 2, 3))
	st := tracker.Stats()
	// Append grows once, before building anything.
	assert.Equal(t, Stats{Allocations: 1, SlotsInUse: 4, Constructs: 3}, st)
	assert.Equal(t, int64(3), st.Live())
	assert.Equal(t, int64(1), st.Buffers())

	d.Reset()
	st = tracker.Stats()
	assert.Equal(t, int64(0), st.Live())
	assert.Equal(t, int64(0), st.Buffers())
	assert.Equal(t, int64(0), st.SlotsInUse)
}

func TestStatsAdd(t *testing.T) {
	a := Stats{Allocations: 1, Deallocations: 2, Failures: 3, SlotsInUse: 4, Constructs: 5, Destroys: 6}
	assert.Equal(t, Stats{Allocations: 2, Deallocations: 4, Failures: 6, SlotsInUse: 8, Constructs: 10, Destroys: 12}, a.Add(a))
	assert.Equal(t, a, a.Add(Stats{}))
}

func TestTrackerMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	tracker, err := NewTracker[string](nil, WithMetrics(reg, "test"))
	require.NoError(t, err)
	d, err := deque.New[string, [0]string](deque.WithAllocator[string](tracker))
	require.NoError(t, err)

	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, d.PushBack(s))
	}
	m := tracker.metrics
	// Buffers of 1, 2 and 4 slots, the first two handed back.
	assert.Equal(t, float64(3), testutil.ToFloat64(m.allocations))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.deallocations))
	assert.Equal(t, float64(4), testutil.ToFloat64(m.slotsInUse))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.live))
	assert.Equal(t, float64(6), testutil.ToFloat64(m.constructs))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.destroys))

	d.Reset()
	assert.Equal(t, float64(0), testutil.ToFloat64(m.live))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.slotsInUse))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 7)
}

func TestTrackerMetricsDuplicateName(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewTracker[int](nil, WithMetrics(reg, "dup"))
	require.NoError(t, err)
	_, err = NewTracker[int](nil, WithMetrics(reg, "dup"))
	assert.Error(t, err)

	_, err = NewTracker[int](nil, WithMetrics(reg, "other"))
	assert.NoError(t, err)
}

func TestTrackerLogging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	limited := NewLimited[int](nil, 2)
	tracker, err := NewTracker[int](limited, WithLogger(logger))
	require.NoError(t, err)
	d, err := deque.New[int, [0]int](deque.WithAllocator[int](tracker))
	require.NoError(t, err)

	require.NoError(t, d.PushBack(1))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "Buffer allocated", entry.Message)
	assert.Equal(t, 1, entry.Data["slots"])

	hook.Reset()
	require.ErrorIs(t, d.Reserve(4), deque.ErrAllocationFailure)
	entry = hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "Buffer allocation failed", entry.Message)
	assert.Equal(t, int64(1), tracker.Stats().Failures)

	d.Reset()
	assert.Equal(t, "Buffer deallocated", hook.LastEntry().Message)
}

func TestLimited(t *testing.T) {
	l := NewLimited[int](nil, 10)
	buf, err := l.Allocate(6)
	require.NoError(t, err)
	assert.Len(t, buf, 6)
	assert.Equal(t, 6, l.InUse())

	_, err = l.Allocate(5)
	assert.ErrorIs(t, err, deque.ErrAllocationFailure)
	assert.Equal(t, 6, l.InUse())

	l.Deallocate(buf)
	assert.Equal(t, 0, l.InUse())

	l.SetLimit(0)
	_, err = l.Allocate(1)
	assert.ErrorIs(t, err, deque.ErrAllocationFailure)
	buf, err = l.Allocate(0)
	require.NoError(t, err)
	assert.Empty(t, buf)
}
