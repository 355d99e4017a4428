package fuzz

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lucasgdosr/deque/v2"
	"github.com/lucasgdosr/deque/v2/allocator"
)

// Config controls a run. Every worker draws its script from a PCG stream
// seeded with Seed and its own index, so a run is fully reproducible.
type Config struct {
	Seed      uint64 `mapstructure:"seed"`
	Steps     int    `mapstructure:"steps"`
	Workers   int    `mapstructure:"workers"`
	MaxTarget int    `mapstructure:"max_target"`
}

// narrowWidth is the cursor width of the small Deques built by
// DefaultFactory. It bounds how large the queues may grow.
const narrowWidth = 16

// MaxTargetLimit is the largest MaxTarget a run accepts. Queues hold at most
// MaxTarget elements, which must fit the narrowest cursors.
const MaxTargetLimit = 1<<(narrowWidth-1) - 1

// DefaultConfig runs 16 workers for 8192 steps each, with queues that wander
// between 0 and 14 elements.
func DefaultConfig() Config {
	return Config{
		Seed:      1234,
		Steps:     1 << 13,
		Workers:   16,
		MaxTarget: 15,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Steps < 0:
		return errors.Errorf("steps must not be negative, got %d", c.Steps)
	case c.Workers < 1:
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	case c.MaxTarget < 2:
		return errors.Errorf("max target must be at least 2, got %d", c.MaxTarget)
	case c.MaxTarget > MaxTargetLimit:
		return errors.Errorf("max target must be at most %d, got %d", MaxTargetLimit, c.MaxTarget)
	}
	return nil
}

// Factory builds the Subjects of one worker. The first one is the reference.
type Factory func(worker int) ([]Subject, error)

// SubjectOptions wires observability into the Trackers of DefaultFactory.
type SubjectOptions struct {
	// Registerer receives the metrics of every Tracker, labelled
	// "<subject>/<worker>". Nil disables metrics.
	Registerer prometheus.Registerer
	// Logger receives Tracker logs. Nil disables logging.
	Logger logrus.FieldLogger
}

// DefaultFactory builds the reference plus Deques with inline capacities 0,
// 1, 2, 4, 16 and 64, the small ones with 16-bit cursors so that the cursors
// wrap during long runs.
func DefaultFactory(opts SubjectOptions) Factory {
	return func(worker int) ([]Subject, error) {
		tracker := func(name string) (*allocator.Tracker[uint32], error) {
			var trackerOpts []allocator.Option
			if opts.Registerer != nil {
				trackerOpts = append(trackerOpts, allocator.WithMetrics(opts.Registerer, fmt.Sprintf("%s/%d", name, worker)))
			}
			if opts.Logger != nil {
				trackerOpts = append(trackerOpts, allocator.WithLogger(opts.Logger.WithFields(logrus.Fields{
					"subject": name,
					"worker":  worker,
				})))
			}
			return allocator.NewTracker[uint32](nil, trackerOpts...)
		}

		subjects := []Subject{newReference()}
		builders := []struct {
			name  string
			build func(string, int, *allocator.Tracker[uint32]) (Subject, error)
			width int
		}{
			{"deque<0>", subjectBuilder[[0]uint32](), narrowWidth},
			{"deque<1>", subjectBuilder[[1]uint32](), narrowWidth},
			{"deque<2>", subjectBuilder[[2]uint32](), narrowWidth},
			{"deque<4>", subjectBuilder[[4]uint32](), narrowWidth},
			{"deque<16>", subjectBuilder[[16]uint32](), 32},
			{"deque<64>", subjectBuilder[[64]uint32](), 64},
		}
		for _, b := range builders {
			t, err := tracker(b.name)
			if err != nil {
				return nil, err
			}
			s, err := b.build(b.name, b.width, t)
			if err != nil {
				return nil, err
			}
			subjects = append(subjects, s)
		}
		return subjects, nil
	}
}

func subjectBuilder[I deque.Inline[uint32]]() func(string, int, *allocator.Tracker[uint32]) (Subject, error) {
	return func(name string, width int, t *allocator.Tracker[uint32]) (Subject, error) {
		return newDequeSubject[I](name, width, t)
	}
}

// SubjectResult sums up one implementation over all workers.
type SubjectResult struct {
	Name string
	// Checksum is the XOR of the final checksums of every worker.
	Checksum uint64
	// Stats sums the Tracker counters of every worker, if the Subject has a
	// Tracker.
	Stats    allocator.Stats
	HasStats bool
}

// Result is the outcome of a run in which no Subject disagreed.
type Result struct {
	Steps    int
	Workers  int
	Subjects []SubjectResult
}

type statser interface {
	Stats() allocator.Stats
}

// Run runs cfg.Workers workers in parallel, each on its own Subjects. It
// stops at the first disagreement, which wraps ErrMismatch, or when ctx is
// done.
func Run(ctx context.Context, cfg Config, factory Factory) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	perWorker := make([][]SubjectResult, cfg.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for id := range cfg.Workers {
		g.Go(func() error {
			subjects, err := factory(id)
			if err != nil {
				return errors.Wrapf(err, "worker %d subjects", id)
			}
			if len(subjects) == 0 {
				return errors.Errorf("worker %d has no subjects", id)
			}
			res, err := runWorker(ctx, id, cfg, subjects)
			if err != nil {
				return err
			}
			perWorker[id] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Steps: cfg.Steps, Workers: cfg.Workers}
	for _, res := range perWorker {
		if result.Subjects == nil {
			result.Subjects = make([]SubjectResult, len(res))
			for i, r := range res {
				result.Subjects[i].Name = r.Name
				result.Subjects[i].HasStats = r.HasStats
			}
		}
		for i, r := range res {
			result.Subjects[i].Checksum ^= r.Checksum
			result.Subjects[i].Stats = result.Subjects[i].Stats.Add(r.Stats)
		}
	}
	return result, nil
}

func runWorker(ctx context.Context, id int, cfg Config, subjects []Subject) ([]SubjectResult, error) {
	w := newWorker(id, cfg, subjects)
	for n := range cfg.Steps {
		if n%1024 == 0 {
			if err := ctx.Err(); err != nil {
				w.close()
				return nil, err
			}
		}
		if err := w.step(n); err != nil {
			w.close()
			return nil, err
		}
	}
	w.close()

	res := make([]SubjectResult, len(subjects))
	for i, s := range subjects {
		res[i] = SubjectResult{Name: s.Name(), Checksum: w.checksums[i]}
		st, ok := s.(statser)
		if !ok {
			continue
		}
		stats := st.Stats()
		if stats.Live() != 0 || stats.SlotsInUse != 0 {
			return nil, errors.Wrapf(ErrMismatch, "worker %d: %s leaked %d elements and %d slots",
				id, s.Name(), stats.Live(), stats.SlotsInUse)
		}
		res[i].Stats, res[i].HasStats = stats, true
	}
	return res, nil
}
