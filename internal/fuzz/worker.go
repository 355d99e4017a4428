package fuzz

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-test/deep"
	"github.com/pkg/errors"
)

// ErrMismatch is wrapped by every disagreement between Subjects.
var ErrMismatch = errors.New("subjects disagree")

type opKind int

const (
	opPushBack opKind = iota
	opEmplaceBack
	opPushFront
	opEmplaceFront
	opInsert
	opPopBack
	opPopFront
	opErase
)

func (k opKind) String() string {
	return [...]string{
		"push-back", "emplace-back", "push-front", "emplace-front",
		"insert", "pop-back", "pop-front", "erase",
	}[k]
}

// op is one generated step, applied identically to every Subject.
type op struct {
	kind  opKind
	value uint32
	// pos and n are the insert position and count, or the erase range
	// [pos, pos+n).
	pos, n int
	// chore selects shrinking, a full iteration or an exchange, as in
	// choreOf.
	chore uint64
	// probe picks the element read back after the step.
	probe uint64
}

// worker applies one random script to a set of Subjects. The first Subject
// is the reference.
type worker struct {
	id        int
	subjects  []Subject
	checksums []uint64
	target    int
	maxTarget int
	rng       *rand.Rand
}

func newWorker(id int, cfg Config, subjects []Subject) *worker {
	return &worker{
		id:        id,
		subjects:  subjects,
		checksums: make([]uint64, len(subjects)),
		maxTarget: cfg.MaxTarget,
		rng:       rand.New(rand.NewPCG(cfg.Seed, uint64(id))),
	}
}

// next draws the operation for the current state. Lengths are taken from the
// reference; if another Subject disagrees, step reports it.
func (w *worker) next() op {
	size := w.subjects[0].Len()
	for size == w.target {
		w.target = int(w.rng.Uint64() % uint64(w.maxTarget))
	}

	val := w.rng.Uint64() & 0xffff
	o := op{value: uint32(val), chore: val & 0xff, probe: w.rng.Uint64()}
	positional := (val>>2)&7 == 0
	switch {
	case size < w.target && positional:
		o.kind = opInsert
		o.pos = int(w.rng.Uint64() % uint64(size+1))
		o.n = 1 + int(val>>5&1)
	case size < w.target:
		o.kind = opKind(val & 3)
	case positional:
		o.kind = opErase
		o.pos = int(w.rng.Uint64() % uint64(size))
		o.n = 1 + int(w.rng.Uint64()%uint64(min(size-o.pos, 3)))
	case val&1 == 1:
		o.kind = opPopBack
	default:
		o.kind = opPopFront
	}
	return o
}

func (w *worker) step(n int) error {
	o := w.next()
	for i, s := range w.subjects {
		if err := w.apply(i, s, o); err != nil {
			return errors.Wrapf(err, "worker %d step %d: %s on %s", w.id, n, o.kind, s.Name())
		}
	}
	return w.compare(n, o)
}

func (w *worker) apply(i int, s Subject, o op) error {
	if err := w.mutate(i, s, o); err != nil {
		return err
	}

	var err error
	switch c := o.chore; {
	case c == 0:
		err = s.ShrinkToFit()
	case c == 1:
		primary, _ := s.Snapshot()
		for _, v := range primary {
			w.mix(i, uint64(v))
		}
	case c >= 2 && c <= 6:
		err = s.Exchange(Exchange(c - 2))
	}
	if err != nil {
		return err
	}

	w.mix(i, uint64(s.Live()))
	w.mix(i, uint64(s.Len()))
	if n := s.Len(); n > 0 {
		v, err := s.At(int(o.probe % uint64(n)))
		if err != nil {
			return err
		}
		w.mix(i, uint64(v))
	}
	return nil
}

func (w *worker) mutate(i int, s Subject, o op) error {
	switch o.kind {
	case opPushBack:
		return s.PushBack(o.value)
	case opEmplaceBack:
		return s.EmplaceBack(o.value)
	case opPushFront:
		return s.PushFront(o.value)
	case opEmplaceFront:
		return s.EmplaceFront(o.value)
	case opInsert:
		return s.Insert(o.pos, o.n, o.value)
	case opErase:
		return s.Erase(o.pos, o.pos+o.n)
	}

	peek, pop := s.Front, s.PopFront
	if o.kind == opPopBack {
		peek, pop = s.Back, s.PopBack
	}
	v, err := peek()
	if err != nil {
		return err
	}
	w.mix(i, uint64(v))
	if v, err = pop(); err != nil {
		return err
	}
	w.mix(i, uint64(v))
	return nil
}

// compare checks every Subject against the reference.
func (w *worker) compare(n int, o op) error {
	ref := w.subjects[0]
	refPrimary, refSecondary := ref.Snapshot()
	for i, s := range w.subjects[1:] {
		primary, secondary := s.Snapshot()
		if diff := deep.Equal(primary, refPrimary); diff != nil {
			return w.mismatch(n, o, s, "primary", diff)
		}
		if diff := deep.Equal(secondary, refSecondary); diff != nil {
			return w.mismatch(n, o, s, "secondary", diff)
		}
		if live, want := s.Live(), ref.Live(); live != want {
			return w.mismatch(n, o, s, "live", []string{fmt.Sprintf("%d != %d", live, want)})
		}
		if got, want := w.checksums[i+1], w.checksums[0]; got != want {
			return w.mismatch(n, o, s, "checksum", []string{fmt.Sprintf("%#x != %#x", got, want)})
		}
	}
	return nil
}

func (w *worker) mismatch(n int, o op, s Subject, what string, diff []string) error {
	return errors.Wrapf(ErrMismatch, "worker %d step %d after %s: %s %s: %v", w.id, n, o.kind, s.Name(), what, diff)
}

func (w *worker) mix(i int, v uint64) {
	w.checksums[i] = ((w.checksums[i] << 5) + v) ^ w.checksums[i]
}

func (w *worker) close() {
	for _, s := range w.subjects {
		s.Close()
	}
}
