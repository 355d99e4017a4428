// Package fuzz drives deques with seeded random scripts and checks them
// against a reference implementation.
//
// Every worker owns one Subject per implementation. A Subject is a pair of
// queues, the primary one that most operations touch and a secondary one that
// copies and moves exchange contents with. All Subjects of a worker receive
// the same operations in the same order and must agree, after every step, on
// the contents of both queues, on the number of live elements and on a
// running checksum of every value they hand out.
package fuzz

// Exchange names a way of swapping the contents of the two queues of a
// Subject through a temporary.
type Exchange int

const (
	// ExchangeSwap moves the primary into a temporary, the secondary into the
	// primary and the temporary into the secondary.
	ExchangeSwap Exchange = iota
	// ExchangeCopy does the same with copies only.
	ExchangeCopy
	// ExchangeMove does the same with moves into fresh values.
	ExchangeMove
	// ExchangeCopyThenMove copies the primary out, then moves.
	ExchangeCopyThenMove
	// ExchangeMoveThenCopy moves the primary out and copies the secondary in.
	ExchangeMoveThenCopy
)

// String returns a human-readable representation of the exchange.
func (e Exchange) String() string {
	switch e {
	case ExchangeSwap:
		return "swap"
	case ExchangeCopy:
		return "copy"
	case ExchangeMove:
		return "move"
	case ExchangeCopyThenMove:
		return "copy-then-move"
	case ExchangeMoveThenCopy:
		return "move-then-copy"
	default:
		return "unknown"
	}
}

// Subject is a pair of queues of uint32 under test.
type Subject interface {
	Name() string

	PushBack(v uint32) error
	PushFront(v uint32) error
	EmplaceBack(v uint32) error
	EmplaceFront(v uint32) error
	PopFront() (uint32, error)
	PopBack() (uint32, error)
	Front() (uint32, error)
	Back() (uint32, error)
	At(i int) (uint32, error)
	// Insert puts n copies of v at position i.
	Insert(i, n int, v uint32) error
	// Erase removes the elements in [first, last).
	Erase(first, last int) error
	ShrinkToFit() error
	Exchange(kind Exchange) error

	Len() int
	// Snapshot returns the primary queue, front to back, followed by the
	// secondary one.
	Snapshot() (primary, secondary []uint32)
	// Live returns the number of elements alive in both queues.
	Live() int64
	// Close releases both queues.
	Close()
}
