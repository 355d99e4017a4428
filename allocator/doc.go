// Package allocator provides deque.Allocator implementations that wrap
// another Allocator:
//   - Tracker: always keeps Stats of buffers and element lifetimes, and
//     optionally exports them as Prometheus metrics and logs through logrus
//   - Limited: fails allocations past a slot budget with
//     deque.ErrAllocationFailure
//
// Like the Deque itself, these allocators are not safe for concurrent use.
// Give each goroutine its own Deques and its own allocators.
package allocator
