// Package mem provides pluggable memory allocation strategies over byte
// regions.
//
// # Overview
//
// This package implements three allocation strategies behind one capability
// interface. Allocations are byte slices carved out of backing regions, so
// the usual C pitfalls (dangling raw pointers, unbounded writes) become
// bounds-checked slice operations while the allocation discipline of each
// strategy is preserved exactly.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface:
//
//   - Allocate(size, alignment): Obtain an aligned block of size bytes
//   - Deallocate(b): Return a block to the strategy
//   - Reallocate(b, newSize, alignment): Resize a block, possibly moving it
//
// All strategies report ordinary failures (capacity exhaustion) as errors.
// Contract violations - a non-power-of-two alignment, a pointer handed to a
// pool that never issued it - panic, the way assertion failures would.
//
// # Implementations
//
// Heap: General-purpose strategy over the Go runtime allocator
//
//   - Safe for concurrent use
//   - Optional Stats accounting with atomic counters
//   - DefaultAllocator package variable for callers that don't care
//
// Arena: Monotonic bump allocator over a fixed-capacity region
//
//   - O(1) allocation, no individual frees
//   - Reset() reclaims everything at once
//   - Region may be owned, caller-supplied, or (on unix) mmap-backed
//
// Pool: Fixed-block allocator with an index-threaded free list
//
//   - O(1) allocate and deallocate
//   - LIFO block reuse
//   - Detects double frees and foreign pointers
//
// # Usage Example
//
//	a := mem.NewArena(64 * 1024)
//	b, err := a.Allocate(256, 8)
//	if err != nil {
//	    return err
//	}
//	// use b...
//	a.Reset() // all outstanding slices are now invalid by contract
//
// # Thread Safety
//
// Heap is safe for concurrent use. Arena and Pool are not: concurrent calls
// on one instance are a data race. Shard one arena per goroutine or wrap
// calls in external locking.
package mem
