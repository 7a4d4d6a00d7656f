package mem

// Allocator defines the capability interface all allocation strategies
// implement.
//
// Implementations:
//   - Heap: general-purpose strategy over the Go runtime allocator
//   - Arena: monotonic bump allocator over a fixed region
//   - Pool: fixed-block allocator with a free list
//
// Blocks are byte slices; the slice length carries the size that C-style
// allocators would require callers to pass back on free.
type Allocator interface {
	// Allocate returns a block of size bytes aligned to alignment.
	// alignment must be a power of two. A size of zero returns (nil, nil):
	// no allocation was performed, and that is not an error. Capacity
	// exhaustion is reported as an error, never a panic.
	Allocate(size, alignment int) ([]byte, error)

	// Deallocate returns a block previously obtained from Allocate or
	// Reallocate on the same instance. Deallocating nil is a no-op.
	Deallocate(b []byte)

	// Reallocate resizes a block, possibly moving it. A nil b behaves as
	// Allocate(newSize, alignment). A newSize of zero behaves as
	// Deallocate and returns (nil, nil). Callers must not assume the
	// returned block aliases b: strategies are free to allocate fresh
	// storage, copy min(len(b), newSize) bytes, and release the old block.
	Reallocate(b []byte, newSize, alignment int) ([]byte, error)
}
