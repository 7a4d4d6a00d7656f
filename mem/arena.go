package mem

import "github.com/daktlib/memkit/internal/bounds"

// Arena is a monotonic bump allocator over a fixed-capacity region.
// Allocation advances a single offset in O(1); individual frees are not
// supported, and Reset reclaims the whole region at once.
//
// The region is either owned (NewArena, NewArenaPages) or borrowed
// (NewArenaBuffer); borrowed regions remain visible to the caller, so an
// arena can carve allocations out of storage someone else manages.
//
// An Arena must not be copied after first use and is not safe for
// concurrent use.
type Arena struct {
	region []byte
	offset int

	// release tears down an owned mmap region; nil for GC-managed and
	// borrowed regions.
	release func() error
}

// NewArena returns an arena that owns a fresh region of capacity bytes.
// Panics if capacity is not positive.
func NewArena(capacity int) *Arena {
	if capacity <= 0 {
		panic("mem: arena capacity must be positive")
	}
	return &Arena{region: make([]byte, capacity)}
}

// NewArenaBuffer returns an arena that borrows the caller's region. The
// arena never releases the region; the caller keeps ownership and must keep
// it alive for the arena's lifetime. Panics if buf is empty.
func NewArenaBuffer(buf []byte) *Arena {
	if len(buf) == 0 {
		panic("mem: arena buffer cannot be empty")
	}
	return &Arena{region: buf}
}

// Allocate returns the next size bytes at the first alignment boundary at or
// after the current offset. Fails with ErrArenaFull when the region cannot
// satisfy the request; the arena never falls back to the heap.
func (a *Arena) Allocate(size, alignment int) ([]byte, error) {
	checkAlignment(alignment)
	if size == 0 {
		return nil, nil
	}
	if size < 0 {
		panic("mem: negative allocation size")
	}
	// Both the round-up and the end offset must be overflow-checked: a size
	// or alignment near MaxInt would otherwise wrap past the capacity test.
	padded, ok := bounds.Add(a.offset, alignment-1)
	if !ok {
		return nil, ErrArenaFull
	}
	aligned := padded &^ (alignment - 1)
	end, ok := bounds.Add(aligned, size)
	if !ok || end > len(a.region) {
		return nil, ErrArenaFull
	}
	b := a.region[aligned:end:end]
	a.offset = end
	return b, nil
}

// Deallocate is a no-op: a bump allocator frees only en masse via Reset.
func (a *Arena) Deallocate(b []byte) {}

// Reallocate shrinks in place (the same block is returned, truncated) or
// allocates a fresh block from the arena and copies forward. Grown-away-from
// blocks are not reclaimed until Reset; that is the structural cost of bump
// allocation, not leakage.
func (a *Arena) Reallocate(b []byte, newSize, alignment int) ([]byte, error) {
	if newSize == 0 {
		return nil, nil
	}
	if b == nil {
		return a.Allocate(newSize, alignment)
	}
	if newSize <= len(b) {
		return b[:newSize], nil
	}
	nb, err := a.Allocate(newSize, alignment)
	if err != nil {
		return nil, err
	}
	copy(nb, b)
	return nb, nil
}

// Reset rewinds the offset to zero without zeroing memory. Every slice
// previously returned by this arena is invalid from this point on; holding
// one across Reset is a contract violation the type cannot detect.
func (a *Arena) Reset() {
	a.offset = 0
}

// Capacity returns the total region size in bytes.
func (a *Arena) Capacity() int {
	return len(a.region)
}

// Used returns the bytes consumed so far, including alignment padding.
func (a *Arena) Used() int {
	return a.offset
}

// Remaining returns the bytes still available.
func (a *Arena) Remaining() int {
	return len(a.region) - a.offset
}

// Close releases an mmap-backed region. For heap-owned and borrowed regions
// it is a no-op. The arena must not be used after Close.
func (a *Arena) Close() error {
	if a.release == nil {
		return nil
	}
	err := a.release()
	a.release = nil
	a.region = nil
	a.offset = 0
	return err
}

// Compile-time interface check
var _ Allocator = (*Arena)(nil)
