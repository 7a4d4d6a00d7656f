package mem

import (
	"unsafe"

	"github.com/daktlib/memkit/internal/bounds"
)

// Heap is the general-purpose allocation strategy, delegating to the Go
// runtime allocator. It is stateless apart from optional Stats accounting
// and is safe for concurrent use.
//
// Allocate has no recoverable out-of-memory path: the runtime allocator
// either satisfies the request or terminates the process. The one error it
// can return is ErrRegionSize, when over-allocating for an alignment
// stricter than 8 would overflow int.
type Heap struct {
	stats *Stats
}

// DefaultAllocator is a shared Heap for callers with no strategy preference.
// It is safe to use from multiple goroutines.
var DefaultAllocator Allocator = NewHeap()

// NewHeap returns a Heap with no accounting.
func NewHeap() *Heap {
	return &Heap{}
}

// NewHeapStats returns a Heap that records allocation accounting into stats.
// A nil stats is equivalent to NewHeap.
func NewHeapStats(stats *Stats) *Heap {
	return &Heap{stats: stats}
}

// Stats returns the accounting object, or nil when none was attached.
func (h *Heap) Stats() *Stats {
	return h.stats
}

// Allocate returns a block of size bytes aligned to alignment.
func (h *Heap) Allocate(size, alignment int) ([]byte, error) {
	checkAlignment(alignment)
	if size == 0 {
		return nil, nil
	}
	if size < 0 {
		panic("mem: negative allocation size")
	}
	b, ok := alignedBlock(size, alignment)
	if !ok {
		return nil, ErrRegionSize
	}
	h.stats.record(size)
	return b, nil
}

// Deallocate releases a block. The storage is reclaimed by the garbage
// collector once unreferenced; this call exists for accounting and
// interface symmetry. Deallocating nil is a no-op.
func (h *Heap) Deallocate(b []byte) {
	if b == nil {
		return
	}
	h.stats.recordFree(len(b))
}

// Reallocate always moves: it allocates fresh storage, copies
// min(len(b), newSize) bytes, and releases the old block. Callers must not
// assume address stability.
func (h *Heap) Reallocate(b []byte, newSize, alignment int) ([]byte, error) {
	if newSize == 0 {
		h.Deallocate(b)
		return nil, nil
	}
	if b == nil {
		return h.Allocate(newSize, alignment)
	}
	nb, err := h.Allocate(newSize, alignment)
	if err != nil {
		return nil, err
	}
	copy(nb, b)
	h.Deallocate(b)
	return nb, nil
}

// alignedBlock returns a zeroed slice of size bytes whose first element sits
// on an alignment boundary. The runtime guarantees 8-byte alignment for byte
// slices; stricter alignments are met by over-allocating and slicing at the
// first aligned offset. ok is false when the over-allocation would overflow
// int.
func alignedBlock(size, alignment int) ([]byte, bool) {
	if alignment <= 8 {
		return make([]byte, size), true
	}
	padded, ok := bounds.Add(size, alignment)
	if !ok {
		return nil, false
	}
	raw := make([]byte, padded)
	off := int(uintptr(unsafe.Pointer(unsafe.SliceData(raw))) & uintptr(alignment-1))
	if off != 0 {
		off = alignment - off
	}
	return raw[off : off+size : off+size], true
}

// Compile-time interface check
var _ Allocator = (*Heap)(nil)
