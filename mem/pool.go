package mem

import (
	"unsafe"

	"github.com/daktlib/memkit/internal/bounds"
)

// Free-list link values stored in Pool.next. Non-negative entries are the
// index of the next free block.
const (
	freeListEnd int32 = -1 // terminates the free list
	blockLive   int32 = -2 // block is currently allocated
)

// minBlockSize matches the width of the intrusive free-list node the classic
// pointer-threaded design embeds in each block. Block sizes are widened to
// at least this so the two layouts stay interchangeable on disk and in
// benchmarks.
const minBlockSize = 8

// Pool is a fixed-block allocator over one contiguous region of
// blockSize * blockCount bytes. The free list is threaded through a side
// index array rather than through the blocks' raw bytes, which keeps
// allocate and deallocate O(1) while making free-list corruption
// impossible from ordinary slice writes.
//
// Free blocks are reused in LIFO order. Callers must not depend on any
// particular allocation order beyond that.
//
// A Pool must not be copied after first use and is not safe for concurrent
// use.
type Pool struct {
	region     []byte
	next       []int32 // per-block free-list links
	freeHead   int32
	blockSize  int
	blockCount int
	freeCount  int
}

// NewPool returns a pool of blockCount blocks of blockSize bytes each.
// blockSize is widened to at least minBlockSize. Panics if either dimension
// is not positive or the region size overflows.
func NewPool(blockSize, blockCount int) *Pool {
	if blockSize <= 0 || blockCount <= 0 {
		panic("mem: pool dimensions must be positive")
	}
	if blockSize < minBlockSize {
		blockSize = minBlockSize
	}
	regionSize, ok := bounds.Mul(blockSize, blockCount)
	if !ok {
		panic("mem: pool region size overflows")
	}
	p := &Pool{
		region:     make([]byte, regionSize),
		next:       make([]int32, blockCount),
		freeHead:   freeListEnd,
		blockSize:  blockSize,
		blockCount: blockCount,
		freeCount:  blockCount,
	}
	// Push every block onto the head, leaving the highest-index block first.
	for i := 0; i < blockCount; i++ {
		p.next[i] = p.freeHead
		p.freeHead = int32(i)
	}
	return p
}

// Allocate pops the free-list head in O(1). alignment is validated but
// otherwise ignored: every block shares the region's natural alignment.
// Fails with ErrBlockTooLarge when size exceeds the fixed block size and
// ErrPoolExhausted when no block is free.
func (p *Pool) Allocate(size, alignment int) ([]byte, error) {
	checkAlignment(alignment)
	if size == 0 {
		return nil, nil
	}
	if size < 0 {
		panic("mem: negative allocation size")
	}
	if size > p.blockSize {
		return nil, ErrBlockTooLarge
	}
	if p.freeHead == freeListEnd {
		return nil, ErrPoolExhausted
	}
	i := p.freeHead
	p.freeHead = p.next[i]
	p.next[i] = blockLive
	p.freeCount--
	off := int(i) * p.blockSize
	// Length is the requested size; capacity is the whole block so
	// Reallocate can extend in place up to blockSize.
	return p.region[off : off+size : off+p.blockSize], nil
}

// Deallocate pushes a block back onto the free-list head in O(1). The block
// must have been issued by this pool: foreign or misaligned pointers and
// double frees panic. The slice length is accepted without being validated
// against the originally requested size; a zero-length re-slice still
// carries the block's address and frees it. Only nil is a no-op.
func (p *Pool) Deallocate(b []byte) {
	if b == nil {
		return
	}
	i := p.blockIndex(b)
	if p.next[i] != blockLive {
		panic("mem: pool double free")
	}
	p.next[i] = p.freeHead
	p.freeHead = i
	p.freeCount++
}

// Reallocate never moves: block size is fixed, so a request within
// blockSize returns the same block truncated or extended in place, and a
// larger request fails with ErrBlockTooLarge.
func (p *Pool) Reallocate(b []byte, newSize, alignment int) ([]byte, error) {
	checkAlignment(alignment)
	if newSize == 0 {
		p.Deallocate(b)
		return nil, nil
	}
	if b == nil {
		return p.Allocate(newSize, alignment)
	}
	if newSize > p.blockSize {
		return nil, ErrBlockTooLarge
	}
	return b[:newSize], nil
}

// BlockSize returns the fixed block size (after widening).
func (p *Pool) BlockSize() int {
	return p.blockSize
}

// BlockCount returns the total number of blocks.
func (p *Pool) BlockCount() int {
	return p.blockCount
}

// FreeCount returns the number of blocks currently on the free list.
func (p *Pool) FreeCount() int {
	return p.freeCount
}

// blockIndex maps a block slice back to its index by address offset into
// the region. Panics when b was not issued by this pool.
func (p *Pool) blockIndex(b []byte) int32 {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(p.region)))
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	if addr < base || addr >= base+uintptr(len(p.region)) {
		panic("mem: pointer does not belong to this pool")
	}
	off := int(addr - base)
	if off%p.blockSize != 0 {
		panic("mem: pointer is not block-aligned")
	}
	return int32(off / p.blockSize)
}

// Compile-time interface check
var _ Allocator = (*Pool)(nil)
