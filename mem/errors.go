package mem

import "errors"

var (
	// ErrArenaFull indicates the arena's fixed capacity cannot satisfy the
	// request. Arenas never fall back to the heap.
	ErrArenaFull = errors.New("mem: arena capacity exhausted")

	// ErrPoolExhausted indicates the pool's free list is empty.
	ErrPoolExhausted = errors.New("mem: pool has no free blocks")

	// ErrBlockTooLarge indicates a request exceeds the pool's fixed block size.
	ErrBlockTooLarge = errors.New("mem: request exceeds pool block size")

	// ErrRegionSize indicates a region size computation overflowed or was
	// otherwise unrepresentable.
	ErrRegionSize = errors.New("mem: region size out of range")
)
