//go:build linux || darwin

package mem

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/daktlib/memkit/internal/bounds"
)

// NewArenaPages returns an arena backed by an anonymous mmap region of
// numPages pages. The region starts on a page boundary, so every alignment
// up to the page size is satisfiable without padding, and large arenas stay
// out of the Go heap entirely. Close unmaps the region.
func NewArenaPages(numPages int) (*Arena, error) {
	if numPages <= 0 {
		return nil, ErrRegionSize
	}
	size, ok := bounds.Mul(numPages, os.Getpagesize())
	if !ok {
		return nil, ErrRegionSize
	}
	data, err := unix.Mmap(
		-1,
		0,
		size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON,
	)
	if err != nil {
		return nil, fmt.Errorf("mem: mmap %d pages: %w", numPages, err)
	}
	return &Arena{
		region:  data,
		release: func() error { return unix.Munmap(data) },
	}, nil
}
