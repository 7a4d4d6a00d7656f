//go:build !linux && !darwin

package mem

import (
	"os"

	"github.com/daktlib/memkit/internal/bounds"
)

// NewArenaPages returns an arena of numPages pages of heap memory on
// platforms without the mmap path. Close is a no-op.
func NewArenaPages(numPages int) (*Arena, error) {
	if numPages <= 0 {
		return nil, ErrRegionSize
	}
	size, ok := bounds.Mul(numPages, os.Getpagesize())
	if !ok {
		return nil, ErrRegionSize
	}
	return &Arena{region: make([]byte, size)}, nil
}
