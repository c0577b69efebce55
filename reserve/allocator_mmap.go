//go:build linux || darwin

package reserve

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MmapAllocator maps anonymous private memory outside of the Go heap. Unlike
// the heap, a failing mapping is reported as an error.
type MmapAllocator struct{}

// Allocate maps a new anonymous block of size bytes.
func (MmapAllocator) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("allocating %d bytes: %w", size, ErrInvalidChunkSize)
	}

	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mapping %d bytes: %w", size, err)
	}

	return buf, nil
}

// NewAllocator returns the default allocator of the platform.
func NewAllocator() Allocator {
	return MmapAllocator{}
}
