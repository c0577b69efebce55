package reserve

import (
	"errors"
	"fmt"
)

// ErrInvalidChunkSize is returned when a chunk of non-positive size is
// requested.
var ErrInvalidChunkSize = errors.New("chunk size must be positive")

// An Allocator hands out blocks of memory that are never returned.
type Allocator interface {
	Allocate(size int) ([]byte, error)
}

// HeapAllocator allocates chunks from the Go heap. The Go runtime terminates
// the process when the heap cannot grow, so the only error it reports is an
// invalid size.
type HeapAllocator struct{}

// Allocate returns a new block of size bytes.
func (HeapAllocator) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("allocating %d bytes: %w", size, ErrInvalidChunkSize)
	}

	return make([]byte, size), nil
}
