//go:build !linux && !darwin

package reserve

// NewAllocator returns the default allocator of the platform.
func NewAllocator() Allocator {
	return HeapAllocator{}
}
