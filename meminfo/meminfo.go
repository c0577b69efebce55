// Package meminfo queries the free memory of the host and the resident size
// of the current process.
package meminfo

import "fmt"

// MiB is the number of bytes in a mebibyte.
const MiB = 1024 * 1024

// Stats is a snapshot of the system memory counters, in bytes.
type Stats struct {
	Free    uint64
	Shared  uint64
	Buffers uint64
}

// MiB returns the free, shared, and buffer memory in whole mebibytes.
func (s Stats) MiB() (free, shared, buffers uint64) {
	return s.Free / MiB, s.Shared / MiB, s.Buffers / MiB
}

// A Reader can take snapshots of the system memory counters.
type Reader interface {
	Read() (Stats, error)
}

// Format renders the statistics as a single report line.
func Format(s Stats) string {
	free, shared, buffers := s.MiB()

	return fmt.Sprintf("Free memory: %d, Shared: %d, Buffers: %d",
		free, shared, buffers)
}

// An RSSReader reports the resident set size of a process, in bytes.
type RSSReader interface {
	RSS() (uint64, error)
}
