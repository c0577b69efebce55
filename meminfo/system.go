package meminfo

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/mem"
	"github.com/shirou/gopsutil/process"
)

// SystemReader reads the memory counters of the operating system.
type SystemReader struct{}

// NewSystemReader creates a new SystemReader.
func NewSystemReader() *SystemReader {
	return &SystemReader{}
}

// Read returns the current free, shared, and buffer memory of the host.
func (r *SystemReader) Read() (Stats, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Stats{}, fmt.Errorf("reading virtual memory: %w", err)
	}

	return Stats{
		Free:    vm.Free,
		Shared:  vm.Shared,
		Buffers: vm.Buffers,
	}, nil
}

// ProcessReader reports the memory held by the current process.
type ProcessReader struct {
	proc *process.Process
}

// NewProcessReader creates a ProcessReader for the calling process.
func NewProcessReader() (*ProcessReader, error) {
	pid := os.Getpid()

	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return nil, fmt.Errorf("opening process %d: %w", pid, err)
	}

	return &ProcessReader{proc: proc}, nil
}

// RSS returns the resident set size of the process in bytes.
func (r *ProcessReader) RSS() (uint64, error) {
	info, err := r.proc.MemoryInfo()
	if err != nil {
		return 0, fmt.Errorf("reading process memory: %w", err)
	}

	return info.RSS, nil
}

var _ RSSReader = (*ProcessReader)(nil)
