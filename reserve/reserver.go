// Package reserve holds on to memory in fixed-size chunks until the host runs
// low on free memory.
package reserve

import (
	"fmt"
	"io"
	"log"

	"github.com/sarchlab/memblock/meminfo"
)

const (
	// ChunkSize is the size of each reserved block.
	ChunkSize = meminfo.MiB

	// DefaultThreshold is the free memory below which reservation stops.
	DefaultThreshold = 100 * meminfo.MiB
)

// StopReason tells why a reservation run ended.
type StopReason int

// The reasons a reservation run can end.
const (
	Completed StopReason = iota
	LowMemory
	AllocationFailed
	StatsFailed
)

func (r StopReason) String() string {
	switch r {
	case Completed:
		return "completed"
	case LowMemory:
		return "low memory"
	case AllocationFailed:
		return "allocation failed"
	case StatsFailed:
		return "stats failed"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Result summarizes a reservation run.
type Result struct {
	Requested int
	Reserved  int
	Reason    StopReason
	Err       error
}

// A Printer receives the messages emitted while reserving.
type Printer interface {
	Printf(format string, args ...any)
}

type writerPrinter struct {
	w io.Writer
}

// NewWriterPrinter creates a Printer that writes each message as one line.
func NewWriterPrinter(w io.Writer) Printer {
	return writerPrinter{w: w}
}

func (p writerPrinter) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

type discardPrinter struct{}

func (discardPrinter) Printf(string, ...any) {}

// Reserver allocates chunks and keeps them reachable for the lifetime of the
// process.
type Reserver struct {
	reader    meminfo.Reader
	allocator Allocator
	printer   Printer
	threshold uint64
	chunkSize int

	chunks   [][]byte
	progress *Progress
}

// Builder can build Reservers.
type Builder struct {
	reader    meminfo.Reader
	allocator Allocator
	printer   Printer
	threshold uint64
	chunkSize int
}

// MakeBuilder returns a Builder with 1 MiB chunks and a 100 MiB floor.
func MakeBuilder() Builder {
	return Builder{
		threshold: DefaultThreshold,
		chunkSize: ChunkSize,
	}
}

// WithReader sets the source of the free memory statistics.
func (b Builder) WithReader(r meminfo.Reader) Builder {
	b.reader = r
	return b
}

// WithAllocator sets the allocator used for each chunk.
func (b Builder) WithAllocator(a Allocator) Builder {
	b.allocator = a
	return b
}

// WithPrinter sets where stop messages are printed.
func (b Builder) WithPrinter(p Printer) Builder {
	b.printer = p
	return b
}

// WithThreshold sets the free memory floor, in bytes.
func (b Builder) WithThreshold(threshold uint64) Builder {
	b.threshold = threshold
	return b
}

// WithChunkSize sets the size of each chunk, in bytes.
func (b Builder) WithChunkSize(size int) Builder {
	b.chunkSize = size
	return b
}

// Build creates a new Reserver.
func (b Builder) Build() *Reserver {
	if b.reader == nil {
		log.Panic("a memory statistics reader is required")
	}

	if b.chunkSize <= 0 {
		log.Panicf("invalid chunk size %d", b.chunkSize)
	}

	r := &Reserver{
		reader:    b.reader,
		allocator: b.allocator,
		printer:   b.printer,
		threshold: b.threshold,
		chunkSize: b.chunkSize,
	}

	if r.allocator == nil {
		r.allocator = NewAllocator()
	}

	if r.printer == nil {
		r.printer = discardPrinter{}
	}

	return r
}

// Reserve tries to reserve n chunks. It stops at the first iteration that
// finds free memory below the threshold or fails to allocate. Chunks reserved
// before stopping stay held.
func (r *Reserver) Reserve(n int) Result {
	res := Result{Requested: n}
	if n < 0 {
		n = 0
	}

	r.progress = NewProgress("reserve", uint64(n))

	for i := 0; i < n; i++ {
		stats, err := r.reader.Read()
		if err != nil {
			r.printer.Printf("%d - Reading memory statistics failed: %v", i, err)
			res.Reason = StatsFailed
			res.Err = err

			return res
		}

		if stats.Free < r.threshold {
			r.printer.Printf("%d - Less than %dMB available",
				i, r.threshold/meminfo.MiB)
			res.Reason = LowMemory

			return res
		}

		chunk, err := r.allocator.Allocate(r.chunkSize)
		if err != nil {
			r.printer.Printf("%d - Allocation failed", i)
			res.Reason = AllocationFailed
			res.Err = err

			return res
		}

		commit(chunk)
		r.chunks = append(r.chunks, chunk)
		r.progress.IncrementFinished(1)
		res.Reserved++
	}

	res.Reason = Completed

	return res
}

// commit writes every byte of the chunk so the OS backs it with physical
// pages.
func commit(chunk []byte) {
	for i := range chunk {
		chunk[i] = 0
	}
}

// Held returns the number of bytes retained by the Reserver.
func (r *Reserver) Held() uint64 {
	var total uint64
	for _, c := range r.chunks {
		total += uint64(len(c))
	}

	return total
}

// Progress returns the tracker of the latest run, or nil before the first
// run.
func (r *Reserver) Progress() *Progress {
	return r.progress
}
