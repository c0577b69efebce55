// Package cmd provides the command-line interface for memblock.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/sarchlab/memblock/meminfo"
	"github.com/sarchlab/memblock/reserve"
	"github.com/spf13/cobra"
)

type runner struct {
	stats     meminfo.Reader
	allocator reserve.Allocator
	rss       meminfo.RSSReader
	sleep     func(time.Duration)
}

func newSystemRunner() *runner {
	r := &runner{
		stats:     meminfo.NewSystemReader(),
		allocator: reserve.NewAllocator(),
		sleep:     time.Sleep,
	}

	proc, err := meminfo.NewProcessReader()
	if err != nil {
		log.Printf("resident set size unavailable: %v", err)
	} else {
		r.rss = proc
	}

	return r
}

func newRootCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "memblock [chunks_mib] [sleep_seconds]",
		Short: "Block OS memory to simulate a smaller machine.",
		Long: `memblock reserves the requested number of 1 MiB chunks, ` +
			`stopping early when less than 100 MiB is free or an allocation ` +
			`fails, then holds the memory for sleep_seconds (default 30) ` +
			`before exiting. Do not run this in production.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			r.run(cmd.OutOrStdout(), args)
		},
	}
}

func (r *runner) run(out io.Writer, args []string) {
	chunks, sleep := parseArgs(args)

	r.printStats(out)

	fmt.Fprintf(out, "Attempting to reserve %d MiB of memory\n", chunks)

	reserver := reserve.MakeBuilder().
		WithReader(r.stats).
		WithAllocator(r.allocator).
		WithPrinter(reserve.NewWriterPrinter(out)).
		Build()
	reserver.Reserve(chunks)

	r.printStats(out)
	r.printSummary(out, reserver.Progress())

	fmt.Fprintf(out, "Sleeping for %d seconds\n", int64(sleep/time.Second))
	r.sleep(sleep)

	// Chunks allocated from the Go heap must outlive the sleep.
	runtime.KeepAlive(reserver)
}

func (r *runner) printStats(out io.Writer) {
	stats, err := r.stats.Read()
	if err != nil {
		log.Printf("cannot read memory statistics: %v", err)
		return
	}

	fmt.Fprintln(out, meminfo.Format(stats))
}

func (r *runner) printSummary(out io.Writer, p *reserve.Progress) {
	finished, total := p.Snapshot()
	summary := fmt.Sprintf("Run %s: reserved %d of %d MiB", p.ID, finished, total)

	if r.rss != nil {
		rss, err := r.rss.RSS()
		if err != nil {
			log.Printf("cannot read resident set size: %v", err)
		} else {
			summary += fmt.Sprintf(", resident set: %d MiB", rss/meminfo.MiB)
		}
	}

	fmt.Fprintln(out, summary)
}

// Execute runs the memblock command against the host's memory.
func Execute() {
	rootCmd := newRootCmd(newSystemRunner())

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
