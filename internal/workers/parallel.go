// Package workers provides the bulk-synchronous, dynamically chunked
// parallel-for primitive used by every kernel in this module, plus the
// single process-wide thread-count configuration knob described in the
// concurrency model.
//
// The pattern is grounded on the worker-pool shape used elsewhere in the
// example corpus for CPU-bound fan-out: a bounded errgroup.Group pulling
// work off a shared, atomically-advanced cursor, rather than handing each
// goroutine a fixed static slice (which starves fast goroutines when work
// is unevenly sized, e.g. per-vertex neighborhoods in a power-law graph).
package workers

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Config is the single process-wide parallelism parameter threaded
// through every kernel entry point in this module.
type Config struct {
	// Threads is the number of worker goroutines to use. Zero or
	// negative means runtime.GOMAXPROCS(0).
	Threads int
}

// DefaultConfig returns a Config defaulting to hardware concurrency.
func DefaultConfig() Config {
	return Config{Threads: runtime.GOMAXPROCS(0)}
}

func (c Config) threads() int {
	if c.Threads <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Threads
}

// Concurrency returns c's effective worker-goroutine count, resolving a
// zero-or-negative Threads field to runtime.GOMAXPROCS(0). Callers that
// need a bound for their own fan-out primitive (e.g. an errgroup.SetLimit
// outside of ParallelFor/Go) use this instead of reading Threads directly.
func (c Config) Concurrency() int { return c.threads() }

// DefaultChunk is the dynamic scheduling chunk size used when callers do
// not have a more specific size in mind, mirroring the
// schedule(dynamic, 16) clauses throughout the reference kernels.
const DefaultChunk = 16

// ParallelFor partitions [0, n) into chunks of size chunk and runs fn on
// each chunk concurrently across cfg's worker goroutines, dynamically
// handing out chunks as goroutines finish (work-stealing via a shared
// cursor) rather than statically pre-assigning ranges. It blocks until
// every chunk has been processed. A panic in fn is not recovered: it
// happens on a worker goroutine and ends the program.
func ParallelFor(cfg Config, n, chunk int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if chunk <= 0 {
		chunk = DefaultChunk
	}
	threads := cfg.threads()
	if threads <= 1 || n <= chunk {
		fn(0, n)
		return
	}
	if threads > (n+chunk-1)/chunk {
		threads = (n + chunk - 1) / chunk
	}

	var cursor atomic.Int64
	var g errgroup.Group
	g.SetLimit(threads)
	for i := 0; i < threads; i++ {
		g.Go(func() error {
			for {
				lo := int(cursor.Add(int64(chunk))) - chunk
				if lo >= n {
					return nil
				}
				hi := lo + chunk
				if hi > n {
					hi = n
				}
				fn(lo, hi)
			}
		})
	}
	_ = g.Wait() // fn never returns an error; the group is used purely for bounded fan-out.
}

// ParallelForEach is a convenience wrapper around ParallelFor that calls
// fn once per index rather than once per chunk range.
func ParallelForEach(cfg Config, n int, fn func(i int)) {
	ParallelFor(cfg, n, DefaultChunk, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i)
		}
	})
}

// Go runs each of tasks concurrently, bounded to cfg's thread count, and
// waits for all of them to finish. It suits small, fixed-size fan-outs
// where ParallelFor's chunk-cursor model does not apply; no kernel in
// this module currently calls it.
func Go(cfg Config, tasks []func()) {
	threads := cfg.threads()
	var g errgroup.Group
	g.SetLimit(threads)
	for _, t := range tasks {
		t := t
		g.Go(func() error {
			t()
			return nil
		})
	}
	_ = g.Wait()
}
