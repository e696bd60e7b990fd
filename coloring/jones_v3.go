package coloring

import (
	"sync"
	"sync/atomic"

	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/workers"
)

// JonesV3Config tunes the JonesV3 driver.
type JonesV3Config struct {
	Workers  workers.Config
	BaseSeed uint64
}

// DefaultJonesV3Config returns the default configuration.
func DefaultJonesV3Config() JonesV3Config {
	return JonesV3Config{Workers: workers.DefaultConfig(), BaseSeed: 1}
}

// JonesV3 colors g by parallel descent on the predecessor/successor DAG
// induced by a random priority ρ: every vertex with zero pending
// predecessors is ready immediately, and coloring a vertex decrements
// each successor's pending-predecessor count, pushing it onto a shared
// ready queue exactly when that count reaches zero. A fixed pool of
// cfg.Workers.Concurrency() goroutines drains the queue — not a
// recursive fan-out through a concurrency-limited errgroup, which would
// deadlock as soon as that many goroutines are simultaneously blocked
// trying to spawn their own successors with no free slot left to run
// them.
func JonesV3(g *csr.Graph, cfg JonesV3Config) Result {
	res := newResult(g)
	n := g.NumNodes()
	if n == 0 {
		return res
	}
	prio := priority(n, cfg.BaseSeed)
	pred, succ, pendingInit := jonesDAG(g, prio, cfg.Workers)

	pending := make([]atomic.Int32, n)
	for v := range pendingInit {
		pending[v].Store(pendingInit[v])
	}

	// Buffered to n: every vertex is ever pushed exactly once (at start,
	// if already ready, or when its last predecessor decrements it to
	// zero), so no send ever blocks.
	ready := make(chan csr.NodeId, n)
	var remaining atomic.Int64
	remaining.Store(int64(n))

	colorOne := func(v csr.NodeId) {
		res.Colors[v] = jonesColor(pred[v], res.Colors, res.Delta)
		for _, u := range succ[v] {
			if pending[u].Add(-1) == 0 {
				ready <- u
			}
		}
		// remaining reaches zero only once every vertex, including
		// whatever this one just enqueued, has been accounted for, so
		// closing here can never race a later send.
		if remaining.Add(-1) == 0 {
			close(ready)
		}
	}

	for v := 0; v < n; v++ {
		if len(pred[v]) == 0 {
			ready <- csr.NodeId(v)
		}
	}

	workersN := cfg.Workers.Concurrency()
	if workersN < 1 {
		workersN = 1
	}
	var wg sync.WaitGroup
	wg.Add(workersN)
	for i := 0; i < workersN; i++ {
		go func() {
			defer wg.Done()
			for v := range ready {
				colorOne(v)
			}
		}()
	}
	wg.Wait()
	return res
}
