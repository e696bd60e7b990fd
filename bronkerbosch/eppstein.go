package bronkerbosch

import (
	"sync"
	"sync/atomic"

	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/workers"
	"github.com/gmsgo/gms/order"
	"github.com/gmsgo/gms/set"
	"github.com/gmsgo/gms/setgraph"
)

// EppsteinConfig tunes the parallel degeneracy-ordered driver.
type EppsteinConfig struct {
	Kind    set.Kind
	Workers workers.Config
	// Collect, when true, retains every emitted clique (guarded by a
	// mutex) rather than only incrementing the atomic counter.
	Collect bool
}

// DefaultEppsteinConfig returns the default Eppstein configuration.
func DefaultEppsteinConfig() EppsteinConfig {
	return EppsteinConfig{Kind: set.Sorted, Workers: workers.DefaultConfig()}
}

// EppsteinResult is the outcome of a parallel Eppstein run.
type EppsteinResult struct {
	Count   int64
	Cliques [][]csr.NodeId // nil unless cfg.Collect
}

// Eppstein enumerates every maximal clique of the undirected graph g by
// running one independent top-level Tomita expansion per vertex v, each
// seeded from v's degeneracy-ranking split of N(v) into "later" (cand)
// and "earlier" (fini) neighbors, dispatched across workers. Each task
// is fully independent: the only shared state is an atomic clique
// counter and, when cfg.Collect is set, a mutex-guarded collector.
func Eppstein(g *csr.Graph, ranking order.Ranking, cfg EppsteinConfig) EppsteinResult {
	sg := setgraph.FromCSR(g, cfg.Kind)
	rank := ranking.Rank

	var count atomic.Int64
	var mu sync.Mutex
	var cliques [][]csr.NodeId

	workers.ParallelForEach(cfg.Workers, g.NumNodes(), func(i int) {
		v := csr.NodeId(i)
		expandGlobal(sg, rank, v, sg[v].Iter(), cfg.Kind, cfg.Collect, &count, &mu, &cliques)
	})

	return EppsteinResult{Count: count.Load(), Cliques: cliques}
}
