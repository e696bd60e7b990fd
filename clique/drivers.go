package clique

import (
	"sync/atomic"

	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/workers"
	"golang.org/x/sync/errgroup"
)

// DriverConfig tunes a clique-counting driver.
type DriverConfig struct {
	Workers workers.Config
}

// DefaultDriverConfig returns the default driver configuration.
func DefaultDriverConfig() DriverConfig {
	return DriverConfig{Workers: workers.DefaultConfig()}
}

// CountNodeParallel counts k-cliques in g by splitting the outer vertex
// loop of the node-parallel driver into dynamic chunks, giving each
// chunk its own Kernel so no two goroutines ever share a label/subGraph/
// subDegree array.
func CountNodeParallel(g *csr.Graph, k int, cfg DriverConfig) uint64 {
	var total atomic.Uint64
	workers.ParallelFor(cfg.Workers, g.NumNodes(), workers.DefaultChunk, func(lo, hi int) {
		roots := make([]csr.NodeId, hi-lo)
		for i := range roots {
			roots[i] = csr.NodeId(lo + i)
		}
		kn := NewKernel(g, k)
		total.Add(kn.countFrom(roots))
	})
	return total.Load()
}

// edgeEndpoints flattens every directed edge of g, in CSR order, into
// two parallel slices.
func edgeEndpoints(g *csr.Graph) (src, dst []csr.NodeId) {
	n := g.NumNodes()
	m := int(g.Offsets[n])
	dst = append([]csr.NodeId(nil), g.Neighbors[:m]...)
	src = make([]csr.NodeId, m)
	for v := 0; v < n; v++ {
		for i := g.Offsets[v]; i < g.Offsets[v+1]; i++ {
			src[i] = csr.NodeId(v)
		}
	}
	return src, dst
}

// parallelCountEdges dispatches threads goroutines, each owning a single
// Kernel reused across every unit of work it pulls off a shared
// atomically-advanced cursor over the m edges, granularity units at a
// time; granularity=1 gives genuinely per-edge task scheduling, a larger
// granularity batches edges the way workers.ParallelFor does.
func parallelCountEdges(g *csr.Graph, k int, cfg DriverConfig, src, dst []csr.NodeId, granularity int) uint64 {
	m := len(src)
	if m == 0 {
		return 0
	}
	threads := cfg.Workers.Concurrency()
	if units := (m + granularity - 1) / granularity; threads > units {
		threads = units
	}
	if threads < 1 {
		threads = 1
	}

	var cursor atomic.Int64
	var total atomic.Uint64
	var grp errgroup.Group
	grp.SetLimit(threads)
	for t := 0; t < threads; t++ {
		grp.Go(func() error {
			kn := NewKernel(g, k)
			var sum uint64
			for {
				lo := int(cursor.Add(int64(granularity))) - granularity
				if lo >= m {
					break
				}
				hi := lo + granularity
				if hi > m {
					hi = m
				}
				for i := lo; i < hi; i++ {
					sum += kn.countEdge(src[i], dst[i])
				}
			}
			total.Add(sum)
			return nil
		})
	}
	_ = grp.Wait()
	return total.Load()
}

// CountEdgeParallel counts k-cliques in g by splitting the outer
// directed-edge loop into dynamically scheduled batches: each edge
// induces a smaller common-neighbor subgraph and recurses from level
// k-2.
func CountEdgeParallel(g *csr.Graph, k int, cfg DriverConfig) uint64 {
	src, dst := edgeEndpoints(g)
	return parallelCountEdges(g, k, cfg, src, dst, workers.DefaultChunk)
}

// CountEdgeTask counts k-cliques the same way as CountEdgeParallel, but
// with each (u,v) edge scheduled as its own unit of dynamically
// distributed work rather than a batch of edges — concurrency is still
// capped at cfg.Workers's effective thread count, so this is cooperative
// scheduling over a shared cursor, not one goroutine per edge.
func CountEdgeTask(g *csr.Graph, k int, cfg DriverConfig) uint64 {
	src, dst := edgeEndpoints(g)
	return parallelCountEdges(g, k, cfg, src, dst, 1)
}
