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

// SubgraphConfig tunes the induced-subgraph Eppstein variant.
type SubgraphConfig struct {
	EppsteinConfig
	// Threshold is the |N(v)| size at or above which a vertex's top-level
	// expansion first materializes an induced local subgraph (members
	// relabeled to contiguous local IDs starting at 0) before recursing,
	// trading one upfront adjacency build for better cache locality
	// during the recursion itself.
	Threshold int
}

// DefaultSubgraphConfig returns the default configuration.
func DefaultSubgraphConfig() SubgraphConfig {
	return SubgraphConfig{EppsteinConfig: DefaultEppsteinConfig(), Threshold: 64}
}

// Subgraph enumerates every maximal clique of g exactly as Eppstein
// does — one independent top-level expansion per vertex, split by
// degeneracy ranking into cand/fini — except that a vertex whose
// neighborhood size reaches cfg.Threshold first builds a small induced
// subgraph over just {v} ∪ N(v) with locally-relabeled IDs, so the
// recursion's repeated Intersect/Difference calls run over compact
// local sets instead of indexing into the full global setgraph.Graph.
func Subgraph(g *csr.Graph, ranking order.Ranking, cfg SubgraphConfig) EppsteinResult {
	sg := setgraph.FromCSR(g, cfg.Kind)
	rank := ranking.Rank

	var count atomic.Int64
	var mu sync.Mutex
	var cliques [][]csr.NodeId

	workers.ParallelForEach(cfg.Workers, g.NumNodes(), func(i int) {
		v := csr.NodeId(i)
		neigh := sg[v].Iter()
		if len(neigh) < cfg.Threshold {
			expandGlobal(sg, rank, v, neigh, cfg.Kind, cfg.Collect, &count, &mu, &cliques)
			return
		}
		expandInduced(sg, rank, v, neigh, cfg, &count, &mu, &cliques)
	})

	return EppsteinResult{Count: count.Load(), Cliques: cliques}
}

// expandGlobal is Eppstein's per-vertex body, factored out so Subgraph
// can fall back to it under cfg.Threshold.
func expandGlobal(sg setgraph.Graph, rank []int32, v csr.NodeId, neigh []csr.NodeId, kind set.Kind, collect bool, count *atomic.Int64, mu *sync.Mutex, cliques *[][]csr.NodeId) {
	var laterIds, earlierIds []csr.NodeId
	for _, u := range neigh {
		if rank[u] > rank[v] {
			laterIds = append(laterIds, u)
		} else {
			earlierIds = append(earlierIds, u)
		}
	}
	cand := set.FromSlice(kind, laterIds)
	fini := set.FromSlice(kind, earlierIds)

	sink := func(q []csr.NodeId) {
		count.Add(1)
		if !collect {
			return
		}
		clique := append([]csr.NodeId{v}, q...)
		mu.Lock()
		*cliques = append(*cliques, clique)
		mu.Unlock()
	}
	expand(sg, cand, fini, nil, sink)
}

// expandInduced runs v's top-level expansion over a locally-relabeled
// induced subgraph of {v} ∪ N(v).
func expandInduced(sg setgraph.Graph, rank []int32, v csr.NodeId, neigh []csr.NodeId, cfg SubgraphConfig, count *atomic.Int64, mu *sync.Mutex, cliques *[][]csr.NodeId) {
	members := append([]csr.NodeId{v}, neigh...)
	localOf := make(map[csr.NodeId]csr.NodeId, len(members))
	for i, u := range members {
		localOf[u] = csr.NodeId(i)
	}

	local := make(setgraph.Graph, len(members))
	for i, u := range members {
		var localNeigh []csr.NodeId
		for _, w := range sg[u].Iter() {
			if lid, ok := localOf[w]; ok {
				localNeigh = append(localNeigh, lid)
			}
		}
		local[i] = set.FromSlice(cfg.Kind, localNeigh)
	}

	var laterLocal, earlierLocal []csr.NodeId
	for _, u := range neigh {
		lid := localOf[u]
		if rank[u] > rank[v] {
			laterLocal = append(laterLocal, lid)
		} else {
			earlierLocal = append(earlierLocal, lid)
		}
	}
	cand := set.FromSlice(cfg.Kind, laterLocal)
	fini := set.FromSlice(cfg.Kind, earlierLocal)

	sink := func(q []csr.NodeId) {
		count.Add(1)
		if !cfg.Collect {
			return
		}
		clique := make([]csr.NodeId, 0, len(q)+1)
		clique = append(clique, v)
		for _, lid := range q {
			clique = append(clique, members[lid])
		}
		mu.Lock()
		*cliques = append(*cliques, clique)
		mu.Unlock()
	}
	expand(local, cand, fini, nil, sink)
}
