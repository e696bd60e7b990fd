package clique

import "github.com/gmsgo/gms/csr"

// Verify counts k-cliques in g by brute-force combinatorial search,
// independent of and structurally simpler than Kernel: it tries
// candidate vertex sets in increasing order and checks pairwise adjacency
// directly, with no ranking, subgraph arrays, or recursion-by-level. It
// is only fast enough for the small graphs exercised by tests, where it
// serves to cross-check the parallel drivers' counts. g is expected to
// be the plain undirected graph, not a direction-induced one.
func Verify(g *csr.Graph, k int) uint64 {
	n := g.NumNodes()
	if k <= 0 {
		return 0
	}
	if k == 1 {
		return uint64(n)
	}

	var count uint64
	clique := make([]csr.NodeId, 0, k)
	var extend func(start int)
	extend = func(start int) {
		if len(clique) == k {
			count++
			return
		}
		for v := start; v < n; v++ {
			candidate := csr.NodeId(v)
			adjacent := true
			for _, u := range clique {
				if !g.HasEdge(u, candidate) {
					adjacent = false
					break
				}
			}
			if !adjacent {
				continue
			}
			clique = append(clique, candidate)
			extend(v + 1)
			clique = clique[:len(clique)-1]
		}
	}
	extend(0)
	return count
}
