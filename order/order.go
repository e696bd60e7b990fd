// Package order computes vertex orderings — identity, degree, exact and
// approximate degeneracy — and the direction inducer that turns an
// ordering into a directed CSR graph for the downstream clique and
// coloring kernels.
package order

import (
	"sort"

	"github.com/gmsgo/gms/csr"
)

// Ranking carries a vertex ordering in both presentations: Order[i] is
// the vertex placed at position i, Rank[v] is the position of vertex v.
// Every constructor below fills in both; Invert rebuilds one from the
// other.
type Ranking struct {
	Order []csr.NodeId
	Rank  []int32
}

// Invert returns a new Ranking for the same ordering with both
// presentations freshly built: Rank is recomputed from Order when Order
// is set, otherwise Order is rebuilt from Rank. Calling Invert twice
// returns to a Ranking equal to the original (the §8.2 round-trip law).
func (r Ranking) Invert() Ranking {
	n := len(r.Order)
	if n == 0 {
		n = len(r.Rank)
	}
	order := make([]csr.NodeId, n)
	rank := make([]int32, n)
	if r.Order != nil {
		copy(order, r.Order)
		for pos, v := range order {
			rank[v] = int32(pos)
		}
	} else {
		for v, pos := range r.Rank {
			order[pos] = csr.NodeId(v)
			rank[v] = pos
		}
	}
	return Ranking{Order: order, Rank: rank}
}

// Identity returns the ranking where vertex v is placed at position v.
func Identity(n int) Ranking {
	order := make([]csr.NodeId, n)
	rank := make([]int32, n)
	for v := 0; v < n; v++ {
		order[v] = csr.NodeId(v)
		rank[v] = int32(v)
	}
	return Ranking{Order: order, Rank: rank}
}

// ByDegree returns vertices ordered by descending out-degree, ties
// broken by ascending vertex ID. It is both a usable ordering on its own
// and the correctness floor that approximate-degeneracy orderings are
// checked against (an approximate ordering's induced core number must
// not exceed this ordering's).
func ByDegree(g *csr.Graph) Ranking {
	n := g.NumNodes()
	order := make([]csr.NodeId, n)
	for v := 0; v < n; v++ {
		order[v] = csr.NodeId(v)
	}
	sort.Slice(order, func(i, j int) bool {
		di, dj := g.OutDegree(order[i]), g.OutDegree(order[j])
		if di != dj {
			return di > dj
		}
		return order[i] < order[j]
	})
	rank := make([]int32, n)
	for pos, v := range order {
		rank[v] = int32(pos)
	}
	return Ranking{Order: order, Rank: rank}
}

// Direct builds a directed csr.Graph from an undirected g and a
// ranking, keeping only edges u -> v with rank[u] < rank[v]. Neighbor
// lists remain sorted ascending since they are a filtered subsequence of
// g's own sorted neighborhoods.
func Direct(g *csr.Graph, ranking Ranking) *csr.Graph {
	n := g.NumNodes()
	rank := ranking.Rank

	degree := make([]int64, n)
	for v := 0; v < n; v++ {
		for _, w := range g.OutNeigh(csr.NodeId(v)) {
			if rank[v] < rank[w] {
				degree[v]++
			}
		}
	}

	offsets := make([]int64, n+1)
	for v := 0; v < n; v++ {
		offsets[v+1] = offsets[v] + degree[v]
	}
	neighbors := make([]csr.NodeId, offsets[n])
	cursor := append([]int64(nil), offsets[:n]...)
	for v := 0; v < n; v++ {
		for _, w := range g.OutNeigh(csr.NodeId(v)) {
			if rank[v] < rank[w] {
				neighbors[cursor[v]] = w
				cursor[v]++
			}
		}
	}
	return csr.FromSortedCSR(n, offsets, neighbors, true)
}

// CoreNumber returns the core number induced by ranking: the maximum,
// over all prefixes of the ordering, of the number of later-ranked
// neighbors a vertex retains at the moment it is "peeled" in rank order.
// This equals the degeneracy exactly when ranking is Degeneracy's exact
// Matula–Beck output, and upper-bounds the true degeneracy for any valid
// ordering, which is what makes it usable as a verifier.
func CoreNumber(g *csr.Graph, ranking Ranking) int {
	rank := ranking.Rank
	maxRemaining := 0
	for v := 0; v < g.NumNodes(); v++ {
		remaining := 0
		for _, w := range g.OutNeigh(csr.NodeId(v)) {
			if rank[w] > rank[v] {
				remaining++
			}
		}
		if remaining > maxRemaining {
			maxRemaining = remaining
		}
	}
	return maxRemaining
}
