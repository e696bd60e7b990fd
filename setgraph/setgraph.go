// Package setgraph adapts a csr.Graph into per-vertex set.Set
// neighborhoods, the representation the Bron–Kerbosch kernels operate
// on (the k-clique kernel works on csr directly): they need Intersect on
// neighborhoods, which CSR's flat slices do not expose directly.
package setgraph

import (
	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/workers"
	"github.com/gmsgo/gms/set"
)

// Graph is a vertex-indexed slice of adjacency sets, one per vertex of
// the underlying csr.Graph it was built from.
type Graph []set.Set

// FromCSR builds a Graph from g, materializing each vertex's out-
// neighborhood as a set.Set of the given Kind. The conversion runs in
// parallel across vertices since neighborhoods are independent.
func FromCSR(g *csr.Graph, kind set.Kind) Graph {
	out := make(Graph, g.NumNodes())
	workers.ParallelForEach(workers.DefaultConfig(), g.NumNodes(), func(i int) {
		out[i] = set.FromSlice(kind, g.OutNeigh(csr.NodeId(i)))
	})
	return out
}

// NumNodes reports the number of vertices.
func (g Graph) NumNodes() int { return len(g) }

// Degree reports |N(v)|.
func (g Graph) Degree(v csr.NodeId) int { return g[v].Cardinality() }

// HasEdge reports whether u and v are adjacent.
func (g Graph) HasEdge(u, v csr.NodeId) bool { return g[u].Contains(v) }

// CommonNeighborCount returns |N(u) ∩ N(v)| without materializing the
// intersection, delegating to the underlying Set's IntersectCount.
func (g Graph) CommonNeighborCount(u, v csr.NodeId) int {
	return g[u].IntersectCount(g[v])
}

// Induced returns the sub-neighborhood of v restricted to the vertex
// set restrict, i.e. N(v) ∩ restrict.
func (g Graph) Induced(v csr.NodeId, restrict set.Set) set.Set {
	return g[v].Intersect(restrict)
}
