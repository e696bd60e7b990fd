// Package csr provides an immutable compressed-sparse-row graph
// representation for large static undirected or directed graphs.
//
// A Graph stores all neighborhoods in two flat arrays, Offsets and
// Neighbors, so that a per-vertex neighborhood is a contiguous slice of
// Neighbors rather than a separately heap-allocated list. Graphs are
// built once by a Builder and are never mutated afterwards; all kernels
// in this module take a *Graph by reference and share it read-only
// across goroutines.
package csr

import "fmt"

// NodeId identifies a vertex. Valid IDs lie in [0, NumNodes).
type NodeId int32

// Graph is an immutable compressed-sparse-row adjacency structure.
//
// Offsets has length NumNodes+1. The neighbors of v are
// Neighbors[Offsets[v]:Offsets[v+1]], stored in strictly ascending order
// with no self-loops and no duplicates.
type Graph struct {
	directed  bool
	numNodes  int
	numEdges  int64
	Offsets   []int64
	Neighbors []NodeId
}

// NumNodes returns the number of vertices in the graph.
func (g *Graph) NumNodes() int { return g.numNodes }

// NumEdges returns the number of edges, counted once per undirected edge.
func (g *Graph) NumEdges() int64 { return g.numEdges }

// Directed reports whether g is a directed graph.
func (g *Graph) Directed() bool { return g.directed }

// OutDegree returns the out-degree of v.
func (g *Graph) OutDegree(v NodeId) int {
	return int(g.Offsets[v+1] - g.Offsets[v])
}

// OutNeigh returns the ascending-sorted out-neighborhood of v. The
// returned slice aliases g's backing array and must not be mutated.
func (g *Graph) OutNeigh(v NodeId) []NodeId {
	return g.Neighbors[g.Offsets[v]:g.Offsets[v+1]]
}

// InNeigh returns the in-neighborhood of v. For an undirected graph this
// is identical to OutNeigh. csr does not separately track a reverse CSR
// for directed graphs: every directed graph built by this package
// (via order.Direct) is only ever consumed in the out-neighbor direction
// by the kernels in this module.
func (g *Graph) InNeigh(v NodeId) []NodeId {
	if !g.directed {
		return g.OutNeigh(v)
	}
	panic("csr: InNeigh is not available for a directed graph")
}

// HasEdge reports whether there is an edge u->v. It runs in
// O(log OutDegree(u)) via binary search since neighborhoods are sorted.
func (g *Graph) HasEdge(u, v NodeId) bool {
	n := g.OutNeigh(u)
	lo, hi := 0, len(n)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case n[mid] == v:
			return true
		case n[mid] < v:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}

// FromSortedCSR wraps pre-built, already-sorted offsets/neighbors
// arrays into a Graph without re-validating or re-sorting them. Callers
// (order.Direct, ioedgelist.ReadSnapshot) must guarantee the sorted-
// neighborhood invariant themselves.
func FromSortedCSR(numNodes int, offsets []int64, neighbors []NodeId, directed bool) *Graph {
	numEdges := int64(len(neighbors))
	if !directed {
		numEdges /= 2
	}
	return &Graph{
		directed:  directed,
		numNodes:  numNodes,
		numEdges:  numEdges,
		Offsets:   offsets,
		Neighbors: neighbors,
	}
}

// MaxDegree returns the maximum out-degree (Δ) over all vertices.
func (g *Graph) MaxDegree() int {
	max := 0
	for v := 0; v < g.numNodes; v++ {
		if d := g.OutDegree(NodeId(v)); d > max {
			max = d
		}
	}
	return max
}

func (g *Graph) String() string {
	kind := "undirected"
	if g.directed {
		kind = "directed"
	}
	return fmt.Sprintf("csr.Graph{%s, n=%d, m=%d}", kind, g.numNodes, g.numEdges)
}
