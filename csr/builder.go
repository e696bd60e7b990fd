package csr

import (
	"sort"

	"github.com/gmsgo/gms/internal/workers"
)

// Edge is a single input edge u->v (or, for an undirected Builder, an
// unordered pair {u, v}).
type Edge struct {
	U, V NodeId
}

// Builder accumulates edges and produces an immutable Graph. The zero
// value is not usable; use NewBuilder.
type Builder struct {
	numNodes  int
	directed  bool
	symmetric bool
	edges     []Edge
	cfg       workers.Config
}

// NewBuilder returns a Builder for a graph on numNodes vertices. If
// directed is false, every added edge is treated as undirected: Build
// will ensure u is in N(v) and v is in N(u).
func NewBuilder(numNodes int, directed bool, cfg workers.Config) *Builder {
	return &Builder{numNodes: numNodes, directed: directed, cfg: cfg}
}

// AddEdge appends an edge to the builder. Self-loops and duplicate
// edges are permitted here; Build removes them silently, matching the
// reader's "deduplicates and sorts silently" error-handling policy.
func (b *Builder) AddEdge(u, v NodeId) {
	if int(u) >= b.numNodes || int(v) >= b.numNodes || u < 0 || v < 0 {
		panic("csr: edge endpoint out of range")
	}
	b.edges = append(b.edges, Edge{u, v})
}

// Build constructs the immutable Graph from the accumulated edges:
//  1. count degrees per source vertex (symmetrizing first if undirected),
//  2. prefix-sum the degree counts into Offsets (sequentially),
//  3. scatter edges into a flat Neighbors array,
//  4. sort each neighborhood and remove self-loops and duplicates.
//
// Build may be called multiple times; each call recomputes the graph
// from the edges added so far.
func (b *Builder) Build() *Graph {
	n := b.numNodes
	var raw []Edge
	if b.directed {
		raw = b.edges
	} else {
		raw = make([]Edge, 0, 2*len(b.edges))
		for _, e := range b.edges {
			raw = append(raw, e, Edge{e.V, e.U})
		}
	}

	degree := make([]int64, n+1)
	for _, e := range raw {
		degree[e.U]++
	}
	offsets := make([]int64, n+1)
	var sum int64
	for v := 0; v < n; v++ {
		offsets[v] = sum
		sum += degree[v]
	}
	offsets[n] = sum

	neighbors := make([]NodeId, sum)
	cursor := make([]int64, n)
	copy(cursor, offsets[:n])
	for _, e := range raw {
		neighbors[cursor[e.U]] = e.V
		cursor[e.U]++
	}

	workers.ParallelForEach(b.cfg, n, func(v int) {
		lo, hi := offsets[v], offsets[v+1]
		nb := neighbors[lo:hi]
		sort.Slice(nb, func(i, j int) bool { return nb[i] < nb[j] })
	})

	finalOffsets := make([]int64, n+1)
	finalNeighbors := make([]NodeId, 0, sum)
	for v := 0; v < n; v++ {
		finalOffsets[v] = int64(len(finalNeighbors))
		lo, hi := offsets[v], offsets[v+1]
		var prev NodeId = -1
		for _, w := range neighbors[lo:hi] {
			if w == NodeId(v) || w == prev {
				continue
			}
			finalNeighbors = append(finalNeighbors, w)
			prev = w
		}
	}
	finalOffsets[n] = int64(len(finalNeighbors))

	var numEdges int64
	if b.directed {
		numEdges = int64(len(finalNeighbors))
	} else {
		numEdges = int64(len(finalNeighbors)) / 2
	}

	return &Graph{
		directed:  b.directed,
		numNodes:  n,
		numEdges:  numEdges,
		Offsets:   finalOffsets,
		Neighbors: finalNeighbors,
	}
}
