// Package gen provides synthetic graph generators for the benchmark
// harness: Uniform is the classic Erdős–Rényi/Gilbert G(n,p) model,
// Kronecker is the recursive R-MAT-style generator used by the GAP
// benchmark suite and graph500 to produce realistic power-law degree
// distributions.
package gen

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/prng"
	"github.com/gmsgo/gms/internal/workers"
)

// Uniform constructs an undirected G(n, p) graph: every one of the
// (n choose 2) possible edges is present independently with probability
// p. Rather than flipping a coin per candidate pair (O(n^2)), it uses
// Batagelj and Brandes' skip-ahead construction: the gaps between
// consecutive included pairs in the (v, w) enumeration follow a geometric
// distribution, so the whole graph is built in O(n + m) expected time.
func Uniform(n int, p float64, baseSeed uint64) *csr.Graph {
	b := csr.NewBuilder(n, false, workers.DefaultConfig())
	if p <= 0 || n < 2 {
		return b.Build()
	}
	if p >= 1 {
		for v := 0; v < n; v++ {
			for w := v + 1; w < n; w++ {
				b.AddEdge(csr.NodeId(v), csr.NodeId(w))
			}
		}
		return b.Build()
	}

	r := prng.Source(baseSeed, 0, 0)
	lp := math.Log(1 - p)

	v, w := 1, -1
	for v < n {
		w += 1 + int(math.Log(1-r.Float64())/lp)
		for w >= v && v < n {
			w -= v
			v++
		}
		if v < n {
			b.AddEdge(csr.NodeId(w), csr.NodeId(v))
		}
	}
	return b.Build()
}

// rmatParams are the classic graph500/GAP quadrant probabilities:
// heavier mass on the (A) quadrant produces the skewed,
// power-law-like degree distribution real-world graphs exhibit.
const (
	rmatA = 0.57
	rmatB = 0.19
	rmatC = 0.19
	rmatD = 1 - rmatA - rmatB - rmatC
)

// Kronecker builds a directed-then-symmetrized graph on 2^scale vertices
// with approximately 2^scale*edgeFactor edges, via the recursive
// quadrant-subdivision (R-MAT) process: each edge's endpoints are chosen
// bit by bit, descending scale times through a 2x2 adjacency-matrix
// quadrant chosen with probabilities (rmatA, rmatB, rmatC, rmatD), then
// both endpoints are passed through a random permutation to avoid the
// raw recursion correlating vertex ID with degree.
func Kronecker(scale, edgeFactor int, baseSeed uint64) *csr.Graph {
	n := 1 << uint(scale)
	m := n * edgeFactor

	r := prng.Source(baseSeed, 0, 0)
	perm := r.Perm(n)

	b := csr.NewBuilder(n, false, workers.DefaultConfig())
	for i := 0; i < m; i++ {
		u, v := rmatEdge(scale, r)
		b.AddEdge(csr.NodeId(perm[u]), csr.NodeId(perm[v]))
	}
	return b.Build()
}

// rmatEdge picks one edge's endpoints by descending scale levels of the
// quadrant subdivision.
func rmatEdge(scale int, r *rand.Rand) (u, v int) {
	for level := 0; level < scale; level++ {
		quadU, quadV := rmatQuadrant(r)
		u = (u << 1) | quadU
		v = (v << 1) | quadV
	}
	return u, v
}

// rmatQuadrant samples one (row, col) bit pair from the A/B/C/D quadrant
// distribution.
func rmatQuadrant(r *rand.Rand) (row, col int) {
	x := r.Float64()
	switch {
	case x < rmatA:
		return 0, 0
	case x < rmatA+rmatB:
		return 0, 1
	case x < rmatA+rmatB+rmatC:
		return 1, 0
	default:
		return 1, 1
	}
}
