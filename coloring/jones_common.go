package coloring

import (
	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/prng"
	"github.com/gmsgo/gms/internal/workers"
)

// priority assigns each vertex a unique random priority via a
// Fisher–Yates shuffle seeded from baseSeed, giving the ρ(v) the
// Jones–Plassmann family of drivers orders its vertex DAG by.
func priority(n int, baseSeed uint64) []int32 {
	p := make([]int32, n)
	for i := range p {
		p[i] = int32(i)
	}
	rng := prng.Source(baseSeed, 0, 0)
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// jonesDAG splits each vertex's neighborhood into pred (neighbors with
// strictly higher priority, which must be colored before v) and succ
// (neighbors with lower-or-equal priority, for which v is itself a
// predecessor), plus the pending-predecessor counter the drivers decrement.
func jonesDAG(g *csr.Graph, prio []int32, cfg workers.Config) (pred, succ [][]csr.NodeId, pending []int32) {
	n := g.NumNodes()
	pred = make([][]csr.NodeId, n)
	succ = make([][]csr.NodeId, n)
	pending = make([]int32, n)

	workers.ParallelForEach(cfg, n, func(i int) {
		v := csr.NodeId(i)
		for _, u := range g.OutNeigh(v) {
			if prio[u] > prio[v] {
				pred[v] = append(pred[v], u)
			} else {
				succ[v] = append(succ[v], u)
			}
		}
		pending[v] = int32(len(pred[v]))
	})
	return pred, succ, pending
}

// jonesColor returns the smallest color in [1, Delta+1] not used by any
// of v's predecessors, all of which are guaranteed already colored by
// the time this is called.
func jonesColor(pred []csr.NodeId, colors []ColorId, delta int) ColorId {
	used := make([]bool, delta+2)
	for _, u := range pred {
		c := colors[u]
		if int(c) < len(used) {
			used[c] = true
		}
	}
	for c := 1; c <= delta+1; c++ {
		if !used[c] {
			return ColorId(c)
		}
	}
	return ColorId(delta + 1)
}
