package order

import (
	"math"
	"sort"
	"sync/atomic"

	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/prng"
	"github.com/gmsgo/gms/internal/workers"
)

// ThresholdPolicy selects how ApproxDegeneracy computes the per-round
// peeling threshold τ over the currently active vertex set.
type ThresholdPolicy int

const (
	// PolicyAvg sets τ = (1+ε)·mean(deg) over the active set.
	PolicyAvg ThresholdPolicy = iota
	// PolicyMin sets τ = 2(1+ε)·min(deg) over the active set.
	PolicyMin
	// PolicyProbMin samples max(4, |active|^((1-ε)/2)) random active
	// vertices and sets τ to the minimum degree among them.
	PolicyProbMin
	// PolicyProbMedian samples the same number of vertices as
	// PolicyProbMin and sets τ to their median degree.
	PolicyProbMedian
)

// ApproxConfig configures ApproxDegeneracy.
type ApproxConfig struct {
	Epsilon  float64
	Policy   ThresholdPolicy
	Workers  workers.Config
	BaseSeed uint64
}

// DefaultApproxConfig returns a config using PolicyAvg and ε=0.2.
func DefaultApproxConfig() ApproxConfig {
	return ApproxConfig{Epsilon: 0.2, Policy: PolicyAvg, Workers: workers.DefaultConfig(), BaseSeed: 1}
}

// ApproxDegeneracy computes a non-deterministic but valid degeneracy-like
// ordering via parallel threshold peeling: each round partitions the
// active vertex set into "peel" (remaining degree ≤ τ) and "keep",
// appends the peeled vertices (sorted by degree) to the output, and
// atomically decrements the remaining degree of their still-active
// neighbors. Any output produced this way is valid: its induced core
// number is ≥ the true degeneracy, and is accepted by the verifier when
// it does not exceed the induced core number of ByDegree.
func ApproxDegeneracy(g *csr.Graph, cfg ApproxConfig) Ranking {
	n := g.NumNodes()
	deg := make([]int64, n)
	for v := 0; v < n; v++ {
		deg[v] = int64(g.OutDegree(csr.NodeId(v)))
	}
	atomicDeg := make([]atomic.Int64, n)
	for v := 0; v < n; v++ {
		atomicDeg[v].Store(deg[v])
	}

	active := make([]csr.NodeId, n)
	for v := 0; v < n; v++ {
		active[v] = csr.NodeId(v)
	}

	order := make([]csr.NodeId, 0, n)
	round := 0
	for len(active) > 0 {
		tau := threshold(active, &atomicDeg, cfg, round)

		var peelIdx, keepIdx []int
		for i, v := range active {
			if atomicDeg[v].Load() <= tau {
				peelIdx = append(peelIdx, i)
			} else {
				keepIdx = append(keepIdx, i)
			}
		}
		if len(peelIdx) == 0 {
			// τ failed to make progress (degenerate policy output);
			// force-peel the single minimum-degree vertex to guarantee
			// termination.
			minI := 0
			for i := range active {
				if atomicDeg[active[i]].Load() < atomicDeg[active[minI]].Load() {
					minI = i
				}
			}
			peelIdx = []int{minI}
			filtered := keepIdx[:0]
			for _, i := range keepIdx {
				if i != minI {
					filtered = append(filtered, i)
				}
			}
			keepIdx = filtered
		}

		peeled := make([]csr.NodeId, len(peelIdx))
		for i, idx := range peelIdx {
			peeled[i] = active[idx]
		}
		sort.Slice(peeled, func(i, j int) bool {
			return atomicDeg[peeled[i]].Load() < atomicDeg[peeled[j]].Load()
		})
		order = append(order, peeled...)

		peeledSet := make(map[csr.NodeId]struct{}, len(peeled))
		for _, v := range peeled {
			peeledSet[v] = struct{}{}
		}
		workers.ParallelForEach(cfg.Workers, len(peeled), func(i int) {
			v := peeled[i]
			for _, w := range g.OutNeigh(v) {
				if _, done := peeledSet[w]; done {
					continue
				}
				atomicDeg[w].Add(-1)
			}
		})

		keep := make([]csr.NodeId, len(keepIdx))
		for i, idx := range keepIdx {
			keep[i] = active[idx]
		}
		active = keep
		round++
	}

	rank := make([]int32, n)
	for p, v := range order {
		rank[v] = int32(p)
	}
	return Ranking{Order: order, Rank: rank}
}

func threshold(active []csr.NodeId, deg *[]atomic.Int64, cfg ApproxConfig, round int) int64 {
	eps := cfg.Epsilon
	d := *deg
	switch cfg.Policy {
	case PolicyAvg:
		var sum int64
		for _, v := range active {
			sum += d[v].Load()
		}
		mean := float64(sum) / float64(len(active))
		return int64(math.Ceil((1 + eps) * mean))
	case PolicyMin:
		min := d[active[0]].Load()
		for _, v := range active[1:] {
			if dv := d[v].Load(); dv < min {
				min = dv
			}
		}
		return int64(math.Ceil(2 * (1 + eps) * float64(min)))
	case PolicyProbMin, PolicyProbMedian:
		k := int(math.Max(4, math.Pow(float64(len(active)), (1-eps)/2)))
		if k > len(active) {
			k = len(active)
		}
		rng := prng.Source(cfg.BaseSeed, 0, round)
		samples := make([]int64, k)
		for i := 0; i < k; i++ {
			idx := rng.Intn(len(active))
			samples[i] = d[active[idx]].Load()
		}
		sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
		if cfg.Policy == PolicyProbMin {
			return samples[0]
		}
		return samples[len(samples)/2]
	default:
		panic("order: unknown ThresholdPolicy")
	}
}
