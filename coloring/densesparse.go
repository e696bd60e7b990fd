package coloring

import (
	"math"
	"sort"
	"sync/atomic"

	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/prng"
	"github.com/gmsgo/gms/internal/workers"
)

// DenseSparseConfig tunes the dense/sparse decomposition.
type DenseSparseConfig struct {
	// Epsilon controls both the friend-edge and dense-vertex thresholds
	// (both use (1-Epsilon)·Delta); smaller Epsilon demands a closer
	// approach to a true clique before two vertices/components are
	// treated as dense.
	Epsilon float64
	// Beta is the Bernoulli subsampling rate used while scanning for
	// friend edges, trading detection accuracy for time.
	Beta float64
	// Alpha is the per-vertex probability used by the initial random
	// coloring pass over dense-component members.
	Alpha    float64
	Workers  workers.Config
	BaseSeed uint64
}

// DefaultDenseSparseConfig returns the default decomposition parameters.
func DefaultDenseSparseConfig() DenseSparseConfig {
	return DenseSparseConfig{Epsilon: 0.1, Beta: 0.5, Alpha: 0.01, Workers: workers.DefaultConfig(), BaseSeed: 1}
}

// DenseSparse colors g by first isolating and coordinately coloring its
// almost-clique ("dense") components — where plain Barenboim palette
// shrinkage serializes badly — and then handing the remaining sparse
// residual to Barenboim.
func DenseSparse(g *csr.Graph, cfg DenseSparseConfig) Result {
	res := newResult(g)
	n := g.NumNodes()
	delta := res.Delta

	friend := findFriendEdges(g, delta, cfg)
	isDense := make([]bool, n)
	denseThreshold := cfg.Beta * (1 - cfg.Epsilon) * float64(delta)
	for v := 0; v < n; v++ {
		if float64(len(friend[v])) >= denseThreshold {
			isDense[v] = true
		}
	}

	leader, components := electLeaders(friend, isDense)
	componentCount := make([]atomic.Int32, len(components))
	for c, members := range components {
		componentCount[c].Store(int32(len(members)))
	}

	// Step 4: initial cheap random coloring of dense-component members.
	initialRandomColor(g, res.Colors, res.Delta, denseMembers(isDense), cfg)
	decrementColoredMembers(leader, componentCount, isDense, res.Colors)

	// Step 5: component-coordinated rounds.
	for c, members := range components {
		if componentCount[c].Load() == 0 {
			continue
		}
		coordinateComponent(g, res.Colors, res.Delta, members, cfg)
	}

	// Step 6: residual sparse vertices handed to Barenboim one-shot
	// rounds, with palettes seeded from the colors committed above.
	if !allColored(res.Colors) {
		palettes := newPalettes(n, delta)
		updatePalettes(g, res.Colors, palettes)
		nodes := allNodes(n)
		for round := 0; !allColored(res.Colors); round++ {
			oneShotRound(g, uncoloredOf(nodes, res.Colors), res.Colors, palettes, cfg.Workers, cfg.BaseSeed, round)
		}
	}
	return res
}

// findFriendEdges returns, per vertex, the list of neighbors u with
// which it shares a friend edge: both endpoints have degree ≥
// (1-ε)·Δ and |N(u) ∩ N(v)| ≥ (1-ε)·Δ. Candidates are Bernoulli
// subsampled at rate Beta before the expensive intersection check.
// Each vertex only scans neighbors with a larger ID, so a pair is
// discovered once; the lists are deduplicated after each edge is
// mirrored onto its other endpoint.
func findFriendEdges(g *csr.Graph, delta int, cfg DenseSparseConfig) [][]csr.NodeId {
	n := g.NumNodes()
	degThreshold := (1 - cfg.Epsilon) * float64(delta)
	out := make([][]csr.NodeId, n)

	workers.ParallelFor(cfg.Workers, n, workers.DefaultChunk, func(lo, hi int) {
		rng := prng.Source(cfg.BaseSeed, lo, 0)
		for i := lo; i < hi; i++ {
			v := csr.NodeId(i)
			if float64(g.OutDegree(v)) < degThreshold {
				continue
			}
			neighV := g.OutNeigh(v)
			var friends []csr.NodeId
			for _, u := range neighV {
				if u <= v {
					continue
				}
				if rng.Float64() > cfg.Beta {
					continue
				}
				if float64(g.OutDegree(u)) < degThreshold {
					continue
				}
				if float64(commonNeighbors(neighV, g.OutNeigh(u))) >= degThreshold {
					friends = append(friends, u)
				}
			}
			out[v] = dedupNodeIds(friends)
		}
	})

	// Mirror each discovered friend edge onto its other endpoint.
	for v := 0; v < n; v++ {
		for _, u := range out[v] {
			out[u] = append(out[u], csr.NodeId(v))
		}
	}
	for v := 0; v < n; v++ {
		out[v] = dedupNodeIds(out[v])
	}
	return out
}

func commonNeighbors(a, b []csr.NodeId) int {
	i, j, count := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			count++
			i++
			j++
		}
	}
	return count
}

func dedupNodeIds(vs []csr.NodeId) []csr.NodeId {
	if len(vs) == 0 {
		return nil
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	out := vs[:1]
	for _, v := range vs[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// electLeaders finds connected components of the friend-edge subgraph
// restricted to dense vertices via BFS, each component's leader being
// its minimum-ID member: dense vertices are scanned sequentially in
// ascending ID order and a BFS starts only from one not yet assigned to
// a component, so each component is explored exactly once, from its
// minimum, and no BFS ever needs to abort.
func electLeaders(friend [][]csr.NodeId, isDense []bool) ([]int, [][]csr.NodeId) {
	n := len(friend)
	componentOf := make([]int, n)
	for i := range componentOf {
		componentOf[i] = -1
	}
	var components [][]csr.NodeId
	leader := make([]int, n)
	for i := range leader {
		leader[i] = -1
	}

	for v := 0; v < n; v++ {
		if !isDense[v] || componentOf[v] != -1 {
			continue
		}
		// BFS from the lowest-ID unvisited dense vertex in this
		// component is guaranteed to start at the true leader, since
		// vertices are scanned in ascending order.
		members := []csr.NodeId{csr.NodeId(v)}
		componentOf[v] = len(components)
		queue := []csr.NodeId{csr.NodeId(v)}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, w := range friend[cur] {
				if !isDense[w] || componentOf[w] != -1 {
					continue
				}
				componentOf[w] = len(components)
				members = append(members, w)
				queue = append(queue, w)
			}
		}
		c := len(components)
		for _, m := range members {
			leader[m] = c
		}
		components = append(components, members)
	}
	return leader, components
}

func denseMembers(isDense []bool) []csr.NodeId {
	var out []csr.NodeId
	for v, d := range isDense {
		if d {
			out = append(out, csr.NodeId(v))
		}
	}
	return out
}

// initialRandomColor runs the cheap independent-coloring pass of step 4:
// each dense-component member independently picks a random color with
// probability Alpha and commits it under the usual smaller-ID-wins
// conflict rule, removing a few members from their components before
// the more expensive coordinated rounds.
func initialRandomColor(g *csr.Graph, colors []ColorId, delta int, members []csr.NodeId, cfg DenseSparseConfig) {
	if len(members) == 0 {
		return
	}
	chosen := make([]ColorId, g.NumNodes())
	workers.ParallelFor(cfg.Workers, len(members), workers.DefaultChunk, func(lo, hi int) {
		rng := prng.Source(cfg.BaseSeed, lo, 1)
		for i := lo; i < hi; i++ {
			v := members[i]
			if rng.Float64() < cfg.Alpha {
				chosen[v] = ColorId(1 + rng.Intn(delta+1))
			}
		}
	})
	for _, v := range members {
		if chosen[v] == Uncolored || colors[v] != Uncolored {
			continue
		}
		keep := true
		for _, u := range g.OutNeigh(v) {
			if u >= v {
				break
			}
			if chosen[u] == chosen[v] {
				keep = false
				break
			}
		}
		if keep {
			colors[v] = chosen[v]
		}
	}
}

func decrementColoredMembers(leader []int, componentCount []atomic.Int32, isDense []bool, colors []ColorId) {
	for v, d := range isDense {
		if d && colors[v] != Uncolored && leader[v] >= 0 {
			componentCount[leader[v]].Add(-1)
		}
	}
}

// coordinateComponent runs repeated component-coordinated rounds (step
// 5) until every member of members is colored: each round computes the
// fraction L of still-uncolored members to attempt, based on each
// member's external degree and remaining palette size, colors an
// arbitrary L of them, and commits only survivors of an inter-component
// conflict check against already-committed larger-ID neighbors.
func coordinateComponent(g *csr.Graph, colors []ColorId, delta int, members []csr.NodeId, cfg DenseSparseConfig) {
	remaining := make([]csr.NodeId, 0, len(members))
	for _, v := range members {
		if colors[v] == Uncolored {
			remaining = append(remaining, v)
		}
	}
	round := 0
	for len(remaining) > 0 {
		maxD, minZ := 0, delta+1
		for _, v := range remaining {
			external, internal := 0, 0
			for _, u := range g.OutNeigh(v) {
				if memberIndex(members, u) >= 0 {
					internal++
				} else {
					external++
				}
			}
			d := external
			if alt := len(members) - internal; alt > d {
				d = alt
			}
			if d > maxD {
				maxD = d
			}
			paletteLeft := delta + 1 - countColoredNeighbors(g, colors, v)
			if paletteLeft < minZ {
				minZ = paletteLeft
			}
		}
		if minZ < 1 {
			minZ = 1
		}
		ratio := float64(maxD) / float64(minZ)
		l := int(math.Ceil(float64(len(remaining)) * (1 - 2*ratio*math.Log(float64(minZ)/float64(maxD)+1e-9))))
		if l < 1 {
			l = 1
		}
		if l > len(remaining) {
			l = len(remaining)
		}

		rng := prng.Source(cfg.BaseSeed, round, 2)
		pick := make([]csr.NodeId, l)
		copy(pick, remaining[:l])
		for _, v := range pick {
			pal := availableColors(g, colors, v, delta)
			if len(pal) == 0 {
				continue
			}
			chosen := pal[rng.Intn(len(pal))]
			keep := true
			for _, u := range g.OutNeigh(v) {
				if u <= v {
					continue
				}
				if colors[u] == chosen {
					keep = false
					break
				}
			}
			if keep {
				colors[v] = chosen
			}
		}

		next := remaining[:0]
		for _, v := range remaining {
			if colors[v] == Uncolored {
				next = append(next, v)
			}
		}
		remaining = next
		round++
	}
}

func memberIndex(members []csr.NodeId, v csr.NodeId) int {
	for i, m := range members {
		if m == v {
			return i
		}
	}
	return -1
}

func countColoredNeighbors(g *csr.Graph, colors []ColorId, v csr.NodeId) int {
	count := 0
	for _, u := range g.OutNeigh(v) {
		if colors[u] != Uncolored {
			count++
		}
	}
	return count
}

func availableColors(g *csr.Graph, colors []ColorId, v csr.NodeId, delta int) []ColorId {
	used := make([]bool, delta+2)
	for _, u := range g.OutNeigh(v) {
		if colors[u] != Uncolored {
			used[colors[u]] = true
		}
	}
	var out []ColorId
	for c := 1; c <= delta+1; c++ {
		if !used[c] {
			out = append(out, ColorId(c))
		}
	}
	return out
}
