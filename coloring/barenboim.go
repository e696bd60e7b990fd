package coloring

import (
	"math"
	"sort"

	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/prng"
	"github.com/gmsgo/gms/internal/workers"
)

// BarenboimConfig tunes the Barenboim one-shot driver.
type BarenboimConfig struct {
	// DenseThresholdConst is the constant c in the Δ̂ = c·log(n) residual
	// threshold separating high- and low-degree leftover vertices after
	// the initial round budget is exhausted. Left as a tunable rather
	// than re-derived, per the literal source's own unresolved TODO.
	DenseThresholdConst float64
	Workers             workers.Config
	BaseSeed            uint64
}

// DefaultBarenboimConfig returns the c=1 default.
func DefaultBarenboimConfig() BarenboimConfig {
	return BarenboimConfig{DenseThresholdConst: 1, Workers: workers.DefaultConfig(), BaseSeed: 1}
}

// Barenboim computes a Δ+1 coloring of the undirected graph g (every
// edge stored in both endpoints' neighborhoods, sorted ascending) via
// repeated one-shot rounds: first a fixed budget of
// ⌈log Δ / log(16/15)⌉ rounds over every vertex, then up to
// ⌈5·log Δ̂ / log(4/3)⌉ rounds over the high-degree group of whatever
// remains uncolored followed by up to as many over the low-degree
// group, then one-shot rounds to exhaustion for any residual.
func Barenboim(g *csr.Graph, cfg BarenboimConfig) Result {
	res := newResult(g)
	palettes := newPalettes(g.NumNodes(), res.Delta)
	updatePalettes(g, res.Colors, palettes)

	nodes := allNodes(g.NumNodes())
	round := 0
	iterations := int(math.Ceil(math.Log(float64(res.Delta)) / math.Log(16.0/15.0)))
	if res.Delta <= 1 {
		iterations = 1
	}
	for i := 0; i < iterations && !allColored(res.Colors); i++ {
		oneShotRound(g, nodes, res.Colors, palettes, cfg.Workers, cfg.BaseSeed, round)
		round++
	}
	if allColored(res.Colors) {
		return res
	}

	uncolored := uncoloredOf(nodes, res.Colors)
	deltaHat := int(cfg.DenseThresholdConst * math.Log(float64(g.NumNodes())))
	if deltaHat < 1 {
		deltaHat = 1
	}

	var hi, lo []csr.NodeId
	for _, v := range uncolored {
		uncoloredDeg := 0
		for _, u := range g.OutNeigh(v) {
			if res.Colors[u] == Uncolored {
				uncoloredDeg++
			}
		}
		if uncoloredDeg > deltaHat {
			hi = append(hi, v)
		} else {
			lo = append(lo, v)
		}
	}
	sort.Slice(hi, func(i, j int) bool { return hi[i] < hi[j] })
	sort.Slice(lo, func(i, j int) bool { return lo[i] < lo[j] })

	iterations = int(math.Ceil(5 * math.Log(float64(deltaHat)) / math.Log(4.0/3.0)))
	if iterations < 1 {
		iterations = 1
	}
	for i := 0; i < iterations && !allColored(res.Colors); i++ {
		if len(hi) > 0 {
			oneShotRound(g, hi, res.Colors, palettes, cfg.Workers, cfg.BaseSeed, round)
		}
		round++
	}
	// oneShotRound only updates the palettes of the group it colors, so
	// the other group's palettes are refreshed before it runs.
	updatePalettes(g, res.Colors, palettes)
	for i := 0; i < iterations && !allColored(res.Colors); i++ {
		if len(lo) > 0 {
			oneShotRound(g, lo, res.Colors, palettes, cfg.Workers, cfg.BaseSeed, round)
		}
		round++
	}
	updatePalettes(g, res.Colors, palettes)

	for !allColored(res.Colors) {
		residual := uncoloredOf(nodes, res.Colors)
		oneShotRound(g, residual, res.Colors, palettes, cfg.Workers, cfg.BaseSeed, round)
		round++
	}
	return res
}

func allNodes(n int) []csr.NodeId {
	out := make([]csr.NodeId, n)
	for i := range out {
		out[i] = csr.NodeId(i)
	}
	return out
}

func allColored(colors []ColorId) bool {
	for _, c := range colors {
		if c == Uncolored {
			return false
		}
	}
	return true
}

func uncoloredOf(nodes []csr.NodeId, colors []ColorId) []csr.NodeId {
	var out []csr.NodeId
	for _, v := range nodes {
		if colors[v] == Uncolored {
			out = append(out, v)
		}
	}
	return out
}

// oneShotRound runs one pick/commit/palette-update phase over
// nodesToColor: uncolored vertices each pick a random palette color, a
// vertex commits iff no smaller-ID neighbor picked the same tentative
// color (the smaller-ID-wins conflict rule: scanning the sorted
// out-neighborhood ascending and breaking as soon as a neighbor ID
// reaches its own lets the check stop early), and remaining palettes
// drop any color newly committed by a neighbor this round.
func oneShotRound(g *csr.Graph, nodesToColor []csr.NodeId, colors []ColorId, palettes []Palette, cfg workers.Config, baseSeed uint64, round int) {
	n := len(nodesToColor)
	if n == 0 {
		return
	}
	chosen := make([]ColorId, g.NumNodes())

	workers.ParallelFor(cfg, n, workers.DefaultChunk, func(lo, hi int) {
		rng := prng.Source(baseSeed, lo, round)
		for i := lo; i < hi; i++ {
			v := nodesToColor[i]
			if colors[v] != Uncolored {
				continue
			}
			p := &palettes[v]
			if p.Len() == 0 {
				continue
			}
			chosen[v] = p.At(rng.Intn(p.Len()))
		}
	})

	newColor := make([]ColorId, g.NumNodes())
	workers.ParallelForEach(cfg, n, func(i int) {
		v := nodesToColor[i]
		if colors[v] != Uncolored || chosen[v] == Uncolored {
			return
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
			newColor[v] = chosen[v]
		}
	})

	workers.ParallelForEach(cfg, n, func(i int) {
		v := nodesToColor[i]
		if colors[v] != Uncolored {
			return
		}
		for _, u := range g.OutNeigh(v) {
			if newColor[u] != Uncolored {
				palettes[v].Remove(newColor[u])
			}
		}
	})
}

func updatePalettes(g *csr.Graph, colors []ColorId, palettes []Palette) {
	workers.ParallelForEach(workers.DefaultConfig(), g.NumNodes(), func(i int) {
		v := csr.NodeId(i)
		if colors[v] != Uncolored {
			return
		}
		for _, u := range g.OutNeigh(v) {
			if colors[u] != Uncolored {
				palettes[v].Remove(colors[u])
			}
		}
	})
}
