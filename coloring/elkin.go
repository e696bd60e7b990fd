package coloring

import (
	"math"

	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/prng"
	"github.com/gmsgo/gms/internal/workers"
)

// ElkinConfig tunes the Elkin multi-candidate driver.
type ElkinConfig struct {
	Workers  workers.Config
	BaseSeed uint64
}

// DefaultElkinConfig returns the default Elkin configuration.
func DefaultElkinConfig() ElkinConfig {
	return ElkinConfig{Workers: workers.DefaultConfig(), BaseSeed: 1}
}

// Elkin colors g using the multi-candidate palette scheme: each round,
// every uncolored vertex independently samples several colors from its
// own palette (rather than one, as in Barenboim), and commits the
// smallest candidate surviving a set-difference against the candidate
// sets of its smaller-ID uncolored neighbors. The per-round sampling
// probability and a simulated "effective degree" shrink according to the
// rescaling schedule below; that schedule is preserved literally from
// its source rather than re-derived, since its precise numerical intent
// is unclear and the behavior it produces is what downstream code
// depends on. A round with zero newly-colored vertices stops the driver
// and hands any remainder to Barenboim's one-shot rounds.
func Elkin(g *csr.Graph, cfg ElkinConfig) Result {
	res := newResult(g)
	palettes := newPalettes(g.NumNodes(), res.Delta)
	updatePalettes(g, res.Colors, palettes)

	n := float64(g.NumNodes())
	delta := float64(res.Delta)
	if delta < 1 {
		delta = 1
	}

	epsilon := math.Pow(math.Log(n), 2) / delta
	for epsilon >= 1 {
		epsilon /= 2
	}
	for epsilon < 0.5 {
		epsilon *= 2
	}
	epsilonDelta := epsilon * delta

	gamma := math.Log(delta*epsilon/math.Log(n)) / math.Log(delta*epsilon)
	dI := delta
	t := math.Pow(epsilonDelta, 1-gamma)
	alpha := func(d float64) float64 { return math.Exp(-(d + epsilonDelta) / (8 * (d + 1))) }
	dNext := func(d float64) float64 {
		if d > t {
			return math.Max(1.01*alpha(d)*d, t)
		}
		return t / epsilonDelta * d
	}

	nodes := allNodes(g.NumNodes())
	candidates := make([][]ColorId, g.NumNodes())
	newColor := make([]ColorId, g.NumNodes())

	madeProgress := true
	round := 0
	for !allColored(res.Colors) && madeProgress {
		pPrecompute := (dI + epsilonDelta) / (dI + 1)
		dI = dNext(dI)

		workers.ParallelFor(cfg.Workers, len(nodes), workers.DefaultChunk, func(lo, hi int) {
			rng := prng.Source(cfg.BaseSeed, lo, round)
			for i := lo; i < hi; i++ {
				v := nodes[i]
				if res.Colors[v] != Uncolored {
					continue
				}
				p := &palettes[v]
				pi := pPrecompute / float64(p.Len())
				var chosen []ColorId
				for k := 0; k < p.Len(); k++ {
					if rng.Float64() < pi {
						chosen = append(chosen, p.At(k))
					}
				}
				candidates[v] = chosen
			}
		})

		newlyColored := 0
		workers.ParallelForEach(cfg.Workers, len(nodes), func(i int) {
			v := nodes[i]
			if len(candidates[v]) == 0 || res.Colors[v] != Uncolored {
				return
			}
			diff := append([]ColorId(nil), candidates[v]...)
			for _, u := range g.OutNeigh(v) {
				if u >= v || len(candidates[u]) == 0 || res.Colors[u] != Uncolored {
					continue
				}
				diff = setDifferenceColors(diff, candidates[u])
			}
			if len(diff) > 0 {
				min := diff[0]
				for _, c := range diff[1:] {
					if c < min {
						min = c
					}
				}
				newColor[v] = min
			}
		})
		for _, v := range nodes {
			if newColor[v] != Uncolored {
				newlyColored++
			}
		}
		madeProgress = newlyColored > 0

		workers.ParallelForEach(cfg.Workers, len(nodes), func(i int) {
			v := nodes[i]
			if res.Colors[v] != Uncolored {
				return
			}
			for _, u := range g.OutNeigh(v) {
				if newColor[u] != Uncolored {
					palettes[v].Remove(newColor[u])
				}
			}
		})

		for _, v := range nodes {
			if res.Colors[v] == Uncolored && newColor[v] != Uncolored {
				res.Colors[v] = newColor[v]
				newColor[v] = Uncolored
				candidates[v] = nil
			}
		}
		round++
	}

	// Residual: Barenboim one-shot rounds over the still-uncolored
	// vertices, continuing from the palettes maintained above.
	for !allColored(res.Colors) {
		oneShotRound(g, uncoloredOf(nodes, res.Colors), res.Colors, palettes, cfg.Workers, cfg.BaseSeed, round)
		round++
	}
	return res
}

// setDifferenceColors returns a (ascending) in the order given, with any
// element of b removed; both slices are assumed already ascending, as
// palettes always hand out candidates in ascending order.
func setDifferenceColors(a, b []ColorId) []ColorId {
	out := a[:0:0]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return out
}
