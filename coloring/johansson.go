package coloring

import (
	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/prng"
	"github.com/gmsgo/gms/internal/workers"
)

// JohanssonConfig tunes the Johansson no-palette driver.
type JohanssonConfig struct {
	Workers  workers.Config
	BaseSeed uint64
}

// DefaultJohanssonConfig returns the default configuration.
func DefaultJohanssonConfig() JohanssonConfig {
	return JohanssonConfig{Workers: workers.DefaultConfig(), BaseSeed: 1}
}

// Johansson colors g by repeatedly having every uncolored vertex pick a
// color uniformly at random from [1, Delta+1] (no palette maintenance,
// unlike Barenboim/Elkin, trading a slightly larger expected number of
// rounds for much cheaper per-round bookkeeping) and committing only if
// no neighbor — already colored or merely tentative this round — picked
// the same value. Expected to finish in O(log n) rounds.
func Johansson(g *csr.Graph, cfg JohanssonConfig) Result {
	res := newResult(g)
	n := g.NumNodes()
	chosen := make([]ColorId, n)
	accept := make([]bool, n)
	round := 0

	for !allColored(res.Colors) {
		workers.ParallelFor(cfg.Workers, n, workers.DefaultChunk, func(lo, hi int) {
			rng := prng.Source(cfg.BaseSeed, lo, round)
			for i := lo; i < hi; i++ {
				v := csr.NodeId(i)
				if res.Colors[v] != Uncolored {
					continue
				}
				chosen[v] = ColorId(1 + rng.Intn(res.Delta+1))
			}
		})

		// Decide phase: compare this round's tentative pick against every
		// neighbor, committed or not, without touching res.Colors. Reads
		// only res.Colors[u] (stable all round, since a vertex's slot is
		// only ever written in the commit phase below) and chosen[u]
		// (fully populated by the barrier above), so nothing here races
		// another goroutine's write.
		workers.ParallelForEach(cfg.Workers, n, func(i int) {
			v := csr.NodeId(i)
			if res.Colors[v] != Uncolored {
				return
			}
			keep := true
			for _, u := range g.OutNeigh(v) {
				other := res.Colors[u]
				if other == Uncolored {
					other = chosen[u]
				}
				if other == chosen[v] {
					keep = false
					break
				}
			}
			accept[v] = keep
		})

		// Commit phase: only ever writes res.Colors[v], never reads a
		// neighbor's slot, so it is race-free against every other
		// goroutine's commit of its own vertex.
		workers.ParallelForEach(cfg.Workers, n, func(i int) {
			v := csr.NodeId(i)
			if res.Colors[v] == Uncolored && accept[v] {
				res.Colors[v] = chosen[v]
			}
		})
		round++
	}
	return res
}
