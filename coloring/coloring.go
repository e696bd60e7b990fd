// Package coloring implements parallel Δ+1 greedy vertex coloring:
// several algorithms sharing a common palette-and-conflict-rule pattern
// (Barenboim, Elkin, Johansson, three Jones–Plassmann drivers, and a
// dense/sparse decomposition for almost-clique graphs), plus a verifier.
package coloring

import (
	"sort"

	"github.com/gmsgo/gms/csr"
)

// ColorId identifies a color. Uncolored is the zero value, never
// assigned by any algorithm in this package, so a Result's Colors slice
// can be read directly without a separate "colored" bitmap.
type ColorId int32

// Uncolored is the sentinel value of an as-yet-unassigned color.
const Uncolored ColorId = 0

// Result is the output of any coloring algorithm in this package.
type Result struct {
	// Colors holds one entry per vertex; Colors[v] is in [1, Delta+1]
	// once v is colored, or Uncolored before that.
	Colors []ColorId
	// Delta is the maximum degree of the graph the coloring was computed
	// against.
	Delta int
}

// Palette is a per-vertex sorted set of colors still available to it,
// initially {1, ..., Delta+1} and shrunk as neighbors commit colors.
type Palette struct {
	colors []ColorId
}

// NewPalette returns a Palette containing {1, ..., size}.
func NewPalette(size int) Palette {
	colors := make([]ColorId, size)
	for i := range colors {
		colors[i] = ColorId(i + 1)
	}
	return Palette{colors: colors}
}

// Len reports the number of colors remaining in the palette.
func (p *Palette) Len() int { return len(p.colors) }

// At returns the i-th remaining color.
func (p *Palette) At(i int) ColorId { return p.colors[i] }

// Has reports whether c is still in the palette.
func (p *Palette) Has(c ColorId) bool {
	i := sort.Search(len(p.colors), func(i int) bool { return p.colors[i] >= c })
	return i < len(p.colors) && p.colors[i] == c
}

// Remove deletes c from the palette if present.
func (p *Palette) Remove(c ColorId) {
	i := sort.Search(len(p.colors), func(i int) bool { return p.colors[i] >= c })
	if i < len(p.colors) && p.colors[i] == c {
		p.colors = append(p.colors[:i], p.colors[i+1:]...)
	}
}

// newPalettes allocates one Palette of size delta+1 per vertex.
func newPalettes(n, delta int) []Palette {
	out := make([]Palette, n)
	for v := range out {
		out[v] = NewPalette(delta + 1)
	}
	return out
}

// commit applies the smaller-ID-wins conflict rule: vertex v may take
// color c only if no smaller-ID uncolored neighbor also tentatively
// chose c this round.
func commit(g *csr.Graph, v csr.NodeId, chosen []ColorId, colors []ColorId) bool {
	c := chosen[v]
	for _, u := range g.OutNeigh(v) {
		if u >= v {
			break
		}
		if colors[u] != Uncolored {
			continue
		}
		if chosen[u] == c {
			return false
		}
	}
	return true
}

// newResult allocates a Result with Colors sized to g and Delta set to g's
// maximum out-degree.
func newResult(g *csr.Graph) Result {
	return Result{Colors: make([]ColorId, g.NumNodes()), Delta: g.MaxDegree()}
}
