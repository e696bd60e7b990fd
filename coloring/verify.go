package coloring

import "github.com/gmsgo/gms/csr"

// Verify reports whether colors is a valid Δ+1 coloring of g: every
// color is in [1, Delta+1] and no edge joins two same-colored vertices.
// The check is independent per vertex and safe to parallelize, though a
// sequential scan is already fast enough not to need it.
func Verify(g *csr.Graph, colors []ColorId) bool {
	delta := g.MaxDegree()
	for v := 0; v < g.NumNodes(); v++ {
		c := colors[csr.NodeId(v)]
		if c < 1 || int(c) > delta+1 {
			return false
		}
		for _, u := range g.OutNeigh(csr.NodeId(v)) {
			if colors[u] == c {
				return false
			}
		}
	}
	return true
}
