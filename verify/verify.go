// Package verify consolidates the independent correctness checks scattered
// across the other packages (coloring validity, degeneracy-ordering
// correctness, clique-count cross-checking) into a single entry point for
// tests and the benchmark CLI's -v verification runs.
package verify

import (
	"github.com/gmsgo/gms/clique"
	"github.com/gmsgo/gms/coloring"
	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/order"
)

// Coloring reports whether colors is a valid Δ+1 coloring of g.
func Coloring(g *csr.Graph, colors []coloring.ColorId) bool {
	return coloring.Verify(g, colors)
}

// Degeneracy reports whether ranking's induced core number is consistent
// with it being a valid degeneracy (or degeneracy-approximating) ordering
// of g. An exact Matula–Beck ordering must induce a core number equal to
// g's true degeneracy; any other valid ordering (e.g. an approximate one)
// must not induce a core number exceeding order.ByDegree's, which upper-
// bounds the true degeneracy.
func Degeneracy(g *csr.Graph, ranking order.Ranking, exact bool) bool {
	got := order.CoreNumber(g, ranking)
	if exact {
		return got == order.CoreNumber(g, order.Degeneracy(g))
	}
	return got <= order.CoreNumber(g, order.ByDegree(g))
}

// CliqueCount cross-checks count — typically the output of one of
// clique's parallel drivers — against clique.Verify's independent
// brute-force counter.
func CliqueCount(g *csr.Graph, k int, count uint64) bool {
	return count == clique.Verify(g, k)
}
