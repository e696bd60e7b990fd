// Package bronkerbosch implements maximal clique enumeration (MCE) over
// a setgraph.Graph: Tomita's sequential pivoted expansion, the parallel
// Eppstein degeneracy-ordered outer loop built on top of it, and an
// induced-subgraph variant of the same recursion for cache locality on
// large candidate sets.
package bronkerbosch

import (
	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/set"
	"github.com/gmsgo/gms/setgraph"
)

// Sink receives each maximal clique found during expansion. Callers
// that only need a count can ignore q's contents; q is only valid for
// the duration of the call; Sink must copy it to retain it.
type Sink func(q []csr.NodeId)

// findPivot returns the vertex of cand ∪ fini maximizing |cand ∩ N(p)|,
// Tomita's pivot-selection rule: expanding around it later minimizes the
// number of recursive branches taken.
func findPivot(g setgraph.Graph, cand, fini set.Set) csr.NodeId {
	var pivot csr.NodeId
	maxDeg := -1
	consider := func(v csr.NodeId) {
		if deg := cand.IntersectCount(g[v]); deg > maxDeg {
			pivot, maxDeg = v, deg
		}
	}
	for _, v := range cand.Iter() {
		consider(v)
	}
	for _, v := range fini.Iter() {
		consider(v)
	}
	return pivot
}

// addInPlace adds v to s by mutating s when s implements
// set.InPlaceUnion (the Sorted Kind still rebuilds its backing slice),
// and otherwise returns s.Add(v).
func addInPlace(s set.Set, v csr.NodeId) set.Set {
	if u, ok := s.(set.InPlaceUnion); ok {
		u.UnionInPlace(set.FromSlice(s.Kind(), []csr.NodeId{v}))
		return s
	}
	return s.Add(v)
}

// removeInPlace removes v from s by mutating s when s implements
// set.InPlaceDifference (the Sorted Kind still rebuilds its backing
// slice), and otherwise returns s.Remove(v).
func removeInPlace(s set.Set, v csr.NodeId) set.Set {
	if d, ok := s.(set.InPlaceDifference); ok {
		d.DifferenceInPlace(set.FromSlice(s.Kind(), []csr.NodeId{v}))
		return s
	}
	return s.Remove(v)
}

// expand recursively extends the partial clique q, emitting every
// maximal clique found to sink. q is reused as a stack across sibling
// recursive calls (each iteration's append overwrites the previous
// iteration's top element), so sink must copy it before returning.
func expand(g setgraph.Graph, cand, fini set.Set, q []csr.NodeId, sink Sink) {
	if cand.Cardinality() == 0 {
		if fini.Cardinality() == 0 {
			sink(q)
		}
		return
	}

	pivot := findPivot(g, cand, fini)
	ext := cand.Difference(g[pivot])
	for _, v := range ext.Iter() {
		candNew := cand.Intersect(g[v])
		finiNew := fini.Intersect(g[v])
		expand(g, candNew, finiNew, append(q, v), sink)

		cand = removeInPlace(cand, v)
		fini = addInPlace(fini, v)
	}
}

// Tomita enumerates every maximal clique of g, over Set representation
// kind, via sequential pivoted expansion starting from the whole vertex
// set as cand.
func Tomita(g setgraph.Graph, kind set.Kind, sink Sink) {
	expand(g, set.Range(kind, g.NumNodes()), set.New(kind), nil, sink)
}

// CountSink returns a Sink that only counts emitted cliques, for callers
// that don't need the clique contents.
func CountSink() (sink Sink, count func() int) {
	var n int
	return func(q []csr.NodeId) { n++ }, func() int { return n }
}

// CollectSink returns a Sink that copies every emitted clique into a
// slice, for callers (typically tests) that need the actual clique set.
func CollectSink() (sink Sink, cliques func() [][]csr.NodeId) {
	var out [][]csr.NodeId
	return func(q []csr.NodeId) {
			out = append(out, append([]csr.NodeId(nil), q...))
		}, func() [][]csr.NodeId {
			return out
		}
}
