package set

import (
	"sort"

	"github.com/gmsgo/gms/csr"
)

// sortedSet (Kind Sorted) is a set of vertex IDs backed by a strictly
// ascending slice.
// It is the reference implementation: every other Kind is tested for
// agreement against it.
type sortedSet struct {
	vs []csr.NodeId
}

func newSorted(vs []csr.NodeId) *sortedSet {
	s := &sortedSet{vs: dedupSorted(vs)}
	return s
}

// dedupSorted returns vs sorted ascending with duplicates removed. It
// copies its input rather than mutating it.
func dedupSorted(vs []csr.NodeId) []csr.NodeId {
	if len(vs) == 0 {
		return nil
	}
	cp := append([]csr.NodeId(nil), vs...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:1]
	for _, v := range cp[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func (s *sortedSet) Kind() Kind        { return Sorted }
func (s *sortedSet) Cardinality() int  { return len(s.vs) }
func (s *sortedSet) Iter() []csr.NodeId {
	return append([]csr.NodeId(nil), s.vs...)
}

func (s *sortedSet) search(v csr.NodeId) (idx int, found bool) {
	idx = sort.Search(len(s.vs), func(i int) bool { return s.vs[i] >= v })
	found = idx < len(s.vs) && s.vs[idx] == v
	return idx, found
}

func (s *sortedSet) Contains(v csr.NodeId) bool {
	_, found := s.search(v)
	return found
}

func (s *sortedSet) Add(v csr.NodeId) Set {
	idx, found := s.search(v)
	if found {
		return s.Clone()
	}
	out := make([]csr.NodeId, 0, len(s.vs)+1)
	out = append(out, s.vs[:idx]...)
	out = append(out, v)
	out = append(out, s.vs[idx:]...)
	return &sortedSet{vs: out}
}

func (s *sortedSet) Remove(v csr.NodeId) Set {
	idx, found := s.search(v)
	if !found {
		return s.Clone()
	}
	out := make([]csr.NodeId, 0, len(s.vs)-1)
	out = append(out, s.vs[:idx]...)
	out = append(out, s.vs[idx+1:]...)
	return &sortedSet{vs: out}
}

// asSorted returns the ascending slice backing other, converting via
// Iter (and re-sorting) for non-Sorted Kinds.
func asSorted(other Set) []csr.NodeId {
	if o, ok := other.(*sortedSet); ok {
		return o.vs
	}
	return dedupSorted(other.Iter())
}

func (s *sortedSet) Intersect(other Set) Set {
	b := asSorted(other)
	out := make([]csr.NodeId, 0, min(len(s.vs), len(b)))
	i, j := 0, 0
	for i < len(s.vs) && j < len(b) {
		switch {
		case s.vs[i] < b[j]:
			i++
		case s.vs[i] > b[j]:
			j++
		default:
			out = append(out, s.vs[i])
			i++
			j++
		}
	}
	return &sortedSet{vs: out}
}

func (s *sortedSet) IntersectCount(other Set) int {
	b := asSorted(other)
	i, j, count := 0, 0, 0
	for i < len(s.vs) && j < len(b) {
		switch {
		case s.vs[i] < b[j]:
			i++
		case s.vs[i] > b[j]:
			j++
		default:
			count++
			i++
			j++
		}
	}
	return count
}

func (s *sortedSet) Union(other Set) Set {
	b := asSorted(other)
	out := make([]csr.NodeId, 0, len(s.vs)+len(b))
	i, j := 0, 0
	for i < len(s.vs) && j < len(b) {
		switch {
		case s.vs[i] < b[j]:
			out = append(out, s.vs[i])
			i++
		case s.vs[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, s.vs[i])
			i++
			j++
		}
	}
	out = append(out, s.vs[i:]...)
	out = append(out, b[j:]...)
	return &sortedSet{vs: out}
}

func (s *sortedSet) UnionInPlace(other Set) {
	merged := s.Union(other).(*sortedSet)
	s.vs = merged.vs
}

func (s *sortedSet) Difference(other Set) Set {
	b := asSorted(other)
	out := make([]csr.NodeId, 0, len(s.vs))
	i, j := 0, 0
	for i < len(s.vs) && j < len(b) {
		switch {
		case s.vs[i] < b[j]:
			out = append(out, s.vs[i])
			i++
		case s.vs[i] > b[j]:
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, s.vs[i:]...)
	return &sortedSet{vs: out}
}

func (s *sortedSet) DifferenceInPlace(other Set) {
	diff := s.Difference(other).(*sortedSet)
	s.vs = diff.vs
}

func (s *sortedSet) Clone() Set {
	return &sortedSet{vs: append([]csr.NodeId(nil), s.vs...)}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
