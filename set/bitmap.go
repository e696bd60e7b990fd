package set

import (
	"golang.org/x/tools/container/intsets"

	"github.com/gmsgo/gms/csr"
)

// bitmapSet is a set of vertex IDs backed by intsets.Sparse, a
// block-structured sparse bitmap keyed by the high bits of each member,
// giving fast IntersectCount without having to materialize the
// intersection.
type bitmapSet struct {
	s *intsets.Sparse
}

func newBitmap(vs []csr.NodeId) *bitmapSet {
	s := &intsets.Sparse{}
	for _, v := range vs {
		s.Insert(int(v))
	}
	return &bitmapSet{s: s}
}

func (b *bitmapSet) Kind() Kind       { return BitmapKind }
func (b *bitmapSet) Cardinality() int { return b.s.Len() }

func (b *bitmapSet) Contains(v csr.NodeId) bool {
	return b.s.Has(int(v))
}

func (b *bitmapSet) Iter() []csr.NodeId {
	ints := b.s.AppendTo(nil)
	out := make([]csr.NodeId, len(ints))
	for i, x := range ints {
		out[i] = csr.NodeId(x)
	}
	return out
}

func (b *bitmapSet) Add(v csr.NodeId) Set {
	out := b.Clone().(*bitmapSet)
	out.s.Insert(int(v))
	return out
}

func (b *bitmapSet) Remove(v csr.NodeId) Set {
	out := b.Clone().(*bitmapSet)
	out.s.Remove(int(v))
	return out
}

func asSparse(other Set) *intsets.Sparse {
	if o, ok := other.(*bitmapSet); ok {
		return o.s
	}
	s := &intsets.Sparse{}
	for _, v := range other.Iter() {
		s.Insert(int(v))
	}
	return s
}

func (b *bitmapSet) Intersect(other Set) Set {
	var out intsets.Sparse
	out.Intersection(b.s, asSparse(other))
	return &bitmapSet{s: &out}
}

func (b *bitmapSet) IntersectCount(other Set) int {
	var out intsets.Sparse
	out.Intersection(b.s, asSparse(other))
	return out.Len()
}

func (b *bitmapSet) Union(other Set) Set {
	var out intsets.Sparse
	out.Union(b.s, asSparse(other))
	return &bitmapSet{s: &out}
}

func (b *bitmapSet) UnionInPlace(other Set) {
	b.s.UnionWith(asSparse(other))
}

func (b *bitmapSet) Difference(other Set) Set {
	var out intsets.Sparse
	out.Difference(b.s, asSparse(other))
	return &bitmapSet{s: &out}
}

func (b *bitmapSet) DifferenceInPlace(other Set) {
	b.s.DifferenceWith(asSparse(other))
}

func (b *bitmapSet) Clone() Set {
	var out intsets.Sparse
	out.Copy(b.s)
	return &bitmapSet{s: &out}
}
