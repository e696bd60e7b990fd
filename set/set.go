// Package set provides a polymorphic set-of-vertex-IDs abstraction with
// three interchangeable implementations — sorted array, compressed
// bitmap, and open-addressed hash — sharing one contract so that the
// Bron–Kerbosch kernels can be written generically over Set and
// benchmarked across representations.
package set

import "github.com/gmsgo/gms/csr"

// Kind selects which concrete Set implementation to construct.
type Kind int

const (
	// Sorted is the sorted-array variant: fastest for small
	// neighborhoods, and the reference implementation other variants
	// are tested against.
	Sorted Kind = iota
	// BitmapKind is the compressed-bitmap variant, fast for dense,
	// large-range neighborhoods and for IntersectCount.
	BitmapKind
	// HashKind is the open-addressed Robin Hood hash variant: O(1)
	// expected membership, unordered iteration.
	HashKind
)

// Set is the polymorphic vertex-ID set contract every kernel in this
// module is written against. All operations use value semantics: a
// method that "returns a new Set" never mutates its receiver or its
// argument, except the methods explicitly suffixed InPlace.
type Set interface {
	// Cardinality returns the number of elements, in O(1) amortized.
	Cardinality() int
	// Contains reports membership.
	Contains(v csr.NodeId) bool
	// Add returns a new set with v inserted.
	Add(v csr.NodeId) Set
	// Remove returns a new set with v removed.
	Remove(v csr.NodeId) Set
	// Intersect returns a new set containing A ∩ B.
	Intersect(other Set) Set
	// IntersectCount returns |A ∩ B| without materializing the
	// intersection; implementations must make this at least as fast as
	// Intersect(other).Cardinality().
	IntersectCount(other Set) int
	// Union returns a new set containing A ∪ B.
	Union(other Set) Set
	// Difference returns a new set containing A \ B.
	Difference(other Set) Set
	// Iter returns the elements of the set. Sorted and Bitmap yield them
	// in ascending order; Hash's order is unspecified.
	Iter() []csr.NodeId
	// Clone returns a deep copy.
	Clone() Set
	// Kind reports which concrete implementation this value is.
	Kind() Kind
}

// InPlaceUnion is implemented by Set variants that support mutating
// A ∪= B on A itself instead of returning a new Set; the Bron–Kerbosch
// expansion step uses it when available. The Sorted Kind still builds a
// new backing slice for the result.
type InPlaceUnion interface {
	UnionInPlace(other Set)
}

// InPlaceDifference is the InPlace analogue of Difference.
type InPlaceDifference interface {
	DifferenceInPlace(other Set)
}

// Equal reports whether a and b contain the same elements, regardless
// of their concrete Kind or iteration order.
func Equal(a, b Set) bool {
	if a.Cardinality() != b.Cardinality() {
		return false
	}
	for _, v := range a.Iter() {
		if !b.Contains(v) {
			return false
		}
	}
	return true
}

// New constructs an empty Set of the given Kind.
func New(kind Kind) Set {
	switch kind {
	case Sorted:
		return newSorted(nil)
	case BitmapKind:
		return newBitmap(nil)
	case HashKind:
		return newHash(nil)
	default:
		panic("set: unknown Kind")
	}
}

// FromSlice constructs a Set of the given Kind from an unsorted slice of
// (possibly repeated) vertex IDs.
func FromSlice(kind Kind, vs []csr.NodeId) Set {
	switch kind {
	case Sorted:
		return newSorted(vs)
	case BitmapKind:
		return newBitmap(vs)
	case HashKind:
		return newHash(vs)
	default:
		panic("set: unknown Kind")
	}
}

// Range returns a Set of the given Kind containing exactly {0, ..., n-1}.
func Range(kind Kind, n int) Set {
	vs := make([]csr.NodeId, n)
	for i := range vs {
		vs[i] = csr.NodeId(i)
	}
	return FromSlice(kind, vs)
}
