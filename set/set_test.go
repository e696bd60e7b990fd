package set

import (
	"testing"

	"github.com/gmsgo/gms/csr"
)

var allKinds = []Kind{Sorted, BitmapKind, HashKind}

func kindName(k Kind) string {
	switch k {
	case Sorted:
		return "Sorted"
	case BitmapKind:
		return "Bitmap"
	case HashKind:
		return "Hash"
	default:
		return "?"
	}
}

func ids(vs ...int) []csr.NodeId {
	out := make([]csr.NodeId, len(vs))
	for i, v := range vs {
		out[i] = csr.NodeId(v)
	}
	return out
}

// TestMembership checks Contains/Cardinality/Iter agree with the
// deduplicated input across every Kind.
func TestMembership(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			s := FromSlice(k, ids(5, 1, 3, 1, 5, 9))
			if s.Cardinality() != 4 {
				t.Fatalf("Cardinality() = %d, want 4", s.Cardinality())
			}
			for _, v := range []int{1, 3, 5, 9} {
				if !s.Contains(csr.NodeId(v)) {
					t.Errorf("Contains(%d) = false, want true", v)
				}
			}
			if s.Contains(2) {
				t.Errorf("Contains(2) = true, want false")
			}
			if !Equal(s, FromSlice(Sorted, ids(9, 5, 3, 1))) {
				t.Errorf("Equal mismatch against reference Sorted set")
			}
		})
	}
}

// TestAddRemove checks Add/Remove return a new set without mutating the
// receiver, for every Kind.
func TestAddRemove(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			s := FromSlice(k, ids(1, 2, 3))
			added := s.Add(4)
			if s.Contains(4) {
				t.Errorf("Add mutated receiver")
			}
			if !added.Contains(4) || added.Cardinality() != 4 {
				t.Errorf("Add result wrong: card=%d, want 4", added.Cardinality())
			}

			removed := added.Remove(2)
			if !added.Contains(2) {
				t.Errorf("Remove mutated receiver")
			}
			if removed.Contains(2) || removed.Cardinality() != 3 {
				t.Errorf("Remove result wrong: card=%d, want 3", removed.Cardinality())
			}
		})
	}
}

// TestIntersectCountMatchesIntersect enforces the Set contract's
// requirement that IntersectCount agree with Intersect(...).Cardinality().
func TestIntersectCountMatchesIntersect(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			a := FromSlice(k, ids(1, 2, 3, 4, 5))
			b := FromSlice(k, ids(3, 4, 5, 6, 7))
			if got, want := a.IntersectCount(b), a.Intersect(b).Cardinality(); got != want {
				t.Errorf("IntersectCount() = %d, Intersect().Cardinality() = %d", got, want)
			}
		})
	}
}

// TestAlgebraicLaws exercises the set-algebra identities every Kind must
// satisfy, checked against each other and against the Sorted reference.
func TestAlgebraicLaws(t *testing.T) {
	a := ids(1, 2, 3, 4, 5, 10)
	b := ids(3, 4, 5, 6, 7, 11)
	c := ids(4, 5, 6, 8, 9)

	for _, ka := range allKinds {
		for _, kb := range allKinds {
			for _, kc := range allKinds {
				t.Run(kindName(ka)+"_"+kindName(kb)+"_"+kindName(kc), func(t *testing.T) {
					A := FromSlice(ka, a)
					B := FromSlice(kb, b)
					C := FromSlice(kc, c)

					// Commutativity.
					if !Equal(A.Intersect(B), B.Intersect(A)) {
						t.Errorf("intersect not commutative")
					}
					if !Equal(A.Union(B), B.Union(A)) {
						t.Errorf("union not commutative")
					}

					// Associativity.
					if !Equal(A.Intersect(B).Intersect(C), A.Intersect(B.Intersect(C))) {
						t.Errorf("intersect not associative")
					}
					if !Equal(A.Union(B).Union(C), A.Union(B.Union(C))) {
						t.Errorf("union not associative")
					}

					// Idempotence.
					if !Equal(A.Union(A), A) {
						t.Errorf("union not idempotent")
					}
					if !Equal(A.Intersect(A), A) {
						t.Errorf("intersect not idempotent")
					}

					// Absorption.
					if !Equal(A.Union(A.Intersect(B)), A) {
						t.Errorf("absorption A ∪ (A ∩ B) = A failed")
					}
					if !Equal(A.Intersect(A.Union(B)), A) {
						t.Errorf("absorption A ∩ (A ∪ B) = A failed")
					}

					// De Morgan over a common universe U.
					u := FromSlice(Sorted, append(append(append([]csr.NodeId{}, a...), b...), c...))
					notA := u.Difference(A)
					notB := u.Difference(B)
					lhs := u.Difference(A.Intersect(B))
					rhs := notA.Union(notB)
					if !Equal(lhs, rhs) {
						t.Errorf("De Morgan U\\(A∩B) = (U\\A)∪(U\\B) failed")
					}

					// A \ A = ∅.
					if A.Difference(A).Cardinality() != 0 {
						t.Errorf("A \\ A not empty")
					}
				})
			}
		}
	}
}

// TestInPlaceOps checks UnionInPlace/DifferenceInPlace match the
// value-semantics equivalents, for Kinds that implement them.
func TestInPlaceOps(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			a := FromSlice(k, ids(1, 2, 3))
			b := FromSlice(k, ids(3, 4, 5))
			want := a.Union(b)

			if ip, ok := a.(InPlaceUnion); ok {
				ip.UnionInPlace(b)
				if !Equal(a, want) {
					t.Errorf("UnionInPlace result = %v, want %v", a.Iter(), want.Iter())
				}
			}

			c := FromSlice(k, ids(1, 2, 3))
			wantDiff := c.Difference(b)
			if ip, ok := c.(InPlaceDifference); ok {
				ip.DifferenceInPlace(b)
				if !Equal(c, wantDiff) {
					t.Errorf("DifferenceInPlace result = %v, want %v", c.Iter(), wantDiff.Iter())
				}
			}
		})
	}
}

func TestRange(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			s := Range(k, 5)
			if s.Cardinality() != 5 {
				t.Fatalf("Cardinality() = %d, want 5", s.Cardinality())
			}
			for v := 0; v < 5; v++ {
				if !s.Contains(csr.NodeId(v)) {
					t.Errorf("Range(5) missing %d", v)
				}
			}
		})
	}
}
