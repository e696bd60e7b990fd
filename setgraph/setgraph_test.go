package setgraph

import (
	"testing"

	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/workers"
	"github.com/gmsgo/gms/set"
)

func diamond() *csr.Graph {
	// 0-1, 0-2, 1-2, 1-3, 2-3 : a diamond (two triangles sharing edge 1-2)
	b := csr.NewBuilder(4, false, workers.DefaultConfig())
	b.AddEdge(0, 1)
	b.AddEdge(0, 2)
	b.AddEdge(1, 2)
	b.AddEdge(1, 3)
	b.AddEdge(2, 3)
	return b.Build()
}

func TestFromCSRDegreesMatch(t *testing.T) {
	g := diamond()
	for _, k := range []set.Kind{set.Sorted, set.BitmapKind, set.HashKind} {
		sg := FromCSR(g, k)
		if sg.NumNodes() != 4 {
			t.Fatalf("NumNodes() = %d, want 4", sg.NumNodes())
		}
		for v := csr.NodeId(0); v < 4; v++ {
			if sg.Degree(v) != g.OutDegree(v) {
				t.Errorf("Degree(%d) = %d, want %d", v, sg.Degree(v), g.OutDegree(v))
			}
		}
	}
}

func TestCommonNeighborCount(t *testing.T) {
	g := diamond()
	sg := FromCSR(g, set.Sorted)
	// N(0) = {1,2}, N(3) = {1,2} -> intersection {1,2}
	if got := sg.CommonNeighborCount(0, 3); got != 2 {
		t.Errorf("CommonNeighborCount(0,3) = %d, want 2", got)
	}
}

func TestInduced(t *testing.T) {
	g := diamond()
	sg := FromCSR(g, set.Sorted)
	restrict := set.FromSlice(set.Sorted, []csr.NodeId{2, 3})
	ind := sg.Induced(1, restrict)
	if ind.Cardinality() != 2 || !ind.Contains(2) || !ind.Contains(3) {
		t.Errorf("Induced(1, {2,3}) = %v, want {2,3}", ind.Iter())
	}
}

func TestHasEdge(t *testing.T) {
	g := diamond()
	sg := FromCSR(g, set.BitmapKind)
	if !sg.HasEdge(1, 2) {
		t.Errorf("HasEdge(1,2) = false, want true")
	}
	if sg.HasEdge(0, 3) {
		t.Errorf("HasEdge(0,3) = true, want false")
	}
}
