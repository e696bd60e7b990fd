package gen

import (
	"testing"

	"github.com/gmsgo/gms/csr"
)

func TestUniformZeroProbabilityIsEdgeless(t *testing.T) {
	g := Uniform(20, 0, 1)
	if g.NumEdges() != 0 {
		t.Errorf("Uniform(p=0) has %d edges, want 0", g.NumEdges())
	}
}

func TestUniformFullProbabilityIsComplete(t *testing.T) {
	n := 10
	g := Uniform(n, 1, 1)
	want := int64(n * (n - 1) / 2)
	if g.NumEdges() != want {
		t.Errorf("Uniform(p=1) has %d edges, want %d", g.NumEdges(), want)
	}
}

func TestUniformDeterministic(t *testing.T) {
	a := Uniform(200, 0.05, 42)
	b := Uniform(200, 0.05, 42)
	if a.NumEdges() != b.NumEdges() {
		t.Fatalf("same seed gave different edge counts: %d vs %d", a.NumEdges(), b.NumEdges())
	}
	for v := 0; v < a.NumNodes(); v++ {
		an, bn := a.OutNeigh(csr.NodeId(v)), b.OutNeigh(csr.NodeId(v))
		if len(an) != len(bn) {
			t.Fatalf("vertex %d: degree mismatch between identical seeds", v)
		}
		for i := range an {
			if an[i] != bn[i] {
				t.Fatalf("vertex %d: neighbor %d differs between identical seeds", v, i)
			}
		}
	}
}

func TestKroneckerProducesRequestedScale(t *testing.T) {
	g := Kronecker(6, 8, 7)
	if g.NumNodes() != 64 {
		t.Errorf("Kronecker(scale=6) has %d nodes, want 64", g.NumNodes())
	}
	if g.NumEdges() == 0 {
		t.Error("Kronecker produced no edges")
	}
}

func TestKroneckerDeterministic(t *testing.T) {
	a := Kronecker(5, 8, 99)
	b := Kronecker(5, 8, 99)
	if a.NumEdges() != b.NumEdges() {
		t.Errorf("same seed gave different edge counts: %d vs %d", a.NumEdges(), b.NumEdges())
	}
}
