package order

import (
	"testing"

	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/workers"
)

// sixWheel builds the hub-and-6-cycle graph used across the coloring,
// clique and bronkerbosch test suites: hub 0 connected to rim 1..6,
// rim forming a cycle.
func sixWheel() *csr.Graph {
	b := csr.NewBuilder(7, false, workers.DefaultConfig())
	for v := csr.NodeId(1); v <= 6; v++ {
		b.AddEdge(0, v)
	}
	for v := csr.NodeId(1); v < 6; v++ {
		b.AddEdge(v, v+1)
	}
	b.AddEdge(6, 1)
	return b.Build()
}

func TestIdentity(t *testing.T) {
	r := Identity(5)
	for v := 0; v < 5; v++ {
		if r.Order[v] != csr.NodeId(v) || r.Rank[v] != int32(v) {
			t.Fatalf("Identity(5) not identity at %d", v)
		}
	}
}

func TestRankingInvertRoundTrip(t *testing.T) {
	g := sixWheel()
	r := ByDegree(g)
	inv := r.Invert()
	back := inv.Invert()
	for v := range r.Order {
		if back.Order[v] != r.Order[v] {
			t.Fatalf("Invert().Invert() order mismatch at %d: got %d want %d", v, back.Order[v], r.Order[v])
		}
	}
}

func TestByDegreeHubFirst(t *testing.T) {
	g := sixWheel()
	r := ByDegree(g)
	if r.Order[0] != 0 {
		t.Fatalf("ByDegree: hub (degree 6) should rank first, got order[0]=%d", r.Order[0])
	}
}

func TestDegeneracyOfSixWheelIsThree(t *testing.T) {
	g := sixWheel()
	r := Degeneracy(g)
	if got := CoreNumber(g, r); got != 3 {
		t.Errorf("CoreNumber(Degeneracy) = %d, want 3", got)
	}
}

func TestDegeneracyOfTriangleIsTwo(t *testing.T) {
	b := csr.NewBuilder(3, false, workers.DefaultConfig())
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(0, 2)
	g := b.Build()
	r := Degeneracy(g)
	if got := CoreNumber(g, r); got != 2 {
		t.Errorf("CoreNumber(Degeneracy) = %d, want 2", got)
	}
}

func TestApproxDegeneracyValidForAllPolicies(t *testing.T) {
	g := sixWheel()
	floor := CoreNumber(g, ByDegree(g))
	for _, p := range []ThresholdPolicy{PolicyAvg, PolicyMin, PolicyProbMin, PolicyProbMedian} {
		cfg := DefaultApproxConfig()
		cfg.Policy = p
		r := ApproxDegeneracy(g, cfg)
		if len(r.Order) != g.NumNodes() {
			t.Fatalf("policy %d: order length = %d, want %d", p, len(r.Order), g.NumNodes())
		}
		seen := make(map[csr.NodeId]bool)
		for _, v := range r.Order {
			if seen[v] {
				t.Fatalf("policy %d: duplicate vertex %d in ordering", p, v)
			}
			seen[v] = true
		}
		if got := CoreNumber(g, r); got > floor {
			t.Errorf("policy %d: CoreNumber = %d, exceeds ByDegree floor %d", p, got, floor)
		}
	}
}

func TestDirectProducesAcyclicOrientation(t *testing.T) {
	g := sixWheel()
	r := Degeneracy(g)
	dg := Direct(g, r)
	if !dg.Directed() {
		t.Fatalf("Direct output should be directed")
	}
	for v := 0; v < dg.NumNodes(); v++ {
		for _, w := range dg.OutNeigh(csr.NodeId(v)) {
			if r.Rank[w] <= r.Rank[v] {
				t.Errorf("Direct: edge %d->%d violates rank ordering", v, w)
			}
		}
	}
}

func TestDirectMaxOutDegreeWithinCoreNumber(t *testing.T) {
	g := sixWheel()
	r := Degeneracy(g)
	dg := Direct(g, r)
	maxOut := 0
	for v := 0; v < dg.NumNodes(); v++ {
		if d := dg.OutDegree(csr.NodeId(v)); d > maxOut {
			maxOut = d
		}
	}
	if maxOut > CoreNumber(g, r) {
		t.Errorf("max directed out-degree %d exceeds core number %d", maxOut, CoreNumber(g, r))
	}
}
