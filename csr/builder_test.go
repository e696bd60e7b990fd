package csr

import (
	"reflect"
	"testing"

	"github.com/gmsgo/gms/internal/workers"
)

func triangle() *Graph {
	b := NewBuilder(3, false, workers.DefaultConfig())
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(0, 2)
	return b.Build()
}

func TestBuildUndirectedSymmetric(t *testing.T) {
	g := triangle()
	if g.NumNodes() != 3 {
		t.Fatalf("NumNodes() = %d, want 3", g.NumNodes())
	}
	if g.NumEdges() != 3 {
		t.Fatalf("NumEdges() = %d, want 3", g.NumEdges())
	}
	for v := NodeId(0); v < 3; v++ {
		for _, w := range g.OutNeigh(v) {
			if !g.HasEdge(w, v) {
				t.Errorf("undirected symmetry violated: %d->%d but not %d->%d", v, w, w, v)
			}
		}
	}
}

func TestBuildSortsAndDedups(t *testing.T) {
	b := NewBuilder(4, true, workers.DefaultConfig())
	b.AddEdge(0, 3)
	b.AddEdge(0, 1)
	b.AddEdge(0, 1) // duplicate
	b.AddEdge(0, 0) // self-loop
	g := b.Build()

	got := g.OutNeigh(0)
	want := []NodeId{1, 3}
	if !reflect.DeepEqual([]NodeId(got), want) {
		t.Fatalf("OutNeigh(0) = %v, want %v", got, want)
	}
}

func TestOutDegreeMatchesNeighLength(t *testing.T) {
	g := triangle()
	for v := NodeId(0); v < 3; v++ {
		if g.OutDegree(v) != len(g.OutNeigh(v)) {
			t.Errorf("OutDegree(%d) = %d, len(OutNeigh) = %d", v, g.OutDegree(v), len(g.OutNeigh(v)))
		}
	}
}

func TestRelabelByDegreePreservesStructure(t *testing.T) {
	b := NewBuilder(5, false, workers.DefaultConfig())
	// star centered on 0
	for v := NodeId(1); v < 5; v++ {
		b.AddEdge(0, v)
	}
	g := b.Build()

	relabeled, newID := RelabelByDegree(g)
	if relabeled.NumNodes() != g.NumNodes() || relabeled.NumEdges() != g.NumEdges() {
		t.Fatalf("relabel changed graph size: got n=%d m=%d, want n=%d m=%d",
			relabeled.NumNodes(), relabeled.NumEdges(), g.NumNodes(), g.NumEdges())
	}
	// The center (old ID 0, the only degree-4 vertex) must map to new ID 0,
	// since degrees must be non-increasing in the new ID order.
	if newID[0] != 0 {
		t.Errorf("center vertex relabeled to %d, want 0 (highest degree)", newID[0])
	}
	if relabeled.OutDegree(0) != 4 {
		t.Errorf("relabeled center out-degree = %d, want 4", relabeled.OutDegree(0))
	}
}
