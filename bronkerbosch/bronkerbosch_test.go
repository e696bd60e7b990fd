package bronkerbosch

import (
	"fmt"
	"sort"
	"testing"

	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/workers"
	"github.com/gmsgo/gms/order"
	"github.com/gmsgo/gms/set"
	"github.com/gmsgo/gms/setgraph"
)

func triangle() *csr.Graph {
	b := csr.NewBuilder(3, false, workers.DefaultConfig())
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(0, 2)
	return b.Build()
}

func path3() *csr.Graph {
	b := csr.NewBuilder(3, false, workers.DefaultConfig())
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	return b.Build()
}

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

func twoJoinedK4s() *csr.Graph {
	b := csr.NewBuilder(8, false, workers.DefaultConfig())
	for i := csr.NodeId(0); i <= 3; i++ {
		for j := i + 1; j <= 3; j++ {
			b.AddEdge(i, j)
		}
	}
	for i := csr.NodeId(4); i <= 7; i++ {
		for j := i + 1; j <= 7; j++ {
			b.AddEdge(i, j)
		}
	}
	b.AddEdge(3, 4)
	return b.Build()
}

// canonicalize maps a clique set to a sorted, stringified, order-
// independent representation so two clique sets can be compared for
// equality regardless of member order within a clique or clique order
// within the set.
func canonicalize(cliques [][]csr.NodeId) []string {
	out := make([]string, len(cliques))
	for i, c := range cliques {
		cp := append([]csr.NodeId(nil), c...)
		sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
		out[i] = fmt.Sprint(cp)
	}
	sort.Strings(out)
	return out
}

func tomitaCliques(g *csr.Graph, kind set.Kind) [][]csr.NodeId {
	sg := setgraph.FromCSR(g, kind)
	sink, cliques := CollectSink()
	Tomita(sg, kind, sink)
	return cliques()
}

func TestTomitaTriangle(t *testing.T) {
	got := canonicalize(tomitaCliques(triangle(), set.Sorted))
	want := canonicalize([][]csr.NodeId{{0, 1, 2}})
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Tomita(triangle) = %v, want %v", got, want)
	}
}

func TestTomitaPath(t *testing.T) {
	got := canonicalize(tomitaCliques(path3(), set.Sorted))
	want := canonicalize([][]csr.NodeId{{0, 1}, {1, 2}})
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Tomita(path3) = %v, want %v", got, want)
	}
}

func TestTomitaSixWheel(t *testing.T) {
	got := canonicalize(tomitaCliques(sixWheel(), set.Sorted))
	want := canonicalize([][]csr.NodeId{
		{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 6}, {0, 6, 1},
	})
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Tomita(sixWheel) = %v, want %v", got, want)
	}
}

func TestTomitaTwoJoinedK4s(t *testing.T) {
	got := canonicalize(tomitaCliques(twoJoinedK4s(), set.Sorted))
	// The bridge edge {3,4} lies in no triangle, so it is maximal too.
	want := canonicalize([][]csr.NodeId{
		{0, 1, 2, 3}, {4, 5, 6, 7}, {3, 4},
	})
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Tomita(twoJoinedK4s) = %v, want %v", got, want)
	}
}

// TestSetKindAgreement checks Tomita emits the same clique set regardless
// of which set.Kind backs the adjacency representation.
func TestSetKindAgreement(t *testing.T) {
	g := sixWheel()
	base := canonicalize(tomitaCliques(g, set.Sorted))
	for _, kind := range []set.Kind{set.BitmapKind, set.HashKind} {
		got := canonicalize(tomitaCliques(g, kind))
		if fmt.Sprint(got) != fmt.Sprint(base) {
			t.Errorf("kind %v: Tomita = %v, want %v", kind, got, base)
		}
	}
}

// TestVariantsAgree checks that Tomita, Eppstein, and Subgraph all emit
// exactly the same clique set (the spec's cross-variant determinism
// property) on every fixture.
func TestVariantsAgree(t *testing.T) {
	graphs := map[string]*csr.Graph{
		"triangle":     triangle(),
		"path3":        path3(),
		"sixWheel":     sixWheel(),
		"twoJoinedK4s": twoJoinedK4s(),
	}
	for name, g := range graphs {
		want := canonicalize(tomitaCliques(g, set.Sorted))

		ranking := order.Degeneracy(g)

		eppCfg := DefaultEppsteinConfig()
		eppCfg.Collect = true
		epp := Eppstein(g, ranking, eppCfg)
		if got := canonicalize(epp.Cliques); fmt.Sprint(got) != fmt.Sprint(want) {
			t.Errorf("%s: Eppstein = %v, want %v", name, got, want)
		}
		if int(epp.Count) != len(want) {
			t.Errorf("%s: Eppstein.Count = %d, want %d", name, epp.Count, len(want))
		}

		subCfg := DefaultSubgraphConfig()
		subCfg.Collect = true
		subCfg.Threshold = 1 // force induced-subgraph path on every vertex with any neighbor
		sub := Subgraph(g, ranking, subCfg)
		if got := canonicalize(sub.Cliques); fmt.Sprint(got) != fmt.Sprint(want) {
			t.Errorf("%s: Subgraph = %v, want %v", name, got, want)
		}
		if int(sub.Count) != len(want) {
			t.Errorf("%s: Subgraph.Count = %d, want %d", name, sub.Count, len(want))
		}
	}
}

// TestSubgraphThresholdAgreement checks the induced-subgraph path and the
// global-expansion fallback agree regardless of cfg.Threshold.
func TestSubgraphThresholdAgreement(t *testing.T) {
	g := sixWheel()
	ranking := order.Degeneracy(g)
	want := canonicalize(tomitaCliques(g, set.Sorted))

	for _, threshold := range []int{1, 2, 64} {
		cfg := DefaultSubgraphConfig()
		cfg.Collect = true
		cfg.Threshold = threshold
		got := canonicalize(Subgraph(g, ranking, cfg).Cliques)
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Errorf("threshold=%d: Subgraph = %v, want %v", threshold, got, want)
		}
	}
}
