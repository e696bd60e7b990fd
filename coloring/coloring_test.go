package coloring

import (
	"testing"

	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/workers"
)

func triangle() *csr.Graph {
	b := csr.NewBuilder(3, false, workers.DefaultConfig())
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(0, 2)
	return b.Build()
}

func path() *csr.Graph {
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

func numColors(colors []ColorId) int {
	seen := map[ColorId]bool{}
	for _, c := range colors {
		seen[c] = true
	}
	return len(seen)
}

type algo struct {
	name string
	run  func(g *csr.Graph) Result
}

func algorithms() []algo {
	return []algo{
		{"Barenboim", func(g *csr.Graph) Result { return Barenboim(g, DefaultBarenboimConfig()) }},
		{"Elkin", func(g *csr.Graph) Result { return Elkin(g, DefaultElkinConfig()) }},
		{"Johansson", func(g *csr.Graph) Result { return Johansson(g, DefaultJohanssonConfig()) }},
		{"JonesV1", func(g *csr.Graph) Result { return JonesV1(g, DefaultJonesV1Config()) }},
		{"JonesV3", func(g *csr.Graph) Result { return JonesV3(g, DefaultJonesV3Config()) }},
		{"JonesV4", func(g *csr.Graph) Result { return JonesV4(g, DefaultJonesV4Config()) }},
	}
}

func TestAllAlgorithmsProduceValidColoringTriangle(t *testing.T) {
	g := triangle()
	for _, a := range algorithms() {
		t.Run(a.name, func(t *testing.T) {
			res := a.run(g)
			if !Verify(g, res.Colors) {
				t.Fatalf("%s: invalid coloring %v", a.name, res.Colors)
			}
			if n := numColors(res.Colors); n != 3 {
				t.Errorf("%s: triangle used %d colors, want 3", a.name, n)
			}
		})
	}
}

func TestAllAlgorithmsProduceValidColoringPath(t *testing.T) {
	g := path()
	for _, a := range algorithms() {
		t.Run(a.name, func(t *testing.T) {
			res := a.run(g)
			if !Verify(g, res.Colors) {
				t.Fatalf("%s: invalid coloring %v", a.name, res.Colors)
			}
			if n := numColors(res.Colors); n != 2 {
				t.Errorf("%s: path used %d colors, want 2", a.name, n)
			}
		})
	}
}

func TestAllAlgorithmsProduceValidColoringSixWheel(t *testing.T) {
	g := sixWheel()
	for _, a := range algorithms() {
		t.Run(a.name, func(t *testing.T) {
			res := a.run(g)
			if !Verify(g, res.Colors) {
				t.Fatalf("%s: invalid coloring %v", a.name, res.Colors)
			}
		})
	}
}

func TestDenseSparseValidOnSixWheel(t *testing.T) {
	g := sixWheel()
	res := DenseSparse(g, DefaultDenseSparseConfig())
	if !Verify(g, res.Colors) {
		t.Fatalf("DenseSparse: invalid coloring %v", res.Colors)
	}
}

func TestDenseSparseValidOnTriangle(t *testing.T) {
	g := triangle()
	res := DenseSparse(g, DefaultDenseSparseConfig())
	if !Verify(g, res.Colors) {
		t.Fatalf("DenseSparse: invalid coloring %v", res.Colors)
	}
}

func TestVerifyRejectsBadColoring(t *testing.T) {
	g := triangle()
	bad := []ColorId{1, 1, 2}
	if Verify(g, bad) {
		t.Fatalf("Verify accepted a coloring with adjacent equal colors")
	}
}

func TestPaletteRemoveAndHas(t *testing.T) {
	p := NewPalette(5)
	if p.Len() != 5 {
		t.Fatalf("NewPalette(5).Len() = %d, want 5", p.Len())
	}
	p.Remove(3)
	if p.Has(3) {
		t.Errorf("palette still has 3 after Remove")
	}
	if p.Len() != 4 {
		t.Errorf("Len() = %d, want 4", p.Len())
	}
}
