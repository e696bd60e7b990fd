package ioedgelist

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/workers"
)

func TestReadEdgeListBasic(t *testing.T) {
	src := "# a comment\n0 1\n1 2\n\n0 2\n"
	g, err := ReadEdgeList(strings.NewReader(src), false, workers.DefaultConfig())
	if err != nil {
		t.Fatalf("ReadEdgeList: %v", err)
	}
	if g.NumNodes() != 3 {
		t.Errorf("NumNodes = %d, want 3", g.NumNodes())
	}
	if g.NumEdges() != 3 {
		t.Errorf("NumEdges = %d, want 3", g.NumEdges())
	}
	for _, e := range [][2]csr.NodeId{{0, 1}, {1, 2}, {0, 2}} {
		if !g.HasEdge(e[0], e[1]) {
			t.Errorf("missing edge %v", e)
		}
	}
}

func TestReadEdgeListBadLine(t *testing.T) {
	_, err := ReadEdgeList(strings.NewReader("0\n"), false, workers.DefaultConfig())
	if err == nil {
		t.Fatal("expected an error for a malformed line")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	src := "0 1\n1 2\n0 2\n2 3\n"
	g, err := ReadEdgeList(strings.NewReader(src), false, workers.DefaultConfig())
	if err != nil {
		t.Fatalf("ReadEdgeList: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, g); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	got, err := ReadSnapshot(&buf)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	if got.NumNodes() != g.NumNodes() {
		t.Errorf("NumNodes = %d, want %d", got.NumNodes(), g.NumNodes())
	}
	if got.NumEdges() != g.NumEdges() {
		t.Errorf("NumEdges = %d, want %d", got.NumEdges(), g.NumEdges())
	}
	if got.Directed() != g.Directed() {
		t.Errorf("Directed = %v, want %v", got.Directed(), g.Directed())
	}
	for v := 0; v < g.NumNodes(); v++ {
		want := g.OutNeigh(csr.NodeId(v))
		have := got.OutNeigh(csr.NodeId(v))
		if len(want) != len(have) {
			t.Fatalf("vertex %d: neighbor count %d, want %d", v, len(have), len(want))
		}
		for i := range want {
			if want[i] != have[i] {
				t.Errorf("vertex %d neighbor %d: got %d want %d", v, i, have[i], want[i])
			}
		}
	}
}

func TestReadSnapshotRejectsBadMagic(t *testing.T) {
	_, err := ReadSnapshot(strings.NewReader("not a snapshot"))
	if err == nil {
		t.Fatal("expected an error for bad magic")
	}
}
