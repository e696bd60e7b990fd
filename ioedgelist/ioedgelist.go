// Package ioedgelist reads and writes the two on-disk graph formats the
// benchmark harness accepts: a plain-text edge list (one "u v" pair per
// line, "#"-prefixed comment lines skipped) and a binary ".sg" snapshot
// (a small header followed by the raw CSR offsets and neighbors arrays),
// for loading pre-built graphs without repeating the sort-and-dedup pass
// csr.Builder performs.
package ioedgelist

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/workers"
)

// ErrBadFormat is returned when an edge-list line cannot be parsed as a
// "u v" pair.
var ErrBadFormat = errors.New("ioedgelist: malformed line")

// ErrBadSnapshot is returned when a .sg file's header fails validation.
var ErrBadSnapshot = errors.New("ioedgelist: not a valid snapshot")

const snapshotMagic = "GMS1"

// ReadEdgeList parses a whitespace-separated "u v" edge list from r,
// skipping blank lines and lines beginning with "#". Vertex IDs need not
// be pre-declared: the graph is sized to one more than the largest ID
// seen. directed controls whether edges are symmetrized (see
// csr.NewBuilder; an undirected Builder symmetrizes in Build).
func ReadEdgeList(r io.Reader, directed bool, cfg workers.Config) (*csr.Graph, error) {
	var edges []csr.Edge
	var maxID int64 = -1

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadFormat, lineNo, line)
		}
		u, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadFormat, lineNo, err)
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadFormat, lineNo, err)
		}
		edges = append(edges, csr.Edge{U: csr.NodeId(u), V: csr.NodeId(v)})
		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	b := csr.NewBuilder(int(maxID+1), directed, cfg)
	for _, e := range edges {
		b.AddEdge(e.U, e.V)
	}
	return b.Build(), nil
}

// WriteSnapshot serializes g to w as a .sg binary snapshot: a fixed
// header (magic, directed flag, node count, neighbor count) followed by
// the Offsets array (int64, little-endian, NumNodes+1 entries) and the
// Neighbors array (int32, little-endian, NumEdges-ish entries — exactly
// len(g.Neighbors)).
func WriteSnapshot(w io.Writer, g *csr.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(snapshotMagic); err != nil {
		return err
	}
	directed := byte(0)
	if g.Directed() {
		directed = 1
	}
	if err := bw.WriteByte(directed); err != nil {
		return err
	}
	header := [2]int64{int64(g.NumNodes()), int64(len(g.Neighbors))}
	if err := binary.Write(bw, binary.LittleEndian, header); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, g.Offsets); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, g.Neighbors); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadSnapshot deserializes a .sg snapshot written by WriteSnapshot. The
// offsets and neighbors arrays are trusted to already be sorted
// ascending per vertex (WriteSnapshot only ever serializes a csr.Graph,
// which maintains that invariant), so the result is built directly via
// csr.FromSortedCSR without re-sorting.
func ReadSnapshot(r io.Reader) (*csr.Graph, error) {
	br := bufio.NewReader(r)

	magic := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	if string(magic) != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrBadSnapshot, magic)
	}
	directedByte, err := br.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}

	var header [2]int64
	if err := binary.Read(br, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	numNodes, numNeighbors := int(header[0]), int(header[1])
	if numNodes < 0 || numNeighbors < 0 {
		return nil, fmt.Errorf("%w: negative size in header", ErrBadSnapshot)
	}

	offsets := make([]int64, numNodes+1)
	if err := binary.Read(br, binary.LittleEndian, offsets); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	neighbors := make([]csr.NodeId, numNeighbors)
	if err := binary.Read(br, binary.LittleEndian, neighbors); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}

	return csr.FromSortedCSR(numNodes, offsets, neighbors, directedByte != 0), nil
}
