// Package clique implements the Danisch k-clique listing/counting
// kernel over a degeneracy-directed CSR graph, with node-parallel,
// edge-parallel, and edge-task drivers, plus an independent verifier.
package clique

import "github.com/gmsgo/gms/csr"

// Kernel is a single-goroutine instance of the recursive Danisch
// k-clique counting kernel. A Kernel owns its own label/subgraph/degree
// arrays so that node-parallel and edge-parallel drivers can give each
// worker goroutine an independent Kernel without any shared mutable
// state between them.
type Kernel struct {
	g *csr.Graph
	// neighbors is a private copy of g.Neighbors: orderAndCount
	// partitions each vertex's neighbor range in place (matching
	// neighbors) in the subgraph to the front, and doing that on a
	// shared copy would let concurrent Kernels over the same graph
	// race and would permanently disorder g's own sorted neighborhoods.
	neighbors []csr.NodeId
	k         int
	label     []int32       // label[v] == level iff v currently belongs to the working subgraph at that level
	subGraph  [][]csr.NodeId // subGraph[level] is the vertex set of the level-sized working subgraph
	subDegree [][]int32      // subDegree[level][v] is v's degree restricted to subGraph[level], indexed by global v
	count     uint64
}

// NewKernel returns a Kernel for counting k-cliques (k>=2) over g, which
// must be a directed CSR in which an edge u->v exists only when u
// precedes v in some fixed vertex ranking (typically a degeneracy
// ordering via order.Direct): this bounds each vertex's out-degree by
// the graph's degeneracy and is what gives the kernel its running time.
func NewKernel(g *csr.Graph, k int) *Kernel {
	n := g.NumNodes()
	label := make([]int32, n)
	subGraph := make([][]csr.NodeId, k+1)
	subDegree := make([][]int32, k+1)
	for i := 2; i <= k; i++ {
		subDegree[i] = make([]int32, n)
	}
	neighbors := append([]csr.NodeId(nil), g.Neighbors...)
	return &Kernel{g: g, neighbors: neighbors, k: k, label: label, subGraph: subGraph, subDegree: subDegree}
}

// CountAll counts every k-clique in the graph the Kernel was built
// against.
func (kn *Kernel) CountAll() uint64 {
	return kn.countFrom(allNodes(kn.g.NumNodes()))
}

// countFrom counts k-cliques whose lowest-ranked vertex is one of
// roots, used by the node-parallel driver to partition the outer loop
// across goroutines without any vertex being double-counted (since
// every k-clique has a unique lowest-ranked member in the directed
// graph's ranking).
func (kn *Kernel) countFrom(roots []csr.NodeId) uint64 {
	n := kn.g.NumNodes()
	k := kn.k
	if k == 1 {
		return uint64(len(roots))
	}
	if k == 2 {
		var total uint64
		for _, v := range roots {
			total += uint64(kn.g.OutDegree(v))
		}
		return total
	}

	for i := 0; i < n; i++ {
		kn.label[i] = int32(k)
	}
	kn.subGraph[k] = roots
	// subDegree[k] must be populated for every vertex, not just roots:
	// buildSubGraph/orderAndCount at the top level dereference it for
	// any vertex that turns up as a neighbor of a root, which need not
	// itself be a root when roots is a restricted chunk.
	for i := 0; i < n; i++ {
		kn.subDegree[k][i] = int32(kn.g.OutDegree(csr.NodeId(i)))
	}

	kn.count = 0
	for _, v := range kn.subGraph[k] {
		kn.listing(v, k)
	}
	return kn.count
}

// listing implements the recursive level of the Danisch kernel: build
// the next-level-down working subgraph from node's neighbors still
// labeled `level`, compute each of those neighbors' degree restricted to
// that subgraph, recurse, then restore labels before returning.
func (kn *Kernel) listing(node csr.NodeId, level int) {
	if level == 2 {
		kn.doCounting(node)
		return
	}

	kn.buildSubGraph(node, level)
	kn.orderAndCount(level)
	for _, v := range kn.subGraph[level-1] {
		kn.listing(v, level-1)
	}
	kn.restoreLabels(level)
}

// outNeigh returns the private, kernel-owned copy of node's
// out-neighborhood, which orderAndCount is free to reorder.
func (kn *Kernel) outNeigh(node csr.NodeId) []csr.NodeId {
	return kn.neighbors[kn.g.Offsets[node]:kn.g.Offsets[node+1]]
}

func (kn *Kernel) buildSubGraph(node csr.NodeId, level int) {
	kn.subGraph[level-1] = kn.subGraph[level-1][:0]
	neigh := kn.outNeigh(node)
	deg := int(kn.subDegree[level][node])
	if deg > len(neigh) {
		deg = len(neigh)
	}
	for _, w := range neigh[:deg] {
		if kn.label[w] == int32(level) {
			kn.label[w] = int32(level - 1)
			kn.subGraph[level-1] = append(kn.subGraph[level-1], w)
			kn.subDegree[level-1][w] = 0
		}
	}
}

// orderAndCount computes, for each vertex of the just-built level-1
// subgraph, how many of its own directed neighbors also belong to that
// subgraph, partitioning its neighbor list in place so the matching
// prefix can be addressed directly by buildSubGraph on the next
// recursive level.
func (kn *Kernel) orderAndCount(level int) {
	for _, innerNode := range kn.subGraph[level-1] {
		full := kn.outNeigh(innerNode)
		deg := int(kn.subDegree[level][innerNode])
		if deg > len(full) {
			deg = len(full)
		}
		neigh := full[:deg]
		i, last := 0, len(neigh)
		for i < last {
			if kn.label[neigh[i]] == int32(level-1) {
				kn.subDegree[level-1][innerNode]++
				i++
			} else {
				last--
				neigh[i], neigh[last] = neigh[last], neigh[i]
			}
		}
	}
}

func (kn *Kernel) restoreLabels(level int) {
	for _, v := range kn.subGraph[level-1] {
		kn.label[v] = int32(level)
	}
}

// doCounting is the level-2 base case for one member node of
// subGraph[2]: every neighbor of node still inside that subgraph closes
// one k-clique.
func (kn *Kernel) doCounting(node csr.NodeId) {
	kn.count += uint64(kn.subDegree[2][node])
}

// countEdge counts k-cliques whose two lowest-ranked members are exactly
// u and v (a directed edge u->v), used by the edge-parallel and
// edge-task drivers to partition the search space across edges instead
// of vertices. The pair's remaining k-2 members must all be common
// out-neighbors of both u and v, so the level-(k-2) subgraph is seeded
// directly from that intersection rather than from a single root's
// neighborhood.
func (kn *Kernel) countEdge(u, v csr.NodeId) uint64 {
	k := kn.k
	if k == 2 {
		return 1
	}
	// Intersected from g's own immutable neighbor arrays, never from
	// kn.neighbors: repeated countFrom/countEdge calls on this Kernel
	// permute kn.neighbors's per-vertex order (in-place partitioning at
	// the top recursion level touches a vertex's whole neighborhood), so
	// only g's arrays are guaranteed to still be ascending-sorted here.
	cand := intersectSorted(kn.g.OutNeigh(u), kn.g.OutNeigh(v))
	if k == 3 {
		return uint64(len(cand))
	}

	n := kn.g.NumNodes()
	candLevel := int32(k - 2)
	for i := 0; i < n; i++ {
		kn.label[i] = int32(k) // sentinel distinct from every real recursion level (all < k)
	}
	for _, w := range cand {
		kn.label[w] = candLevel
	}
	kn.subGraph[k-2] = cand
	for _, w := range cand {
		full := kn.outNeigh(w)
		i, last := 0, len(full)
		count := 0
		for i < last {
			if kn.label[full[i]] == candLevel {
				count++
				i++
			} else {
				last--
				full[i], full[last] = full[last], full[i]
			}
		}
		kn.subDegree[k-2][w] = int32(count)
	}

	kn.count = 0
	for _, w := range cand {
		kn.listing(w, k-2)
	}
	total := kn.count
	for _, w := range cand {
		kn.label[w] = int32(k)
	}
	return total
}

// intersectSorted returns the sorted intersection of two ascending-sorted
// slices without mutating either.
func intersectSorted(a, b []csr.NodeId) []csr.NodeId {
	var out []csr.NodeId
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

func allNodes(n int) []csr.NodeId {
	out := make([]csr.NodeId, n)
	for i := range out {
		out[i] = csr.NodeId(i)
	}
	return out
}
