package order

import "github.com/gmsgo/gms/csr"

// Degeneracy computes the exact vertex degeneracy ordering via
// Matula–Beck bucket-list peeling: repeatedly remove a vertex of
// minimum remaining degree, recording removal order. The maximum
// remaining-degree seen at removal time is the graph's degeneracy.
func Degeneracy(g *csr.Graph) Ranking {
	n := g.NumNodes()
	deg := make([]int, n)
	maxDeg := 0
	for v := 0; v < n; v++ {
		deg[v] = g.OutDegree(csr.NodeId(v))
		if deg[v] > maxDeg {
			maxDeg = deg[v]
		}
	}

	// bucket[d] holds the vertices currently at remaining-degree d, and
	// pos[v] is v's index within its bucket, so that removal and
	// degree-decrement are both O(1).
	buckets := make([][]csr.NodeId, maxDeg+1)
	pos := make([]int, n)
	removed := make([]bool, n)
	for v := 0; v < n; v++ {
		d := deg[v]
		pos[v] = len(buckets[d])
		buckets[d] = append(buckets[d], csr.NodeId(v))
	}

	order := make([]csr.NodeId, 0, n)
	curMin := 0
	for len(order) < n {
		for curMin <= maxDeg && len(buckets[curMin]) == 0 {
			curMin++
		}
		b := buckets[curMin]
		v := b[len(b)-1]
		buckets[curMin] = b[:len(b)-1]
		removed[v] = true
		order = append(order, v)

		for _, w := range g.OutNeigh(v) {
			if removed[w] {
				continue
			}
			oldD := deg[w]
			// swap-remove w from its current bucket
			wb := buckets[oldD]
			last := len(wb) - 1
			wPos := pos[w]
			wb[wPos] = wb[last]
			pos[wb[wPos]] = wPos
			buckets[oldD] = wb[:last]

			newD := oldD - 1
			deg[w] = newD
			pos[w] = len(buckets[newD])
			buckets[newD] = append(buckets[newD], w)
			if newD < curMin {
				curMin = newD
			}
		}
	}

	rank := make([]int32, n)
	for p, v := range order {
		rank[v] = int32(p)
	}
	return Ranking{Order: order, Rank: rank}
}
