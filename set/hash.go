package set

import "github.com/gmsgo/gms/csr"

// hashSet is an open-addressed hash set of vertex IDs using Robin Hood
// probing: on insertion, an entry that has probed farther from its ideal
// slot than the occupant it is examining steals that slot, bounding the
// worst-case probe length and keeping variance low compared to plain
// linear probing. Iteration order is unspecified; callers that need
// sorted output should use Sorted instead.
type hashSet struct {
	slots []slot
	count int
}

type slot struct {
	used bool
	dist int32
	v    csr.NodeId
}

const hashLoadFactor = 0.75

func newHash(vs []csr.NodeId) *hashSet {
	h := &hashSet{}
	h.grow(nextPow2(len(vs)*2 + 8))
	for _, v := range vs {
		h.insert(v)
	}
	return h
}

func nextPow2(n int) int {
	p := 8
	for p < n {
		p *= 2
	}
	return p
}

func fnv1a(v int32) uint32 {
	h := uint32(2166136261)
	for i := 0; i < 4; i++ {
		h ^= uint32(v) & 0xff
		h *= 16777619
		v >>= 8
	}
	return h
}

func (h *hashSet) grow(newCap int) {
	old := h.slots
	h.slots = make([]slot, newCap)
	h.count = 0
	for _, s := range old {
		if s.used {
			h.insert(s.v)
		}
	}
}

func (h *hashSet) maybeGrow() {
	if float64(h.count+1) > hashLoadFactor*float64(len(h.slots)) {
		h.grow(len(h.slots) * 2)
	}
}

func (h *hashSet) insert(v csr.NodeId) bool {
	h.maybeGrow()
	mask := uint32(len(h.slots) - 1)
	idx := fnv1a(int32(v)) & mask
	cur := slot{used: true, dist: 0, v: v}
	for {
		s := &h.slots[idx]
		if !s.used {
			*s = cur
			h.count++
			return true
		}
		if s.v == cur.v {
			return false
		}
		if s.dist < cur.dist {
			cur, *s = *s, cur
		}
		cur.dist++
		idx = (idx + 1) & mask
	}
}

func (h *hashSet) Kind() Kind       { return HashKind }
func (h *hashSet) Cardinality() int { return h.count }

func (h *hashSet) Contains(v csr.NodeId) bool {
	if len(h.slots) == 0 {
		return false
	}
	mask := uint32(len(h.slots) - 1)
	idx := fnv1a(int32(v)) & mask
	var dist int32
	for {
		s := h.slots[idx]
		if !s.used || dist > s.dist {
			return false
		}
		if s.v == v {
			return true
		}
		dist++
		idx = (idx + 1) & mask
	}
}

func (h *hashSet) Iter() []csr.NodeId {
	out := make([]csr.NodeId, 0, h.count)
	for _, s := range h.slots {
		if s.used {
			out = append(out, s.v)
		}
	}
	return out
}

func (h *hashSet) Add(v csr.NodeId) Set {
	out := h.Clone().(*hashSet)
	out.insert(v)
	return out
}

func (h *hashSet) Remove(v csr.NodeId) Set {
	out := h.Clone().(*hashSet)
	out.remove(v)
	return out
}

// remove deletes v using backward-shift deletion, the standard Robin
// Hood removal that slides subsequent entries back to close the probe
// gap instead of leaving a tombstone.
func (h *hashSet) remove(v csr.NodeId) bool {
	if len(h.slots) == 0 {
		return false
	}
	mask := uint32(len(h.slots) - 1)
	idx := fnv1a(int32(v)) & mask
	var dist int32
	for {
		s := h.slots[idx]
		if !s.used || dist > s.dist {
			return false
		}
		if s.v == v {
			break
		}
		dist++
		idx = (idx + 1) & mask
	}
	h.slots[idx] = slot{}
	h.count--
	next := (idx + 1) & mask
	for h.slots[next].used && h.slots[next].dist > 0 {
		h.slots[idx] = h.slots[next]
		h.slots[idx].dist--
		h.slots[next] = slot{}
		idx = next
		next = (next + 1) & mask
	}
	return true
}

func (h *hashSet) Intersect(other Set) Set {
	out := newHash(nil)
	small, big := Set(h), other
	if h.Cardinality() > other.Cardinality() {
		small, big = other, h
	}
	for _, v := range small.Iter() {
		if big.Contains(v) {
			out.insert(v)
		}
	}
	return out
}

func (h *hashSet) IntersectCount(other Set) int {
	small, big := Set(h), other
	if h.Cardinality() > other.Cardinality() {
		small, big = other, h
	}
	count := 0
	for _, v := range small.Iter() {
		if big.Contains(v) {
			count++
		}
	}
	return count
}

func (h *hashSet) Union(other Set) Set {
	out := h.Clone().(*hashSet)
	for _, v := range other.Iter() {
		out.insert(v)
	}
	return out
}

func (h *hashSet) UnionInPlace(other Set) {
	for _, v := range other.Iter() {
		h.insert(v)
	}
}

func (h *hashSet) Difference(other Set) Set {
	out := newHash(nil)
	for _, v := range h.Iter() {
		if !other.Contains(v) {
			out.insert(v)
		}
	}
	return out
}

func (h *hashSet) DifferenceInPlace(other Set) {
	for _, v := range other.Iter() {
		h.remove(v)
	}
}

func (h *hashSet) Clone() Set {
	out := &hashSet{slots: append([]slot(nil), h.slots...), count: h.count}
	return out
}
