package coloring

import (
	"sync"
	"sync/atomic"

	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/internal/workers"
)

// JonesV1Config tunes the JonesV1 driver.
type JonesV1Config struct {
	Workers  workers.Config
	BaseSeed uint64
}

// DefaultJonesV1Config returns the default configuration.
func DefaultJonesV1Config() JonesV1Config {
	return JonesV1Config{Workers: workers.DefaultConfig(), BaseSeed: 1}
}

// JonesV1 colors g by partitioning vertices across goroutines by
// contiguous ID range; each goroutine drains a local ready-queue of
// vertices whose pending-predecessor count (over the whole graph's
// priority DAG) has reached zero, coloring each with jonesColor and then
// decrementing its successors' counts — locally when the successor is
// in the same partition, or via a message sent over the owning
// partition's inbox channel otherwise. This is the idiomatic-Go
// replacement for the source's hand-rolled lock-free linked message
// queue: a buffered channel per partition plays the same multi-producer
// single-consumer role.
func JonesV1(g *csr.Graph, cfg JonesV1Config) Result {
	res := newResult(g)
	n := g.NumNodes()
	prio := priority(n, cfg.BaseSeed)
	pred, succ, pendingInit := jonesDAG(g, prio, cfg.Workers)

	pending := make([]atomic.Int32, n)
	for v := range pendingInit {
		pending[v].Store(pendingInit[v])
	}

	parts := cfg.Workers.Concurrency()
	if parts > n {
		parts = n
	}
	if parts < 1 {
		parts = 1
	}
	partSize := (n + parts - 1) / parts
	partOf := func(v csr.NodeId) int { return int(v) / partSize }

	inbox := make([]chan []csr.NodeId, parts)
	for i := range inbox {
		inbox[i] = make(chan []csr.NodeId, n+1)
	}

	var wg sync.WaitGroup
	for p := 0; p < parts; p++ {
		p := p
		start := p * partSize
		end := start + partSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			var ready []csr.NodeId
			colored := 0
			size := end - start
			for v := start; v < end; v++ {
				if pending[v].Load() == 0 {
					ready = append(ready, csr.NodeId(v))
				}
			}

			colorOne := func(v csr.NodeId) {
				res.Colors[v] = jonesColor(pred[v], res.Colors, res.Delta)
				colored++
				for _, u := range succ[v] {
					if pending[u].Add(-1) == 0 {
						if partOf(u) == p {
							ready = append(ready, u)
						} else {
							inbox[partOf(u)] <- []csr.NodeId{u}
						}
					}
				}
			}

			for colored < size {
				for len(ready) > 0 {
					v := ready[len(ready)-1]
					ready = ready[:len(ready)-1]
					colorOne(v)
				}
				if colored >= size {
					break
				}
				msg := <-inbox[p]
				ready = append(ready, msg...)
			}
		}()
	}
	wg.Wait()
	return res
}
