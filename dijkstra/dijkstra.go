package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/sueflow/sueflow/network"
)

// Labels returns, for every node, the minimum-cost label reachable from
// origin along net's current arc costs. Unreached nodes carry
// math.Inf(1). Nodes below net.FirstThroughNode may have their label
// improved as a path endpoint but are never expanded as an intermediate
// node, the same centroid-connector rule network.Reachable applies. The
// bush-restricted ShortestPath and DialFlows in package bush do not
// re-check it.
func Labels(net *network.Network, origin int) ([]float64, error) {
	n := net.NumNodes()
	if origin < 0 || origin >= n {
		return nil, fmt.Errorf("origin %d: %w", origin, ErrOriginOutOfRange)
	}

	label := make([]float64, n)
	for i := range label {
		label[i] = math.Inf(1)
	}
	visited := make([]bool, n)

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	label[origin] = 0
	heap.Push(&pq, &nodeItem{id: origin, label: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, ij := range net.Nodes[u].ForwardStar {
			arc := &net.Arcs[ij]
			j := arc.Head
			candidate := label[u] + arc.Cost
			if candidate >= label[j] {
				continue
			}
			label[j] = candidate

			// A centroid connector is a valid label endpoint but never a
			// through node: leave it off the heap so it is never expanded.
			if j < net.FirstThroughNode {
				continue
			}
			heap.Push(&pq, &nodeItem{id: j, label: candidate})
		}
	}

	return label, nil
}

// nodeItem is a (node, label) pair stored in the priority queue.
type nodeItem struct {
	id    int
	label float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending label, using a
// lazy-decrease-key discipline: an improved label is pushed as a new
// entry, and stale entries are discarded on pop via the visited set.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].label < pq[j].label }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
