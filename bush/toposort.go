package bush

import "github.com/sueflow/sueflow/network"

// topologicalOrder runs Kahn's algorithm over the bush-restricted
// forward/reverse stars for one origin, seeding the queue with the
// origin first so order[0] is always the origin node.
func topologicalOrder(net *network.Network, origin int, forwardStar, reverseStar [][]int) ([]int, error) {
	numNodes := net.NumNodes()
	indegree := make([]int, numNodes)
	for i := 0; i < numNodes; i++ {
		indegree[i] = len(reverseStar[i])
	}

	order := make([]int, numNodes)
	for i := range order {
		order[i] = noPathExists
	}

	queue := make([]int, 0, numNodes)
	queue = append(queue, origin)
	for i := 0; i < numNodes; i++ {
		if i != origin && indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	next := 0
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order[next] = i
		next++

		for _, ij := range forwardStar[i] {
			j := net.Arcs[ij].Head
			indegree[j]--
			if indegree[j] == 0 {
				queue = append(queue, j)
			}
		}
	}

	if next < numNodes {
		return nil, ErrCyclicBush
	}

	return order, nil
}
