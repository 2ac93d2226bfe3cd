package network

// Reachable performs a breadth-first traversal from origin and returns a
// visited slice indexed by node.
//
// It restricts expansion exactly the way the original TAP-B search()
// routine does: a node below FirstThroughNode is marked visited (it can be
// discovered as an endpoint) but is never placed on the frontier queue, so
// no path is allowed to transit through a centroid connector. This is used
// only for structural validation (Finalize checks every positive-demand OD
// pair is reachable); the free-flow shortest-path labeling in package
// dijkstra enforces the same rule independently.
func Reachable(net *Network, origin int, dir Direction) []bool {
	visited := make([]bool, len(net.Nodes))
	visited[origin] = true

	queue := make([]int, 0, len(net.Nodes))
	queue = append(queue, origin)

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		star := net.Nodes[i].ForwardStar
		if dir == Reverse {
			star = net.Nodes[i].ReverseStar
		}
		for _, ij := range star {
			arc := &net.Arcs[ij]
			j := arc.Head
			if dir == Reverse {
				j = arc.Tail
			}
			if visited[j] {
				continue
			}
			visited[j] = true
			if j >= net.FirstThroughNode || j == origin {
				queue = append(queue, j)
			}
		}
	}

	return visited
}
