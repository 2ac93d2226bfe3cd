package fixtures

import "github.com/sueflow/sueflow/network"

// TwoNode returns a finalized 2-node, 2-zone network connected by a single
// arc (capacity 100, free-flow time 1, alpha 0.15, beta 4) carrying 50
// units of demand from zone 0 to zone 1. With a single available path,
// the logit parameter theta has no effect on the resulting flow.
func TwoNode() (*network.Network, error) {
	net, err := network.New(2, 1, 2, 0, 1, 1)
	if err != nil {
		return nil, err
	}
	net.Arcs[0] = network.Arc{Tail: 0, Head: 1, Capacity: 100, FreeFlowTime: 1, Alpha: 0.15, Beta: 4}
	if err := net.Demand.Set(0, 1, 50); err != nil {
		return nil, err
	}
	if err := net.Finalize(); err != nil {
		return nil, err
	}

	return net, nil
}

// ParallelArcs returns a finalized 2-node, 2-zone network with two
// free-flow (alpha 0) parallel arcs between the same zone pair, one with
// free-flow time 1 and one with free-flow time 2, carrying 100 units of
// demand. Since cost stays fixed regardless of flow, the logit split
// between the two arcs depends only on theta and the cost gap.
func ParallelArcs() (*network.Network, error) {
	net, err := network.New(2, 2, 2, 0, 1, 1)
	if err != nil {
		return nil, err
	}
	net.Arcs[0] = network.Arc{Tail: 0, Head: 1, Capacity: 100, FreeFlowTime: 1, Alpha: 0, Beta: 4}
	net.Arcs[1] = network.Arc{Tail: 0, Head: 1, Capacity: 100, FreeFlowTime: 2, Alpha: 0, Beta: 4}
	if err := net.Demand.Set(0, 1, 100); err != nil {
		return nil, err
	}
	if err := net.Finalize(); err != nil {
		return nil, err
	}

	return net, nil
}

// CentroidIsolation returns a finalized 4-node network with zones {0,1}
// and a through node {2} (node 3 unused by any arc), where
// FirstThroughNode=2 marks both zone nodes as centroid connectors. A
// direct arc 0->1 exists alongside a cheaper 0->2->1 detour through the
// through node, exercising the case where the shortest free-flow path to
// the destination zone requires passing through an intermediate
// through node rather than using the direct centroid-to-centroid arc.
func CentroidIsolation() (*network.Network, error) {
	net, err := network.New(4, 3, 2, 2, 1, 1)
	if err != nil {
		return nil, err
	}
	net.Arcs[0] = network.Arc{Tail: 0, Head: 1, Capacity: 50, FreeFlowTime: 5, Alpha: 0.15, Beta: 4}
	net.Arcs[1] = network.Arc{Tail: 0, Head: 2, Capacity: 50, FreeFlowTime: 1, Alpha: 0.15, Beta: 4}
	net.Arcs[2] = network.Arc{Tail: 2, Head: 1, Capacity: 50, FreeFlowTime: 1, Alpha: 0.15, Beta: 4}
	if err := net.Demand.Set(0, 1, 50); err != nil {
		return nil, err
	}
	if err := net.Finalize(); err != nil {
		return nil, err
	}

	return net, nil
}

// SmallGrid returns a finalized 4-node, 2-zone network with two parallel
// two-hop routes (0->2->1 and 0->3->1) between the same OD pair, carrying
// 100 units of demand, used to check flow-conservation invariants on a
// bush wider than a single direct arc.
func SmallGrid() (*network.Network, error) {
	net, err := network.New(4, 4, 2, 2, 1, 1)
	if err != nil {
		return nil, err
	}
	net.Arcs[0] = network.Arc{Tail: 0, Head: 2, Capacity: 50, FreeFlowTime: 1, Alpha: 0.15, Beta: 4}
	net.Arcs[1] = network.Arc{Tail: 2, Head: 1, Capacity: 50, FreeFlowTime: 1, Alpha: 0.15, Beta: 4}
	net.Arcs[2] = network.Arc{Tail: 0, Head: 3, Capacity: 50, FreeFlowTime: 2, Alpha: 0.15, Beta: 4}
	net.Arcs[3] = network.Arc{Tail: 3, Head: 1, Capacity: 50, FreeFlowTime: 2, Alpha: 0.15, Beta: 4}
	if err := net.Demand.Set(0, 1, 100); err != nil {
		return nil, err
	}
	if err := net.Finalize(); err != nil {
		return nil, err
	}

	return net, nil
}

// Braess returns a finalized 4-node, 2-zone Braess's-paradox network:
// zone A at node 0, zone B at node 1, and through nodes X=2, Y=3
// (FirstThroughNode=2). Two congestion-sensitive outer arcs (A->X, Y->B)
// have cost that rises steeply with flow; two nearly flat diagonal arcs
// (X->B, A->Y) stay cheap regardless of load; a cheap, high-capacity
// crossing arc (X->Y) lets traffic shortcut between the two outer
// routes. Adding that crossing arc to an otherwise two-route network is
// the classic example of an added link making equilibrium travel cost
// worse for everyone, which is why MSA under SUE is expected to load all
// three through-paths rather than collapsing onto one.
func Braess() (*network.Network, error) {
	net, err := network.New(4, 5, 2, 2, 1, 1)
	if err != nil {
		return nil, err
	}
	net.Arcs[0] = network.Arc{Tail: 0, Head: 2, Capacity: 100, FreeFlowTime: 1, Alpha: 1, Beta: 4} // A->X
	net.Arcs[1] = network.Arc{Tail: 2, Head: 1, Capacity: 100, FreeFlowTime: 2, Alpha: 0.01, Beta: 4} // X->B
	net.Arcs[2] = network.Arc{Tail: 0, Head: 3, Capacity: 100, FreeFlowTime: 2, Alpha: 0.01, Beta: 4} // A->Y
	net.Arcs[3] = network.Arc{Tail: 3, Head: 1, Capacity: 100, FreeFlowTime: 1, Alpha: 1, Beta: 4}    // Y->B
	net.Arcs[4] = network.Arc{Tail: 2, Head: 3, Capacity: 100, FreeFlowTime: 0.1, Alpha: 0.01, Beta: 4} // X->Y
	if err := net.Demand.Set(0, 1, 100); err != nil {
		return nil, err
	}
	if err := net.Finalize(); err != nil {
		return nil, err
	}

	return net, nil
}
