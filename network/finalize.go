package network

import "fmt"

// Finalize builds the forward/reverse star lists, computes each arc's
// FixedCost and free-flow Cost, selects its BPR dispatch kind from Beta,
// and validates the structural invariants spec.md requires before the
// network can be handed to the bush builder:
//
//   - every arc has positive capacity and non-negative free-flow time
//   - every arc's tail/head lies within [0, NumNodes)
//   - every OD pair with positive demand is reachable from its origin
//
// Mirrors the original finalizeNetwork, which builds the star lists and
// sets fixedCost/cost/flow in a single pass over the arcs; the validation
// and reachability checks are the supplemented additions from SPEC_FULL §4.2a.
func (net *Network) Finalize() error {
	n := len(net.Nodes)
	for i := range net.Arcs {
		arc := &net.Arcs[i]
		if arc.Tail < 0 || arc.Tail >= n || arc.Head < 0 || arc.Head >= n {
			return fmt.Errorf("arc %d (%d,%d): %w", i, arc.Tail, arc.Head, ErrArcNodeOutOfRange)
		}
		if arc.Capacity <= 0 {
			return fmt.Errorf("arc %d (%d,%d): %w", i, arc.Tail, arc.Head, ErrNonPositiveCapacity)
		}
		if arc.FreeFlowTime < 0 {
			return fmt.Errorf("arc %d (%d,%d): %w", i, arc.Tail, arc.Head, ErrNegativeFreeFlowTime)
		}

		net.Nodes[arc.Tail].ForwardStar = append(net.Nodes[arc.Tail].ForwardStar, i)
		net.Nodes[arc.Head].ReverseStar = append(net.Nodes[arc.Head].ReverseStar, i)

		arc.FixedCost = arc.Length*net.DistanceFactor + arc.Toll*net.TollFactor
		arc.Flow = 0
		arc.Cost = arc.FreeFlowTime + arc.FixedCost

		switch arc.Beta {
		case 1:
			arc.kind = bprLinear
		case 4:
			arc.kind = bprQuartic
		default:
			arc.kind = bprGeneral
		}
	}

	var total float64
	for r := 0; r < net.NumZones; r++ {
		rowTotal, err := net.Demand.RowSum(r)
		if err != nil {
			return err
		}
		total += rowTotal
		if rowTotal == 0 {
			continue
		}

		reached := Reachable(net, r, Forward)
		for j := 0; j < net.NumZones; j++ {
			demand, err := net.Demand.At(r, j)
			if err != nil {
				return err
			}
			if demand > 0 && !reached[j] {
				return fmt.Errorf("origin %d to destination %d: %w", r, j, ErrUnreachableDestination)
			}
		}
	}
	net.TotalODFlow = total

	return nil
}

// UpdateLinkCosts refreshes every arc's Cost from its current Flow by
// invoking its bound BPR evaluator. Idempotent if flows are unchanged.
func (net *Network) UpdateLinkCosts() {
	for i := range net.Arcs {
		net.Arcs[i].Cost = net.Arcs[i].evalCost()
	}
}
