package network

import "math"

// Direction selects which star (forward or reverse adjacency) a traversal
// follows. It mirrors the original TAP-B direction_type used by the
// network connectivity search.
type Direction int

const (
	// Forward follows arcs tail->head, i.e. Node.ForwardStar.
	Forward Direction = iota
	// Reverse follows arcs head->tail, i.e. Node.ReverseStar.
	Reverse
)

// bprKind tags which BPR branch an Arc evaluates. Chosen once when the arc
// is finalized so the hot UpdateLinkCosts loop never branches on Beta.
type bprKind uint8

const (
	bprLinear bprKind = iota
	bprQuartic
	bprGeneral
)

// Arc is a directed link with congestion-sensitive BPR cost.
//
// Tail and Head are 0-based node indices. FixedCost and the BPR dispatch
// kind are computed once by Finalize; Flow and Cost are mutated every MSA
// iteration.
type Arc struct {
	Tail int
	Head int

	Capacity     float64
	FreeFlowTime float64
	Length       float64
	Toll         float64
	Alpha        float64
	Beta         float64
	SpeedLimit   float64
	LinkType     int

	// FixedCost = Length*distanceFactor + Toll*tollFactor, set by Finalize.
	FixedCost float64

	Flow float64
	Cost float64

	kind bprKind
}

// evalCost evaluates the BPR congestion function for the arc's current Flow.
// Guards flow <= 0 uniformly across all three branches (linear, quartic,
// general) per the spec's failure-mode note: negative flow should not
// arise from the solver, and is treated as flow == 0.
func (a *Arc) evalCost() float64 {
	if a.Flow <= 0 {
		return a.FreeFlowTime + a.FixedCost
	}
	ratio := a.Flow / a.Capacity
	switch a.kind {
	case bprLinear:
		return a.FixedCost + a.FreeFlowTime*(1+a.Alpha*ratio)
	case bprQuartic:
		y := ratio * ratio
		y *= y
		return a.FixedCost + a.FreeFlowTime*(1+a.Alpha*y)
	default:
		return a.FixedCost + a.FreeFlowTime*(1+a.Alpha*math.Pow(ratio, a.Beta))
	}
}

// Node holds forward/reverse adjacency as arc-index slices rather than a
// linked list (SPEC_FULL §3: flat arc-index vectors are chosen over the
// original's doubly-linked arcList for cache-friendlier bush sweeps).
type Node struct {
	ForwardStar []int // arc indices with Tail == this node
	ReverseStar []int // arc indices with Head == this node
}

// Network is the complete topology plus mutable per-arc flow/cost state
// and the OD demand matrix. Zones occupy node indices 0..NumZones.
// Nodes below FirstThroughNode are centroid connectors: they may be an
// origin or destination but are never transited by a shortest path.
type Network struct {
	Nodes []Node
	Arcs  []Arc

	Demand *DemandMatrix

	NumZones         int
	FirstThroughNode int
	DistanceFactor   float64
	TollFactor       float64
	TotalODFlow      float64
}

// New allocates an empty Network with numNodes nodes, numArcs arcs (zero
// valued, to be filled in by index before calling Finalize), and a
// numZones x numZones demand matrix.
func New(numNodes, numArcs, numZones, firstThroughNode int, distanceFactor, tollFactor float64) (*Network, error) {
	demand, err := NewDemandMatrix(numZones)
	if err != nil {
		return nil, err
	}

	return &Network{
		Nodes:            make([]Node, numNodes),
		Arcs:             make([]Arc, numArcs),
		Demand:           demand,
		NumZones:         numZones,
		FirstThroughNode: firstThroughNode,
		DistanceFactor:   distanceFactor,
		TollFactor:       tollFactor,
	}, nil
}

// NumNodes returns the number of nodes in the network.
func (net *Network) NumNodes() int { return len(net.Nodes) }

// NumArcs returns the number of arcs in the network.
func (net *Network) NumArcs() int { return len(net.Arcs) }
