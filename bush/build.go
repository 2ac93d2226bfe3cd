package bush

import (
	"math"

	"github.com/sueflow/sueflow/dijkstra"
	"github.com/sueflow/sueflow/network"
)

// Build classifies reasonable links and constructs a topologically
// ordered bush for every zone in net, then counts each bush's paths to
// its positive-demand destinations.
//
// A link (i,j) is reasonable for origin r if the free-flow shortest-path
// cost from r to i is strictly less than the cost to j: traversing it
// never moves the traveler farther from the origin in free-flow terms.
// Free-flow costs are floored at minLinkCost first, so a zero-cost link
// cannot make every downstream link look reasonable by comparison.
func Build(net *network.Network) (*Bushes, error) {
	for i := range net.Arcs {
		net.Arcs[i].Cost = math.Max(minLinkCost, net.Arcs[i].FreeFlowTime+net.Arcs[i].FixedCost)
	}

	n := net.NumNodes()
	b := &Bushes{
		net:        net,
		origins:    make([]origin, net.NumZones),
		spCost:     make([]float64, n),
		flow:       make([]float64, net.NumArcs()),
		nodeFlow:   make([]float64, n),
		weight:     make([]float64, net.NumArcs()),
		nodeWeight: make([]float64, n),
		likelihood: make([]float64, net.NumArcs()),
	}

	pathCount := make([]uint64, n)
	for r := 0; r < net.NumZones; r++ {
		spCost, err := dijkstra.Labels(net, r)
		if err != nil {
			return nil, err
		}

		o := &b.origins[r]
		o.forwardStar = make([][]int, n)
		o.reverseStar = make([][]int, n)

		for ij := range net.Arcs {
			arc := &net.Arcs[ij]
			i, j := arc.Tail, arc.Head
			if spCost[i] >= spCost[j] {
				continue
			}
			o.numBushLinks++
			o.forwardStar[i] = append(o.forwardStar[i], ij)
			o.reverseStar[j] = append(o.reverseStar[j], ij)
		}

		order, err := topologicalOrder(net, r, o.forwardStar, o.reverseStar)
		if err != nil {
			return nil, err
		}
		o.order = order

		for i := range pathCount {
			pathCount[i] = 0
		}
		pathCount[r] = 1
		o.numBushPaths = 0
		for curnode := 1; curnode < n; curnode++ {
			j := o.order[curnode]
			var total uint64
			for _, ij := range o.reverseStar[j] {
				total += pathCount[net.Arcs[ij].Tail]
			}
			pathCount[j] = total

			if j < net.NumZones {
				demand, err := net.Demand.At(r, j)
				if err != nil {
					return nil, err
				}
				if demand > 0 {
					o.numBushPaths += pathCount[j]
				}
			}
		}
	}

	return b, nil
}
