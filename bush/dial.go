package bush

import "math"

// DialFlows loads origin r's demand onto its bush using Dial's STOCH
// logit rule and leaves the result in b.Flow (per arc, read via Flow).
//
// It always recomputes ShortestPath first: the bush-restricted cost
// labels it produces are both the basis for the per-arc likelihoods
// below and the quantity MSA iterations converge on, so there is never
// a reason to call DialFlows against a stale label set.
//
// The three passes mirror the reference algorithm exactly:
//
//  1. Likelihood: for each bush arc (i,j), exp(theta*(SPcost[j]-SPcost[i]-cost[ij])),
//     or 0 if i is unreachable within the bush. This is Dial's route-choice
//     weight for paths traversing (i,j) relative to other paths between the
//     same pair of nodes.
//  2. Weight: a forward sweep in topological order turns per-arc
//     likelihoods into node weights (sum of incoming arc weights) and arc
//     weights (node weight times the arc's own likelihood), so weight[ij]
//     is proportional to the total likelihood of every bush path from the
//     origin through (i,j).
//  3. Flow: a reverse sweep turns node demand (origin r's OD demand to
//     each destination, accumulated bottom-up) into arc flow by splitting
//     each node's flow across the bush arcs entering it (its bush reverse
//     star) in proportion to arc weight over node weight.
func (b *Bushes) DialFlows(r int, theta float64) error {
	if err := b.checkOrigin(r); err != nil {
		return err
	}
	if err := b.ShortestPath(r); err != nil {
		return err
	}

	o := &b.origins[r]
	net := b.net

	for ij := range net.Arcs {
		arc := &net.Arcs[ij]
		i, j := arc.Tail, arc.Head
		b.flow[ij] = 0
		if math.IsInf(b.spCost[i], 1) {
			b.likelihood[ij] = 0
			continue
		}
		b.likelihood[ij] = math.Exp(theta * (b.spCost[j] - b.spCost[i] - arc.Cost))
	}

	origin := o.order[0]
	b.nodeWeight[origin] = 1
	for _, ij := range o.forwardStar[origin] {
		b.weight[ij] = b.likelihood[ij]
	}
	for curnode := 1; curnode < len(o.order); curnode++ {
		i := o.order[curnode]
		var nw float64
		for _, ij := range o.reverseStar[i] {
			nw += b.weight[ij]
		}
		b.nodeWeight[i] = nw

		for _, ij := range o.forwardStar[i] {
			b.weight[ij] = nw * b.likelihood[ij]
		}
	}

	last := len(o.order) - 1
	i := o.order[last]
	b.nodeFlow[i] = b.destinationDemand(r, i)
	b.splitFlowAcrossBushReverseStar(o, i)
	for curnode := last - 1; curnode >= 0; curnode-- {
		i = o.order[curnode]
		nf := b.destinationDemand(r, i)
		for _, ij := range o.forwardStar[i] {
			nf += b.flow[ij]
		}
		b.nodeFlow[i] = nf
		b.splitFlowAcrossBushReverseStar(o, i)
	}

	return nil
}

// destinationDemand returns the OD demand from r to i if i is a zone,
// else 0 (only zones can be final destinations of a trip).
func (b *Bushes) destinationDemand(r, i int) float64 {
	if i >= b.net.NumZones {
		return 0
	}
	d, err := b.net.Demand.At(r, i)
	if err != nil {
		return 0
	}

	return d
}

// splitFlowAcrossBushReverseStar distributes node i's flow across the
// bush arcs entering i in proportion to arc weight over node weight.
func (b *Bushes) splitFlowAcrossBushReverseStar(o *origin, i int) {
	nw := b.nodeWeight[i]
	for _, ij := range o.reverseStar[i] {
		if nw == 0 {
			b.flow[ij] = 0
			continue
		}
		b.flow[ij] = b.nodeFlow[i] * (b.weight[ij] / nw)
	}
}

// Flow returns the bush flow on arc ij computed by the most recent
// DialFlows call for any origin.
func (b *Bushes) Flow(ij int) float64 { return b.flow[ij] }
