package bush

import "math"

// ShortestPath recomputes b.spCost for origin r using only its bush's
// links and the network's current arc costs. The bush is acyclic and
// already topologically ordered, so one forward pass over the order
// suffices; no heap is needed.
func (b *Bushes) ShortestPath(r int) error {
	if err := b.checkOrigin(r); err != nil {
		return err
	}

	o := &b.origins[r]
	b.spCost[o.order[0]] = 0
	for curnode := 1; curnode < len(o.order); curnode++ {
		i := o.order[curnode]
		best := math.Inf(1)
		for _, ij := range o.reverseStar[i] {
			h := b.net.Arcs[ij].Tail
			cand := b.spCost[h] + b.net.Arcs[ij].Cost
			if cand < best {
				best = cand
			}
		}
		b.spCost[i] = best
	}

	return nil
}
