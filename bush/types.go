package bush

import "github.com/sueflow/sueflow/network"

// noPathExists marks an unfilled slot in an origin's topological order.
const noPathExists = -1

// minLinkCost is the floor applied to free-flow link cost when
// classifying reasonable links, so a zero-cost link cannot make every
// other link downstream of it look artificially reasonable.
const minLinkCost = 1e-6

// origin holds the persistent, per-origin bush structure: the
// topological order (origin first) and the bush-restricted forward and
// reverse stars, expressed as arc-index slices into net.Arcs exactly
// like network.Node's stars.
type origin struct {
	order        []int   // topological order; order[0] == the origin node
	forwardStar  [][]int // bush-restricted arc indices per node, tail-indexed
	reverseStar  [][]int // bush-restricted arc indices per node, head-indexed
	numBushLinks int
	numBushPaths uint64
}

// Bushes holds one origin struct per zone plus the scratch arrays reused
// across every ShortestPath/DialFlows call: SPcost (shortest-path cost
// labels), flow and likelihood (per-arc), nodeFlow and weight and
// nodeWeight (per-node except weight, which is per-arc as in the
// reference algorithm).
type Bushes struct {
	net *network.Network

	origins []origin

	spCost     []float64
	flow       []float64
	nodeFlow   []float64
	weight     []float64
	nodeWeight []float64
	likelihood []float64
}

// NumBushLinks returns the number of reasonable links on origin r's bush.
func (b *Bushes) NumBushLinks(r int) (int, error) {
	if err := b.checkOrigin(r); err != nil {
		return 0, err
	}

	return b.origins[r].numBushLinks, nil
}

// NumBushPaths returns the number of distinct origin-to-destination paths
// on origin r's bush, counted only across destinations with positive
// demand from r (SPEC_FULL §4.3); nodes that are not zones and zones with
// zero demand from r add nothing to the total.
func (b *Bushes) NumBushPaths(r int) (uint64, error) {
	if err := b.checkOrigin(r); err != nil {
		return 0, err
	}

	return b.origins[r].numBushPaths, nil
}

func (b *Bushes) checkOrigin(r int) error {
	if r < 0 || r >= len(b.origins) {
		return ErrOriginOutOfRange
	}

	return nil
}
