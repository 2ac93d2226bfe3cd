package bush

import "errors"

// Sentinel errors returned by bush construction and evaluation.
var (
	// ErrCyclicBush indicates the reasonable-link subgraph for an origin
	// contains a cycle, so no topological order exists. This should never
	// happen for a correctly finalized network: reasonable links are
	// defined by a strict free-flow-cost ordering, which cannot cycle.
	ErrCyclicBush = errors.New("bush: reasonable-link subgraph contains a cycle")

	// ErrOriginOutOfRange indicates an origin index outside [0, NumZones).
	ErrOriginOutOfRange = errors.New("bush: origin out of range")
)
