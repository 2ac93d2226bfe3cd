package network

import "errors"

// Sentinel errors returned by Finalize and the demand matrix.
var (
	// ErrNonPositiveCapacity indicates an arc was given capacity <= 0.
	ErrNonPositiveCapacity = errors.New("network: arc capacity must be positive")

	// ErrNegativeFreeFlowTime indicates an arc's free-flow time is negative.
	ErrNegativeFreeFlowTime = errors.New("network: arc free-flow time must be non-negative")

	// ErrArcNodeOutOfRange indicates an arc references a tail or head outside [0, numNodes).
	ErrArcNodeOutOfRange = errors.New("network: arc endpoint out of range")

	// ErrUnreachableDestination indicates an OD pair has positive demand but
	// no forward path from origin to destination in the full network.
	ErrUnreachableDestination = errors.New("network: destination unreachable from origin with positive demand")

	// ErrInvalidDimensions indicates a non-positive matrix dimension was requested.
	ErrInvalidDimensions = errors.New("network: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a demand-matrix row or column is out of range.
	ErrIndexOutOfBounds = errors.New("network: index out of bounds")

	// ErrNegativeDemand indicates a negative OD demand value was supplied.
	ErrNegativeDemand = errors.New("network: demand must be non-negative")
)
