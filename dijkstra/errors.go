package dijkstra

import "errors"

// ErrOriginOutOfRange indicates Labels was called with an origin index
// outside [0, net.NumNodes()).
var ErrOriginOutOfRange = errors.New("dijkstra: origin out of range")
